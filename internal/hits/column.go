// internal/hits/column.go
package hits

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"
)

// sequence column aliases seen across pipeline outputs
var sequenceColumnNames = []string{"seq", "sequence", "seq_str", "g4_sequence"}

// SequenceColumn reads a CSV header and returns the 0-based index of the
// column holding the sequence string. Falls back to the last column when no
// known name matches.
func SequenceColumn(path string) (int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() { _ = fh.Close() }()

	sc := bufio.NewScanner(fh)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, err
		}
		return 0, fmt.Errorf("%s: empty or missing header", path)
	}
	header := strings.TrimSpace(sc.Text())
	if header == "" {
		return 0, fmt.Errorf("%s: empty or missing header", path)
	}
	cols, err := csv.NewReader(strings.NewReader(header)).Read()
	if err != nil {
		return 0, fmt.Errorf("%s: bad header: %w", path, err)
	}
	for i := range cols {
		cols[i] = strings.ToLower(strings.TrimSpace(cols[i]))
	}
	for _, name := range sequenceColumnNames {
		for i, c := range cols {
			if c == name {
				return i, nil
			}
		}
	}
	return len(cols) - 1, nil
}

// CountDiffSequences scans a unified diff of CSV rows and counts how often
// each sequence value appears on a changed line. Diff metadata lines
// (+++/---/@@) and context lines are skipped; rows that cannot be CSV-parsed
// count their whole text as the sequence.
func CountDiffSequences(path string, seqCol int) (map[string]int, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	counts := map[string]int{}
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for sc.Scan() {
		raw := sc.Text()
		if raw == "" ||
			strings.HasPrefix(raw, "+++") ||
			strings.HasPrefix(raw, "---") ||
			strings.HasPrefix(raw, "@@") {
			continue
		}
		if raw[0] != '+' && raw[0] != '-' {
			continue
		}
		line := raw[1:]
		if strings.TrimSpace(line) == "" {
			continue
		}
		row, err := csv.NewReader(strings.NewReader(line)).Read()
		if err != nil {
			counts[strings.TrimSpace(line)]++
			continue
		}
		seq := ""
		switch {
		case seqCol < len(row):
			seq = strings.TrimSpace(row[seqCol])
		case len(row) > 0:
			seq = strings.TrimSpace(row[len(row)-1])
		}
		counts[seq]++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// SequenceCount is one (sequence, occurrences) pair from a diff patch.
type SequenceCount struct {
	Seq   string
	Count int
}

// TopSequences returns the n most frequent sequences, ties broken by the
// sequence text so that repeated runs order identically.
func TopSequences(counts map[string]int, n int) []SequenceCount {
	out := make([]SequenceCount, 0, len(counts))
	for seq, c := range counts {
		out = append(out, SequenceCount{Seq: seq, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Seq < out[j].Seq
	})
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
