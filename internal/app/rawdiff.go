// internal/app/rawdiff.go
package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"g4diff/internal/hits"
	"g4diff/internal/multiset"
	"g4diff/internal/report"
	"g4diff/internal/tracelog"
)

// RawDiffOptions configures the mode-vs-mode raw candidate comparison.
type RawDiffOptions struct {
	Summary    string // summary.txt produced by the trace command
	OutDir     string
	MaxSamples int
}

// summaryEntry is one line of the trace summary TSV.
type summaryEntry struct {
	Index         string
	DiffCount     int
	MmapMatches   int
	StreamMatches int
	Path          string
	Sequence      string
}

// RunRawDiff diffs RAW_G4 candidate sets between executions modes for every
// sequence listed in a trace summary, writing one report per sequence plus
// an aggregate summary TSV.
func RunRawDiff(o RawDiffOptions, stdout io.Writer) error {
	entries, err := readTraceSummary(o.Summary)
	if err != nil {
		return configErr(err)
	}
	if err := os.MkdirAll(o.OutDir, 0o755); err != nil {
		return configErr(err)
	}

	var rows []report.RawDiffSummaryRow
	for _, e := range entries {
		if e.MmapMatches == 0 && e.StreamMatches == 0 {
			continue
		}
		sets, err := scanCaptureFile(e.Path)
		if err != nil {
			return configErr(err)
		}
		// The same raw candidate often repeats in a log; the comparison is
		// set-valued, so collapse duplicates before diffing.
		mmap := multiset.Unique(sets.Mmap)
		stream := multiset.Unique(sets.Stream)
		streamOnlyE, mmapOnlyE := multiset.Diff(stream, mmap)
		streamOnly := multiset.Expand(streamOnlyE)
		mmapOnly := multiset.Expand(mmapOnlyE)
		hits.SortCandidates(streamOnly)
		hits.SortCandidates(mmapOnly)

		rd := report.RawDiff{
			Sequence:      e.Sequence,
			Index:         e.Index,
			DiffCount:     e.DiffCount,
			MmapMatches:   e.MmapMatches,
			StreamMatches: e.StreamMatches,
			MmapTotal:     len(mmap),
			StreamTotal:   len(stream),
			StreamOnly:    streamOnly,
			MmapOnly:      mmapOnly,
		}
		path := filepath.Join(o.OutDir,
			fmt.Sprintf("rawdiff_%s_%s.report.txt", e.Index, tracelog.SafeName(e.Sequence)))
		if err := writeFileAtomic(path, func(w io.Writer) error {
			return report.WriteRawDiff(w, rd, o.MaxSamples)
		}); err != nil {
			return writeErr(err)
		}
		rows = append(rows, report.RawDiffSummaryRow{
			Index:      e.Index,
			Sequence:   e.Sequence,
			StreamOnly: len(streamOnly),
			MmapOnly:   len(mmapOnly),
			ReportPath: path,
		})
	}

	summaryPath := filepath.Join(o.OutDir, "rawdiff_summary.txt")
	if err := writeFileAtomic(summaryPath, func(w io.Writer) error {
		return report.WriteRawDiffSummary(w, rows)
	}); err != nil {
		return writeErr(err)
	}
	_, err = fmt.Fprintf(stdout, "Wrote %d reports to %s. Summary: %s\n", len(rows), o.OutDir, summaryPath)
	return writeErr(err)
}

// scanCaptureFile extracts the mode-partitioned raw candidates from one
// per-sequence capture file. A missing capture yields empty sets, not an
// error: traces are best-effort.
func scanCaptureFile(path string) (tracelog.ModeSets, error) {
	events, err := tracelog.ScanFile(path)
	if os.IsNotExist(err) {
		return tracelog.ModeSets{}, nil
	}
	if err != nil {
		return tracelog.ModeSets{}, err
	}
	return tracelog.PartitionRaw(events), nil
}

func readTraceSummary(path string) ([]summaryEntry, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var out []summaryEntry
	sc := bufio.NewScanner(fh)
	first := true
	for sc.Scan() {
		line := sc.Text()
		if first {
			first = false // header
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 6 {
			continue
		}
		e := summaryEntry{
			Index:    strings.TrimSpace(parts[0]),
			Path:     parts[4],
			Sequence: parts[5],
		}
		var errs [3]error
		e.DiffCount, errs[0] = strconv.Atoi(parts[1])
		e.MmapMatches, errs[1] = strconv.Atoi(parts[2])
		e.StreamMatches, errs[2] = strconv.Atoi(parts[3])
		if errs[0] != nil || errs[1] != nil || errs[2] != nil {
			continue
		}
		out = append(out, e)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// writeFileAtomic renders into a buffer-backed file in one shot so a report
// once written is complete for the run that produced it.
func writeFileAtomic(path string, render func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(fh)
	if err := render(w); err != nil {
		_ = fh.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}
