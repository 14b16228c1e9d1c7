// internal/tracelog/extract.go
package tracelog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// markers of diagnostic interest when capturing raw trace lines
var captureMarkers = []string{"RAW_G4", "FAMILY", "MERGED_G4", "STREAM_HIT"}

// DefaultSectionCap bounds how many matching lines one log contributes to a
// per-sequence capture file.
const DefaultSectionCap = 10000

// SafeName turns a sequence string into a usable file-name fragment.
func SafeName(seq string) string {
	s := strings.ReplaceAll(seq, "/", "_")
	s = strings.ReplaceAll(s, "\n", "_")
	if len(s) > 120 {
		s = s[:120]
	}
	return s
}

// Capture holds the outcome of extracting one sequence's trace lines.
type Capture struct {
	Sequence      string
	Path          string
	MmapMatches   int
	StreamMatches int
}

// ExtractSequence writes every marker line mentioning seq from both logs
// into a per-sequence file under outDir, labelled [MMAP]/[STREAM], each
// section capped at sectionCap lines. A missing log file is noted in the
// capture, not fatal: trace logs are best-effort diagnostics.
func ExtractSequence(seq, mmapLog, streamLog, outDir string, sectionCap int) (Capture, error) {
	if sectionCap <= 0 {
		sectionCap = DefaultSectionCap
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Capture{}, err
	}
	outPath := filepath.Join(outDir, fmt.Sprintf("seq_%s.txt", SafeName(seq)))
	out, err := os.Create(outPath)
	if err != nil {
		return Capture{}, err
	}
	defer func() { _ = out.Close() }()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "Sequence: %s\n\n", seq)

	fmt.Fprintf(w, "--- mmap log matches ---\n")
	mcount := captureLog(w, mmapLog, "MMAP", seq, sectionCap)
	fmt.Fprintf(w, "--- end mmap (%d matches) ---\n\n", mcount)

	fmt.Fprintf(w, "--- stream log matches ---\n")
	scount := captureLog(w, streamLog, "STREAM", seq, sectionCap)
	fmt.Fprintf(w, "--- end stream (%d matches) ---\n", scount)

	if err := w.Flush(); err != nil {
		return Capture{}, err
	}
	return Capture{Sequence: seq, Path: outPath, MmapMatches: mcount, StreamMatches: scount}, nil
}

func captureLog(w io.Writer, path, label, seq string, limit int) int {
	fh, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(w, "--- %s: MISSING log file: %s\n", label, path)
		return 0
	}
	defer func() { _ = fh.Close() }()

	matches := 0
	sc := bufio.NewScanner(fh)
	sc.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if !strings.Contains(line, seq) || !hasMarker(line) {
			continue
		}
		fmt.Fprintf(w, "[%s] %s\n", label, line)
		matches++
		if matches >= limit {
			fmt.Fprintf(w, "... truncated after %d matches in %s\n", limit, label)
			break
		}
	}
	return matches
}

func hasMarker(line string) bool {
	for _, m := range captureMarkers {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}
