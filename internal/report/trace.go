// internal/report/trace.go
package report

import (
	"fmt"
	"io"

	"g4diff/internal/tracelog"
)

// TraceSummaryRow joins a diff-count with the capture extracted for it.
type TraceSummaryRow struct {
	Index     int
	DiffCount int
	Capture   tracelog.Capture
}

// WriteTraceSummary emits the per-sequence trace summary TSV.
func WriteTraceSummary(w io.Writer, rows []TraceSummaryRow) error {
	if _, err := fmt.Fprintln(w, "index\tdiff_count\tmmap_matches\tstream_matches\tout_path\tsequence"); err != nil {
		return err
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t%s\n",
			r.Index, r.DiffCount, r.Capture.MmapMatches, r.Capture.StreamMatches, r.Capture.Path, r.Capture.Sequence)
		if err != nil {
			return err
		}
	}
	return nil
}
