// internal/report/rawdiff.go
package report

import (
	"fmt"
	"io"

	"g4diff/internal/hits"
)

// RawDiff is one sequence's mode-vs-mode candidate comparison, ready to
// render. StreamOnly/MmapOnly are expected pre-sorted by (start, end, seq).
type RawDiff struct {
	Sequence      string
	Index         string
	DiffCount     int
	MmapMatches   int
	StreamMatches int
	MmapTotal     int
	StreamTotal   int
	StreamOnly    []hits.Candidate
	MmapOnly      []hits.Candidate
}

// WriteRawDiff renders one per-sequence report file body. maxSamples caps
// the example rows per side; the omitted remainder is counted.
func WriteRawDiff(w io.Writer, r RawDiff, maxSamples int) error {
	_, err := fmt.Fprintf(w,
		"Sequence: %s\nIndex: %s\ndiff_count: %d\nmmap_matches: %d\nstream_matches: %d\n\n"+
			"mmap_total_raw: %d\nstream_total_raw: %d\nstream_only_count: %d\nmmap_only_count: %d\n\n",
		r.Sequence, r.Index, r.DiffCount, r.MmapMatches, r.StreamMatches,
		r.MmapTotal, r.StreamTotal, len(r.StreamOnly), len(r.MmapOnly))
	if err != nil {
		return err
	}
	if err := writeCandidateSection(w, "stream_only", r.StreamOnly, maxSamples); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return writeCandidateSection(w, "mmap_only", r.MmapOnly, maxSamples)
}

func writeCandidateSection(w io.Writer, label string, list []hits.Candidate, maxSamples int) error {
	if _, err := fmt.Fprintf(w, "--- %s (examples) ---\n", label); err != nil {
		return err
	}
	shown := len(list)
	if maxSamples >= 0 && shown > maxSamples {
		shown = maxSamples
	}
	for _, c := range list[:shown] {
		if _, err := fmt.Fprintf(w, "start=%d end=%d gscore=%d seq=%s\n", c.Start, c.End, c.GScore, c.Seq); err != nil {
			return err
		}
	}
	if rest := len(list) - shown; rest > 0 {
		if _, err := fmt.Fprintf(w, "... (%d more)\n", rest); err != nil {
			return err
		}
	}
	return nil
}

// RawDiffSummaryRow is one line of the cross-sequence rawdiff summary.
type RawDiffSummaryRow struct {
	Index      string
	Sequence   string
	StreamOnly int
	MmapOnly   int
	ReportPath string
}

// WriteRawDiffSummary emits the aggregate TSV across all analyzed sequences.
func WriteRawDiffSummary(w io.Writer, rows []RawDiffSummaryRow) error {
	if _, err := fmt.Fprintln(w, "idx\tseq\tstream_only\tmmap_only\treport"); err != nil {
		return err
	}
	for _, r := range rows {
		_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", r.Index, r.Sequence, r.StreamOnly, r.MmapOnly, r.ReportPath)
		if err != nil {
			return err
		}
	}
	return nil
}
