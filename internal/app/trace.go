// internal/app/trace.go
package app

import (
	"fmt"
	"io"
	"path/filepath"

	"g4diff/internal/hits"
	"g4diff/internal/report"
	"g4diff/internal/tracelog"
)

// TraceOptions configures trace extraction for the top differing sequences.
type TraceOptions struct {
	DiffPatch string // unified diff between the two runs' CSV outputs
	MmapCSV   string // used to learn which column holds the sequence
	MmapLog   string
	StreamLog string
	OutDir    string
	TopN      int
}

// RunTrace selects the sequences with the most diff entries and captures
// their marker lines from both runs' logs, one file per sequence plus a
// summary TSV.
func RunTrace(o TraceOptions, stdout, stderr io.Writer) error {
	seqCol, err := hits.SequenceColumn(o.MmapCSV)
	if err != nil {
		return configErr(err)
	}
	fmt.Fprintf(stderr, "using sequence column index %d from %s\n", seqCol, o.MmapCSV)

	counts, err := hits.CountDiffSequences(o.DiffPatch, seqCol)
	if err != nil {
		return configErr(err)
	}
	if len(counts) == 0 {
		fmt.Fprintln(stderr, "no differing sequences found in the diff")
		return nil
	}

	top := hits.TopSequences(counts, o.TopN)
	fmt.Fprintf(stderr, "top %d differing sequences:\n", len(top))
	for i, sc := range top {
		fmt.Fprintf(stderr, "%d. count=%d seq=%s\n", i+1, sc.Count, truncate(sc.Seq, 80))
	}

	var rows []report.TraceSummaryRow
	for i, sc := range top {
		capture, err := tracelog.ExtractSequence(sc.Seq, o.MmapLog, o.StreamLog, o.OutDir, tracelog.DefaultSectionCap)
		if err != nil {
			return writeErr(err)
		}
		rows = append(rows, report.TraceSummaryRow{Index: i + 1, DiffCount: sc.Count, Capture: capture})
	}

	summaryPath := filepath.Join(o.OutDir, "summary.txt")
	if err := writeFileAtomic(summaryPath, func(w io.Writer) error {
		return report.WriteTraceSummary(w, rows)
	}); err != nil {
		return writeErr(err)
	}
	_, err = fmt.Fprintf(stdout, "Per-sequence traces written under %s. Summary: %s\n", o.OutDir, summaryPath)
	return writeErr(err)
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
