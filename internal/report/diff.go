// internal/report/diff.go

// Package report renders the engine's findings as stable plain-text and CSV
// artifacts. Output for identical input must stay byte-identical across
// runs, so every listing here is fed pre-sorted data and adds no timestamps.
package report

import (
	"fmt"
	"io"

	"g4diff/internal/hits"
	"g4diff/internal/refseq"
)

const previewLen = 30

// DiffSection writes one direction of a hit-table comparison: a capped
// per-row detail listing with validation status, plus a trailing count of
// omitted rows. The returned failure count covers all rows, including the
// ones the cap hid. limit < 0 lists everything.
func DiffSection(w io.Writer, label string, list []hits.Hit, reference string, caseSensitive bool, limit int) (int, error) {
	if _, err := fmt.Fprintf(w, "\n%s: %d unique row(s)\n", label, len(list)); err != nil {
		return 0, err
	}
	shown := len(list)
	if limit >= 0 && shown > limit {
		shown = limit
	}
	failures := 0
	for i, h := range list {
		v := refseq.Validate(h, reference, caseSensitive)
		if !v.OK {
			failures++
		}
		if i >= shown {
			continue
		}
		status := "OK"
		if !v.OK {
			status = fmt.Sprintf("FAIL (%s)", v.Reason)
		}
		_, err := fmt.Fprintf(w, "  start=%6d end=%6d len=%3d gscore=%2d status=%s seq=%s\n",
			h.Start, h.End, h.Length, h.GScore, status, preview(h.Sequence))
		if err != nil {
			return failures, err
		}
	}
	if remaining := len(list) - shown; remaining > 0 {
		if _, err := fmt.Fprintf(w, "  … %d more row(s) omitted (raise --report-limit to see all)\n", remaining); err != nil {
			return failures, err
		}
	}
	return failures, nil
}

func preview(seq string) string {
	if len(seq) > previewLen {
		return seq[:previewLen] + "…"
	}
	return seq
}
