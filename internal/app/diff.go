// internal/app/diff.go

// Package app orchestrates the reconciliation engine: it loads the inputs
// named by an explicit options record, runs the differ/validator/correlator
// packages, and renders reports. Commands stay thin argument binders.
package app

import (
	"fmt"
	"io"
	"strings"

	"g4diff/internal/hits"
	"g4diff/internal/multiset"
	"g4diff/internal/refseq"
	"g4diff/internal/report"
)

// DiffOptions configures one hit-table comparison run.
type DiffOptions struct {
	CSVA          string
	CSVB          string
	FastaPath     string
	Chromosome    string
	ReportLimit   int
	CaseSensitive bool
}

// RunDiff compares two hit tables as multisets, validates every differing
// row against the reference, and writes both per-direction listings. A
// non-nil error with exit code 1 signals validation failures; the run still
// reports everything before returning it.
func RunDiff(o DiffOptions, stdout io.Writer) error {
	hitsA, err := hits.Load(o.CSVA, o.CaseSensitive)
	if err != nil {
		return configErr(err)
	}
	hitsB, err := hits.Load(o.CSVB, o.CaseSensitive)
	if err != nil {
		return configErr(err)
	}
	refs, err := refseq.Load(o.FastaPath)
	if err != nil {
		return configErr(err)
	}
	reference, ok := refs[o.Chromosome]
	if !ok {
		available := strings.Join(refs.Names(), ", ")
		if available == "" {
			available = "<none>"
		}
		return configf("chromosome %q not found in FASTA. available headers: %s", o.Chromosome, available)
	}

	aOnlyEntries, bOnlyEntries := multiset.Diff(hitsA, hitsB)
	aOnly := multiset.Expand(aOnlyEntries)
	bOnly := multiset.Expand(bOnlyEntries)
	hits.Sort(aOnly)
	hits.Sort(bOnly)

	if _, err := fmt.Fprintf(stdout, "Comparing %s (rows=%d) vs %s (rows=%d)\n",
		o.CSVA, len(hitsA), o.CSVB, len(hitsB)); err != nil {
		return writeErr(err)
	}

	failures := 0
	n, err := report.DiffSection(stdout, "Rows only in "+o.CSVA, aOnly, reference, o.CaseSensitive, o.ReportLimit)
	if err != nil {
		return writeErr(err)
	}
	failures += n
	n, err = report.DiffSection(stdout, "Rows only in "+o.CSVB, bOnly, reference, o.CaseSensitive, o.ReportLimit)
	if err != nil {
		return writeErr(err)
	}
	failures += n

	if failures > 0 {
		return validationf("validation completed with %d failure(s)", failures)
	}
	if _, err := fmt.Fprintln(stdout, "\nValidation completed with no sequence mismatches."); err != nil {
		return writeErr(err)
	}
	return nil
}
