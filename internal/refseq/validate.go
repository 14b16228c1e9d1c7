// internal/refseq/validate.go
package refseq

import (
	"strings"

	"g4diff/internal/hits"
)

// Failure reasons, in check order. Validation stops at the first failing
// condition, so a hit with end < start is never evaluated for sequence
// equality.
const (
	ReasonNegativeCoordinate  = "negative coordinate"
	ReasonEndPrecedesStart    = "end precedes start"
	ReasonEndExceedsReference = "end exceeds reference length"
	ReasonLengthMismatch      = "length mismatch with reference slice"
	ReasonSequenceMismatch    = "sequence mismatch vs reference"
)

// Result classifies one hit against its reference.
type Result struct {
	OK     bool
	Reason string
}

func ok() Result                { return Result{OK: true} }
func fail(reason string) Result { return Result{Reason: reason} }

// Validate checks a hit's bounds and sequence against the reference string.
// Case folding, when enabled, applies symmetrically to the sliced reference
// and the stored hit sequence. Pure: same inputs, same classification.
func Validate(h hits.Hit, reference string, caseSensitive bool) Result {
	if h.Start < 0 || h.End < 0 {
		return fail(ReasonNegativeCoordinate)
	}
	if h.End < h.Start {
		return fail(ReasonEndPrecedesStart)
	}
	if h.End > len(reference) {
		return fail(ReasonEndExceedsReference)
	}
	slice := reference[h.Start:h.End]
	if len(slice) != h.Length {
		return fail(ReasonLengthMismatch)
	}
	left, right := slice, h.Sequence
	if !caseSensitive {
		left = strings.ToLower(left)
		right = strings.ToLower(right)
	}
	if left != right {
		return fail(ReasonSequenceMismatch)
	}
	return ok()
}
