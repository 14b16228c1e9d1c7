// internal/hits/hits.go
package hits

import (
	"sort"
	"strconv"
	"strings"
)

// Hit is one motif occurrence as reported by the pipeline's tabular output.
// Identity is the full field tuple: two physically distinct rows with
// identical fields are indistinguishable and accumulate as multiplicity.
type Hit struct {
	Start    int
	End      int
	Length   int
	Tetrads  int
	Y1       int
	Y2       int
	Y3       int
	GScore   int
	Sequence string
}

// Candidate is the reduced, log-derived form of Hit. Trace logs do not
// always carry the structural counts, so only the positional fields and
// score survive. The execution mode that produced a candidate is the
// partition key, not part of the value, so mode-vs-mode diffs can match.
type Candidate struct {
	Start  int
	End    int
	GScore int
	Seq    string
}

// Fields renders the hit as its canonical CSV row fields, in required-column
// order.
func (h Hit) Fields() []string {
	return []string{
		strconv.Itoa(h.Start), strconv.Itoa(h.End), strconv.Itoa(h.Length),
		strconv.Itoa(h.Tetrads), strconv.Itoa(h.Y1), strconv.Itoa(h.Y2), strconv.Itoa(h.Y3),
		strconv.Itoa(h.GScore), h.Sequence,
	}
}

// Row is the canonical comma-joined form of Fields.
func (h Hit) Row() string { return strings.Join(h.Fields(), ",") }

// Sort orders hits by (Start, End, Sequence) ascending. This ordering is
// load-bearing: report output must be reproducible independent of input
// file order.
func Sort(list []Hit) {
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Sequence < b.Sequence
	})
}

// SortCandidates orders candidates by (Start, End, Seq) ascending.
func SortCandidates(list []Candidate) {
	sort.Slice(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.Seq < b.Seq
	})
}
