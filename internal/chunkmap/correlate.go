// internal/chunkmap/correlate.go
package chunkmap

import (
	"sort"

	"g4diff/internal/hits"
	"g4diff/internal/tracelog"
)

// maxMatchesPerRecord caps how many log lines one unmatched record keeps.
// Highly repetitive sequences can match thousands of lines; past a handful
// the extra matches add no diagnostic signal.
const maxMatchesPerRecord = 8

// Match pairs one matching log event with the chunk resolved for it.
type Match struct {
	Event    tracelog.Event
	Chunk    tracelog.ChunkEvent
	HasChunk bool
}

// Mapping is the correlation result for one unmatched hit record. When
// the matches resolve to more than one distinct chunk the record is flagged
// ambiguous rather than silently resolved to a single answer; the full
// match set is preserved either way.
type Mapping struct {
	Hit          hits.Hit
	Matches      []Match
	ChunkOffsets []int // distinct, ascending
	Ambiguous    bool
}

type exactKey struct {
	start, end int
	seq        string
}

// Index answers "which log lines mention this hit" in constant time. Built
// once per log over the consolidated-hit events (MERGED_G4, STREAM_HIT);
// raw candidates are indexed separately by the rawdiff path.
type Index struct {
	exact   map[exactKey][]tracelog.Event
	bySeq   map[string][]tracelog.Event
	locator *Locator
}

// NewIndex builds the correlation index from one log's event sequence.
func NewIndex(events []tracelog.Event) *Index {
	ix := &Index{
		exact:   map[exactKey][]tracelog.Event{},
		bySeq:   map[string][]tracelog.Event{},
		locator: NewLocator(events),
	}
	for _, ev := range events {
		if ev.Kind != tracelog.KindMergedHit && ev.Kind != tracelog.KindStreamHit {
			continue
		}
		k := exactKey{start: ev.Candidate.Start, end: ev.Candidate.End, seq: ev.Candidate.Seq}
		ix.exact[k] = append(ix.exact[k], ev)
		ix.bySeq[ev.Candidate.Seq] = append(ix.bySeq[ev.Candidate.Seq], ev)
	}
	return ix
}

// Locator exposes the index's chunk locator.
func (ix *Index) Locator() *Locator { return ix.locator }

// Correlate maps one hit to its trace matches and their chunks. Exact
// (start, end, sequence) matches win; when none exist the sequence-only
// matches are used instead. Zero matches means the root cause was not
// found in the log, reported as such rather than guessed.
func (ix *Index) Correlate(h hits.Hit) Mapping {
	events := ix.exact[exactKey{start: h.Start, end: h.End, seq: h.Sequence}]
	if len(events) == 0 {
		events = ix.bySeq[h.Sequence]
	}
	if len(events) > maxMatchesPerRecord {
		events = events[:maxMatchesPerRecord]
	}

	m := Mapping{Hit: h}
	seen := map[int]bool{}
	for _, ev := range events {
		match := Match{Event: ev}
		if chunk, ok := ix.locator.Locate(ev.Line); ok {
			match.Chunk = chunk
			match.HasChunk = true
			if !seen[chunk.Offset] {
				seen[chunk.Offset] = true
				m.ChunkOffsets = append(m.ChunkOffsets, chunk.Offset)
			}
		}
		m.Matches = append(m.Matches, match)
	}
	sort.Ints(m.ChunkOffsets)
	m.Ambiguous = len(m.ChunkOffsets) > 1
	return m
}

// Summary aggregates the correlation outcome across all unmatched records.
type Summary struct {
	Mapped    int
	NotFound  int
	Ambiguous int
	ByChunk   []ChunkCount // descending count, then ascending offset
}

// ChunkCount counts how many unmatched records resolve to one chunk offset.
type ChunkCount struct {
	Offset int
	Count  int
}

// Summarize rolls mappings up by implicated chunk offset to highlight the
// chunk(s) most responsible for divergence. A record with several distinct
// offsets contributes once to each.
func Summarize(mapped []Mapping, notFound int) Summary {
	s := Summary{Mapped: len(mapped), NotFound: notFound}
	byChunk := map[int]int{}
	for _, m := range mapped {
		if m.Ambiguous {
			s.Ambiguous++
		}
		for _, off := range m.ChunkOffsets {
			byChunk[off]++
		}
	}
	for off, n := range byChunk {
		s.ByChunk = append(s.ByChunk, ChunkCount{Offset: off, Count: n})
	}
	sort.Slice(s.ByChunk, func(i, j int) bool {
		if s.ByChunk[i].Count != s.ByChunk[j].Count {
			return s.ByChunk[i].Count > s.ByChunk[j].Count
		}
		return s.ByChunk[i].Offset < s.ByChunk[j].Offset
	})
	return s
}
