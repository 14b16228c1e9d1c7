// internal/chunkmap/locator.go

// Package chunkmap correlates unmatched hit records back to the chunk that
// produced them, via the trace log's chunk-boundary announcements.
package chunkmap

import (
	"sort"

	"g4diff/internal/tracelog"
)

// Locator resolves a log event index to the nearest preceding chunk
// announcement. This models the causal assumption that a chunked-mode hit
// was produced by the most recently announced chunk before it in the log
// stream; it is not a containment check on byte offsets.
type Locator struct {
	chunks []tracelog.ChunkEvent // ascending by Line
}

// NewLocator collects the chunk-boundary events from an event sequence.
// Events arrive in log order; the sort guards against callers that merge
// several scans.
func NewLocator(events []tracelog.Event) *Locator {
	var chunks []tracelog.ChunkEvent
	for _, ev := range events {
		if ev.Kind == tracelog.KindChunkBoundary {
			chunks = append(chunks, ev.Chunk)
		}
	}
	sort.Slice(chunks, func(i, j int) bool { return chunks[i].Line < chunks[j].Line })
	return &Locator{chunks: chunks}
}

// Locate returns the chunk with the greatest Line not exceeding idx. The
// boundary is inclusive: a query exactly at a chunk's own line returns that
// chunk. Returns false when the event precedes any chunk announcement.
func (l *Locator) Locate(idx int) (tracelog.ChunkEvent, bool) {
	// first chunk with Line > idx; the one before it is the answer
	i := sort.Search(len(l.chunks), func(i int) bool { return l.chunks[i].Line > idx })
	if i == 0 {
		return tracelog.ChunkEvent{}, false
	}
	return l.chunks[i-1], true
}

// Chunks exposes the ordered chunk events, for reporting.
func (l *Locator) Chunks() []tracelog.ChunkEvent { return l.chunks }
