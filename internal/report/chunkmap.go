// internal/report/chunkmap.go
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"g4diff/internal/chunkmap"
)

const (
	// per-row sample caps for the detail CSV; full match sets are kept in
	// memory but the CSV stays browsable
	sampleSnippets = 3
	sampleLogLines = 3
)

// WriteMappingCSV emits the per-record chunk mapping detail. sampleLimit
// caps the number of mapped records written (<0 = all); the aggregate
// summary always covers the full set.
func WriteMappingCSV(w io.Writer, mapped []chunkmap.Mapping, sampleLimit int) error {
	cw := csv.NewWriter(w)
	header := []string{
		"row_csv", "start", "end", "sequence",
		"matched_entries_count", "chunk_offsets", "chunk_snippets_samples", "sample_log_lines", "ambiguous_chunk",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	n := len(mapped)
	if sampleLimit >= 0 && n > sampleLimit {
		n = sampleLimit
	}
	for _, m := range mapped[:n] {
		var offsets []string
		for _, off := range m.ChunkOffsets {
			offsets = append(offsets, strconv.Itoa(off))
		}
		var snippets, lines []string
		for i, match := range m.Matches {
			if i < sampleSnippets && match.HasChunk {
				snippets = append(snippets, match.Chunk.Snippet)
			}
			if i < sampleLogLines {
				lines = append(lines, match.Event.Raw)
			}
		}
		rec := []string{
			m.Hit.Row(),
			strconv.Itoa(m.Hit.Start),
			strconv.Itoa(m.Hit.End),
			m.Hit.Sequence,
			strconv.Itoa(len(m.Matches)),
			strings.Join(offsets, ";"),
			strings.Join(snippets, "||"),
			strings.Join(lines, "||"),
			strconv.FormatBool(m.Ambiguous),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteChunkSummary prints the aggregate: how many records mapped, how many
// had no trace match at all, how many were chunk-ambiguous, and the chunk
// offsets most implicated (descending count, ascending offset), capped at
// top entries (<0 = all).
func WriteChunkSummary(w io.Writer, s chunkmap.Summary, top int) error {
	_, err := fmt.Fprintf(w, "mapped=%d not_found=%d ambiguous_chunk=%d\n", s.Mapped, s.NotFound, s.Ambiguous)
	if err != nil {
		return err
	}
	if len(s.ByChunk) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "top chunk offsets (count):"); err != nil {
		return err
	}
	n := len(s.ByChunk)
	if top >= 0 && n > top {
		n = top
	}
	for _, cc := range s.ByChunk[:n] {
		if _, err := fmt.Fprintf(w, "  %d\t%d\n", cc.Offset, cc.Count); err != nil {
			return err
		}
	}
	return nil
}
