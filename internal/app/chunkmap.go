// internal/app/chunkmap.go
package app

import (
	"fmt"
	"io"

	"g4diff/internal/chunkmap"
	"g4diff/internal/hits"
	"g4diff/internal/multiset"
	"g4diff/internal/report"
	"g4diff/internal/tracelog"
)

// ChunkMapOptions configures the stream-only → chunk correlation run.
type ChunkMapOptions struct {
	StreamCSV     string
	MmapCSV       string
	Log           string // chunked-mode run log carrying STREAM_CHUNK events
	Out           string // detail CSV path
	SampleLimit   int
	TopOffsets    int
	CaseSensitive bool
}

// RunChunkMap finds the rows present only in the chunked run, correlates
// each back to the trace log, and resolves the chunk that produced it.
// Records with zero trace matches are counted as not found, never guessed.
func RunChunkMap(o ChunkMapOptions, stdout io.Writer) error {
	streamHits, err := hits.Load(o.StreamCSV, o.CaseSensitive)
	if err != nil {
		return configErr(err)
	}
	mmapHits, err := hits.Load(o.MmapCSV, o.CaseSensitive)
	if err != nil {
		return configErr(err)
	}
	events, err := tracelog.ScanFile(o.Log)
	if err != nil {
		return configErr(err)
	}

	streamOnlyE, _ := multiset.Diff(streamHits, mmapHits)
	streamOnly := multiset.Expand(streamOnlyE)
	hits.Sort(streamOnly)

	if _, err := fmt.Fprintf(stdout, "stream_total=%d mmap_total=%d stream_only_count=%d\n",
		len(streamHits), len(mmapHits), len(streamOnly)); err != nil {
		return writeErr(err)
	}

	ix := chunkmap.NewIndex(events)
	var mapped []chunkmap.Mapping
	notFound := 0
	for _, h := range streamOnly {
		m := ix.Correlate(h)
		if len(m.Matches) == 0 {
			notFound++
			continue
		}
		mapped = append(mapped, m)
	}

	summary := chunkmap.Summarize(mapped, notFound)
	if err := report.WriteChunkSummary(stdout, summary, o.TopOffsets); err != nil {
		return writeErr(err)
	}

	if err := writeFileAtomic(o.Out, func(w io.Writer) error {
		return report.WriteMappingCSV(w, mapped, o.SampleLimit)
	}); err != nil {
		return writeErr(err)
	}
	_, err = fmt.Fprintf(stdout, "Wrote detailed sample report to %s\n", o.Out)
	return writeErr(err)
}
