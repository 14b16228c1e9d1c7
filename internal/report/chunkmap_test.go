// internal/report/chunkmap_test.go
package report

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"g4diff/internal/chunkmap"
	"g4diff/internal/hits"
	"g4diff/internal/tracelog"
)

func sampleMapping() chunkmap.Mapping {
	return chunkmap.Mapping{
		Hit: hits.Hit{Start: 100, End: 130, Length: 30, Tetrads: 3, GScore: 19, Sequence: "gggttaggg"},
		Matches: []chunkmap.Match{
			{
				Event:    tracelog.Event{Line: 7, Raw: `DEBUG STREAM_HIT (offset=0): start=100 end=130 gscore=19 seq=gggttaggg`},
				Chunk:    tracelog.ChunkEvent{Line: 3, Offset: 0, Length: 4096, Snippet: `say "g"`},
				HasChunk: true,
			},
		},
		ChunkOffsets: []int{0},
	}
}

func TestWriteMappingCSV(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, WriteMappingCSV(&buf, []chunkmap.Mapping{sampleMapping()}, -1))

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "row_csv", rows[0][0])

	rec := rows[1]
	assert.Equal(t, "100,130,30,3,0,0,0,19,gggttaggg", rec[0])
	assert.Equal(t, "100", rec[1])
	assert.Equal(t, "gggttaggg", rec[3])
	assert.Equal(t, "1", rec[4])
	assert.Equal(t, "0", rec[5])
	assert.Equal(t, `say "g"`, rec[6], "snippets survive CSV escaping")
	assert.Equal(t, "false", rec[8])
}

func TestWriteMappingCSVSampleLimit(t *testing.T) {
	mapped := []chunkmap.Mapping{sampleMapping(), sampleMapping(), sampleMapping()}
	var buf strings.Builder
	require.NoError(t, WriteMappingCSV(&buf, mapped, 2))
	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3, "header plus two sampled records")
}

func TestWriteChunkSummary(t *testing.T) {
	s := chunkmap.Summary{
		Mapped:    5,
		NotFound:  1,
		Ambiguous: 2,
		ByChunk:   []chunkmap.ChunkCount{{Offset: 0, Count: 4}, {Offset: 4096, Count: 2}},
	}
	var buf strings.Builder
	require.NoError(t, WriteChunkSummary(&buf, s, 1))
	out := buf.String()
	assert.Contains(t, out, "mapped=5 not_found=1 ambiguous_chunk=2\n")
	assert.Contains(t, out, "  0\t4\n")
	assert.NotContains(t, out, "4096", "top cap respected")
}
