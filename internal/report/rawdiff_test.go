// internal/report/rawdiff_test.go
package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"g4diff/internal/hits"
)

func TestWriteRawDiff(t *testing.T) {
	rd := RawDiff{
		Sequence:      "gggttaggg",
		Index:         "1",
		DiffCount:     4,
		MmapMatches:   10,
		StreamMatches: 12,
		MmapTotal:     3,
		StreamTotal:   5,
		StreamOnly: []hits.Candidate{
			{Start: 1, End: 9, GScore: 2, Seq: "gggttaggg"},
			{Start: 50, End: 58, GScore: 3, Seq: "gggttaggg"},
		},
		MmapOnly: nil,
	}
	var buf strings.Builder
	require.NoError(t, WriteRawDiff(&buf, rd, 1))

	out := buf.String()
	assert.Contains(t, out, "Sequence: gggttaggg\n")
	assert.Contains(t, out, "stream_only_count: 2\n")
	assert.Contains(t, out, "mmap_only_count: 0\n")
	assert.Contains(t, out, "--- stream_only (examples) ---\nstart=1 end=9 gscore=2 seq=gggttaggg\n... (1 more)\n")
	assert.Contains(t, out, "--- mmap_only (examples) ---\n")
}

func TestWriteRawDiffSummary(t *testing.T) {
	rows := []RawDiffSummaryRow{
		{Index: "1", Sequence: "ggg", StreamOnly: 2, MmapOnly: 0, ReportPath: "out/rawdiff_1_ggg.report.txt"},
	}
	var buf strings.Builder
	require.NoError(t, WriteRawDiffSummary(&buf, rows))
	assert.Equal(t,
		"idx\tseq\tstream_only\tmmap_only\treport\n"+
			"1\tggg\t2\t0\tout/rawdiff_1_ggg.report.txt\n",
		buf.String())
}
