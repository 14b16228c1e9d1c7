// internal/app/rawdiff_test.go
package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRawDiff(t *testing.T) {
	dir := t.TempDir()
	capture := writeFile(t, dir, "seq_gggttaggg.txt", strings.Join([]string{
		"Sequence: gggttaggg",
		"",
		"--- mmap log matches ---",
		"[MMAP] DEBUG RAW_G4 start=100 end=130 gscore=19 seq=gggttaggg",
		"[MMAP] DEBUG RAW_G4 start=100 end=130 gscore=19 seq=gggttaggg", // duplicate emission
		"--- end mmap (2 matches) ---",
		"",
		"--- stream log matches ---",
		"[STREAM] DEBUG RAW_G4 start=100 end=130 gscore=19 seq=gggttaggg",
		"[STREAM] DEBUG RAW_G4 start=200 end=230 gscore=21 seq=gggttaggg",
		"--- end stream (2 matches) ---",
	}, "\n") + "\n")

	summary := writeFile(t, dir, "summary.txt",
		"index\tdiff_count\tmmap_matches\tstream_matches\tout_path\tsequence\n"+
			"1\t3\t2\t2\t"+capture+"\tgggttaggg\n"+
			"2\t1\t0\t0\t"+filepath.Join(dir, "seq_skip.txt")+"\tskipped\n")

	outDir := filepath.Join(dir, "reports")
	var stdout bytes.Buffer
	err := RunRawDiff(RawDiffOptions{Summary: summary, OutDir: outDir, MaxSamples: 50}, &stdout)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Wrote 1 reports to "+outDir)

	reportPath := filepath.Join(outDir, "rawdiff_1_gggttaggg.report.txt")
	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "mmap_total_raw: 1\n", "duplicate raw emissions collapse")
	assert.Contains(t, text, "stream_total_raw: 2\n")
	assert.Contains(t, text, "stream_only_count: 1\n")
	assert.Contains(t, text, "mmap_only_count: 0\n")
	assert.Contains(t, text, "start=200 end=230 gscore=21 seq=gggttaggg\n")

	sumData, err := os.ReadFile(filepath.Join(outDir, "rawdiff_summary.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(sumData), "1\tgggttaggg\t1\t0\t"+reportPath)
	assert.NotContains(t, string(sumData), "skipped", "zero-match sequences are skipped")
}

func TestRunRawDiffMissingCaptureIsEmpty(t *testing.T) {
	dir := t.TempDir()
	summary := writeFile(t, dir, "summary.txt",
		"index\tdiff_count\tmmap_matches\tstream_matches\tout_path\tsequence\n"+
			"1\t3\t2\t2\t"+filepath.Join(dir, "absent.txt")+"\tgggg\n")
	outDir := filepath.Join(dir, "reports")

	var stdout bytes.Buffer
	err := RunRawDiff(RawDiffOptions{Summary: summary, OutDir: outDir, MaxSamples: 50}, &stdout)
	require.NoError(t, err, "missing capture files yield empty candidate sets")

	data, err := os.ReadFile(filepath.Join(outDir, "rawdiff_1_gggg.report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "mmap_total_raw: 0\n")
}
