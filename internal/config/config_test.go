// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g4diff.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
diff:
  chromosome: chr2L
  report_limit: 5
chunkmap:
  sample_limit: 100
`), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, f.Diff.Chromosome)
	assert.Equal(t, "chr2L", *f.Diff.Chromosome)
	assert.Equal(t, 5, *f.Diff.ReportLimit)
	assert.Equal(t, 100, *f.ChunkMap.SampleLimit)
	assert.Nil(t, f.Diff.CaseSensitive, "absent keys stay nil")
	assert.Nil(t, f.Trace.TopN)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestApplyOverlayPrecedence(t *testing.T) {
	fileVal := 7

	// flag untouched: file value applies
	got := 20
	ApplyInt(&got, &fileVal, false)
	assert.Equal(t, 7, got)

	// flag explicitly set: flag wins
	got = 3
	ApplyInt(&got, &fileVal, true)
	assert.Equal(t, 3, got)

	// nothing in the file: default survives
	got = 20
	ApplyInt(&got, nil, false)
	assert.Equal(t, 20, got)
}
