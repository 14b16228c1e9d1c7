// internal/hits/column_test.go
package hits

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSequenceColumnByName(t *testing.T) {
	path := writeTemp(t, "hits.csv", "start,end,sequence,gscore\n")
	col, err := SequenceColumn(path)
	require.NoError(t, err)
	assert.Equal(t, 2, col)
}

func TestSequenceColumnFallsBackToLast(t *testing.T) {
	path := writeTemp(t, "hits.csv", "a,b,c\n1,2,3\n")
	col, err := SequenceColumn(path)
	require.NoError(t, err)
	assert.Equal(t, 2, col)
}

func TestSequenceColumnEmptyHeader(t *testing.T) {
	path := writeTemp(t, "empty.csv", "")
	_, err := SequenceColumn(path)
	assert.ErrorContains(t, err, "empty or missing header")
}

func TestCountDiffSequences(t *testing.T) {
	patch := `--- a/mmap.csv
+++ b/stream.csv
@@ -1,3 +1,4 @@
 100,130,30,3,2,4,2,19,gggttaggg
+200,230,30,3,2,4,2,21,gggaaaggg
-300,330,30,3,2,4,2,18,gggcccggg
+200,231,31,3,2,4,2,21,gggaaaggg
`
	path := writeTemp(t, "diff.patch", patch)
	counts, err := CountDiffSequences(path, 8)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"gggaaaggg": 2, "gggcccggg": 1}, counts)
}

func TestTopSequencesDeterministicTieBreak(t *testing.T) {
	counts := map[string]int{"bbb": 2, "aaa": 2, "ccc": 5}
	top := TopSequences(counts, 3)
	require.Equal(t, []SequenceCount{{"ccc", 5}, {"aaa", 2}, {"bbb", 2}}, top)

	top2 := TopSequences(counts, 2)
	assert.Len(t, top2, 2)
	assert.Equal(t, "ccc", top2[0].Seq)
}
