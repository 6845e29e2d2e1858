package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_WritePlot_RendersHTML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, NewWriter(dir, false, nil).WritePlot(buildTestGraph(t), 10))

	body, err := os.ReadFile(filepath.Join(dir, PlotFile))
	require.NoError(t, err)

	assert.Contains(t, string(body), "Top file couples")
	assert.Contains(t, string(body), "a.rb")
}

func TestTruncatePath_LongPathsKeepTail(t *testing.T) {
	t.Parallel()

	long := "app/" + strings.Repeat("deeply/nested/", 10) + "file.rb"

	got := truncatePath(long)
	assert.LessOrEqual(t, len([]rune(got)), maxPathLen+1)
	assert.Contains(t, got, "file.rb")
}
