package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/cochange/pkg/gitlib"
)

func TestNewMineCommand_RegistersFlags(t *testing.T) {
	t.Parallel()

	cmd := NewMineCommand()

	for _, name := range []string{"limit", "out-dir", "config", "cpuprofile", "heapprofile", "compress", "plot", "top"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag %s", name)
	}
}

func TestResolveStartDir_DefaultsToCWD(t *testing.T) {
	t.Parallel()

	dir, err := resolveStartDir(nil)
	require.NoError(t, err)
	assert.Equal(t, ".", dir)
}

func TestResolveStartDir_ExpandsTilde(t *testing.T) {
	t.Parallel()

	dir, err := resolveStartDir([]string{"~/src/repo"})
	require.NoError(t, err)

	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "src/repo"), filepath.Clean(dir))
}

func TestMineCommand_EndToEnd(t *testing.T) {
	repo := gitlib.InitTestRepo(t)
	gitlib.CommitFiles(t, repo, "init", map[string]string{"base.rb": "0\n"})
	gitlib.CommitFiles(t, repo, "pair", map[string]string{
		"lib/a.rb": "1\n",
		"lib/b.rb": "1\n",
	})

	outDir := t.TempDir()

	cmd := NewMineCommand()
	cmd.SetArgs([]string{repo.Path(), "--out-dir", outDir, "--limit", "100", "--top", "5"})

	require.NoError(t, cmd.Execute())

	for _, name := range []string{"node_list.csv", "edge_list.csv", "adjacency_matrix.csv"} {
		info, err := os.Stat(filepath.Join(outDir, name))
		require.NoError(t, err, "expected artifact %s", name)
		assert.Positive(t, info.Size())
	}
}

func TestMineCommand_PlotArtifact(t *testing.T) {
	repo := gitlib.InitTestRepo(t)
	gitlib.CommitFiles(t, repo, "init", map[string]string{"base.rb": "0\n"})
	gitlib.CommitFiles(t, repo, "pair", map[string]string{
		"lib/a.rb": "1\n",
		"lib/b.rb": "1\n",
	})

	outDir := t.TempDir()

	cmd := NewMineCommand()
	cmd.SetArgs([]string{repo.Path(), "--out-dir", outDir, "--plot"})

	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(outDir, "coupling.html"))
	require.NoError(t, err)
}

func TestMineCommand_RejectsBadLimit(t *testing.T) {
	repo := gitlib.InitTestRepo(t)
	gitlib.CommitFiles(t, repo, "init", map[string]string{"base.rb": "0\n"})

	cmd := NewMineCommand()
	cmd.SetArgs([]string{repo.Path(), "--limit", "1"})

	require.Error(t, cmd.Execute())
}
