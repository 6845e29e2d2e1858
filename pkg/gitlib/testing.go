package gitlib

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	git2go "github.com/libgit2/git2go/v34"
	"github.com/stretchr/testify/require"
)

// InitTestRepo creates a throwaway non-bare repository under t.TempDir().
// The repository is freed automatically when the test finishes.
func InitTestRepo(t *testing.T) *Repository {
	t.Helper()

	raw, err := git2go.InitRepository(t.TempDir(), false)
	require.NoError(t, err)

	repo := &Repository{repo: raw, path: raw.Path()}
	t.Cleanup(repo.Free)

	return repo
}

// CommitFiles writes the given files into the worktree, stages them and
// commits on HEAD. Files are staged in sorted name order so the resulting
// tree (and therefore diff delta order) is deterministic.
func CommitFiles(t *testing.T, repo *Repository, message string, files map[string]string) Hash {
	t.Helper()

	workdir := repo.repo.Workdir()
	require.NotEmpty(t, workdir)

	idx, err := repo.repo.Index()
	require.NoError(t, err)
	defer idx.Free()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		full := filepath.Join(workdir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(files[name]), 0o644))
		require.NoError(t, idx.AddByPath(name))
	}

	return commitIndex(t, repo, idx, message)
}

// RemoveFiles deletes the given paths from the worktree and index and
// commits the removal on HEAD.
func RemoveFiles(t *testing.T, repo *Repository, message string, names ...string) Hash {
	t.Helper()

	workdir := repo.repo.Workdir()
	require.NotEmpty(t, workdir)

	idx, err := repo.repo.Index()
	require.NoError(t, err)
	defer idx.Free()

	for _, name := range names {
		require.NoError(t, os.Remove(filepath.Join(workdir, name)))
		require.NoError(t, idx.RemoveByPath(name))
	}

	return commitIndex(t, repo, idx, message)
}

func commitIndex(t *testing.T, repo *Repository, idx *git2go.Index, message string) Hash {
	t.Helper()

	treeOid, err := idx.WriteTree()
	require.NoError(t, err)
	require.NoError(t, idx.Write())

	tree, err := repo.repo.LookupTree(treeOid)
	require.NoError(t, err)
	defer tree.Free()

	sig := &git2go.Signature{Name: "tester", Email: "tester@example.com", When: time.Now()}

	var parents []*git2go.Commit

	head, headErr := repo.repo.Head()
	if headErr == nil {
		parent, lookupErr := repo.repo.LookupCommit(head.Target())
		require.NoError(t, lookupErr)
		defer parent.Free()

		parents = append(parents, parent)

		head.Free()
	}

	oid, err := repo.repo.CreateCommit("HEAD", sig, sig, message, tree, parents...)
	require.NoError(t, err)

	return HashFromOid(oid)
}
