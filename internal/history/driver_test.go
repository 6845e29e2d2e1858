package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/cochange/pkg/gitlib"
)

func TestDriver_Each_YieldsConsecutivePairs(t *testing.T) {
	t.Parallel()

	repo := gitlib.InitTestRepo(t)
	first := gitlib.CommitFiles(t, repo, "init", map[string]string{"a.rb": "a\n"})
	second := gitlib.CommitFiles(t, repo, "change b", map[string]string{"b.rb": "b\n"})
	third := gitlib.CommitFiles(t, repo, "change c", map[string]string{"c.rb": "c\n"})

	var transitions []Transition

	driver := NewDriver(repo, 0, nil)
	err := driver.Each(func(tr Transition) error {
		transitions = append(transitions, tr)

		return nil
	})
	require.NoError(t, err)

	require.Len(t, transitions, 2)

	// Newest pair first: (third, second), then (second, first).
	assert.Equal(t, third, transitions[0].Commit)
	assert.Equal(t, second, transitions[0].Predecessor)
	assert.Equal(t, second, transitions[1].Commit)
	assert.Equal(t, first, transitions[1].Predecessor)

	require.Len(t, transitions[0].Changes, 1)
	assert.Equal(t, "c.rb", transitions[0].Changes[0].NewPath)

	require.Len(t, transitions[1].Changes, 1)
	assert.Equal(t, "b.rb", transitions[1].Changes[0].NewPath)
}

func TestDriver_Each_WindowCapsTransitions(t *testing.T) {
	t.Parallel()

	repo := gitlib.InitTestRepo(t)
	gitlib.CommitFiles(t, repo, "one", map[string]string{"a.rb": "1\n"})
	gitlib.CommitFiles(t, repo, "two", map[string]string{"a.rb": "2\n"})
	gitlib.CommitFiles(t, repo, "three", map[string]string{"a.rb": "3\n"})
	gitlib.CommitFiles(t, repo, "four", map[string]string{"a.rb": "4\n"})

	count := 0

	driver := NewDriver(repo, 2, nil)
	err := driver.Each(func(Transition) error {
		count++

		return nil
	})
	require.NoError(t, err)

	// A window of 2 commits holds exactly one adjacent pair.
	assert.Equal(t, 1, count)
}

func TestDriver_Each_SingleCommitYieldsNothing(t *testing.T) {
	t.Parallel()

	repo := gitlib.InitTestRepo(t)
	gitlib.CommitFiles(t, repo, "init", map[string]string{"a.rb": "a\n"})

	driver := NewDriver(repo, 0, nil)
	err := driver.Each(func(Transition) error {
		t.Fatal("unexpected transition")

		return nil
	})
	require.NoError(t, err)
}

func TestDriver_Each_PropagatesCallbackError(t *testing.T) {
	t.Parallel()

	repo := gitlib.InitTestRepo(t)
	gitlib.CommitFiles(t, repo, "one", map[string]string{"a.rb": "1\n"})
	gitlib.CommitFiles(t, repo, "two", map[string]string{"a.rb": "2\n"})

	sentinel := errors.New("stop")

	driver := NewDriver(repo, 0, nil)
	err := driver.Each(func(Transition) error {
		return sentinel
	})

	require.ErrorIs(t, err, sentinel)
}

func TestDriver_Each_DeletionCarriesNoNewPath(t *testing.T) {
	t.Parallel()

	repo := gitlib.InitTestRepo(t)
	gitlib.CommitFiles(t, repo, "add", map[string]string{"doomed.rb": "x\n", "keep.rb": "y\n"})
	gitlib.RemoveFiles(t, repo, "remove", "doomed.rb")

	var got gitlib.Changes

	driver := NewDriver(repo, 0, nil)
	err := driver.Each(func(tr Transition) error {
		got = tr.Changes

		return nil
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, gitlib.Deleted, got[0].Kind)
	assert.Equal(t, "doomed.rb", got[0].OldPath)
	assert.Empty(t, got[0].NewPath)
}
