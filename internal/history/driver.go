// Package history supplies the bounded sequence of commit transitions that
// feeds coupling analysis: a capped walk from the branch tip, paired off
// into (commit, predecessor) transitions with their tree diffs.
package history

import (
	"fmt"
	"log/slog"

	"github.com/Sumatoshi-tech/cochange/pkg/gitlib"
)

// DefaultWindow is the maximum number of leading commits walked from the
// branch tip when no override is configured.
const DefaultWindow = 1000

// Transition is one (commit, predecessor-in-walk) pair together with the
// file changes between their trees.
type Transition struct {
	Commit      gitlib.Hash
	Predecessor gitlib.Hash
	Changes     gitlib.Changes
}

// Driver walks a repository's history window and yields transitions one at
// a time, strictly sequentially. Any git error aborts the walk.
type Driver struct {
	repo   *gitlib.Repository
	window int
	logger *slog.Logger
}

// NewDriver creates a driver over repo. A window below two yields no
// transitions; zero selects DefaultWindow.
func NewDriver(repo *gitlib.Repository, window int, logger *slog.Logger) *Driver {
	if window <= 0 {
		window = DefaultWindow
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Driver{repo: repo, window: window, logger: logger}
}

// Each calls fn once per transition in walk order (newest pair first).
// The walk collects at most the configured window of commits reachable from
// the branch tip, then diffs each adjacent pair: the older commit's tree is
// the diff base, so delta new-paths describe files as of the newer commit.
func (d *Driver) Each(fn func(Transition) error) error {
	commits, err := d.collectWindow()
	if err != nil {
		return err
	}

	defer func() {
		for _, commit := range commits {
			commit.Free()
		}
	}()

	d.logger.Debug("collected history window", "commits", len(commits), "window", d.window)

	for i := 0; i+1 < len(commits); i++ {
		newer, older := commits[i], commits[i+1]

		changes, diffErr := d.diffPair(older, newer)
		if diffErr != nil {
			return diffErr
		}

		callErr := fn(Transition{
			Commit:      newer.Hash(),
			Predecessor: older.Hash(),
			Changes:     changes,
		})
		if callErr != nil {
			return callErr
		}
	}

	return nil
}

// collectWindow gathers up to window commits from the branch tip, newest
// first.
func (d *Driver) collectWindow() ([]*gitlib.Commit, error) {
	walk, err := d.repo.Walk()
	if err != nil {
		return nil, err
	}
	defer walk.Free()

	err = walk.PushHead()
	if err != nil {
		return nil, err
	}

	walk.SortTopological()

	commits := make([]*gitlib.Commit, 0, d.window)

	err = walk.Iterate(func(commit *gitlib.Commit) bool {
		if len(commits) >= d.window {
			commit.Free()

			return false
		}

		commits = append(commits, commit)

		return true
	})
	if err != nil {
		for _, commit := range commits {
			commit.Free()
		}

		return nil, fmt.Errorf("walk history window: %w", err)
	}

	return commits, nil
}

func (d *Driver) diffPair(older, newer *gitlib.Commit) (gitlib.Changes, error) {
	olderTree, err := older.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree of %s: %w", older.Hash(), err)
	}
	defer olderTree.Free()

	newerTree, err := newer.Tree()
	if err != nil {
		return nil, fmt.Errorf("tree of %s: %w", newer.Hash(), err)
	}
	defer newerTree.Free()

	changes, err := gitlib.TreeDiff(d.repo, olderTree, newerTree)
	if err != nil {
		return nil, fmt.Errorf("diff %s..%s: %w", older.Hash(), newer.Hash(), err)
	}

	return changes, nil
}
