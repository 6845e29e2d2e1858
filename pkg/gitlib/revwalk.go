package gitlib

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// RevWalk wraps a libgit2 revision walker.
type RevWalk struct {
	walk *git2go.RevWalk
	repo *Repository
}

// PushHead starts the walk from the current branch tip.
func (w *RevWalk) PushHead() error {
	head, err := w.repo.Head()
	if err != nil {
		return err
	}

	err = w.walk.Push(head.ToOid())
	if err != nil {
		return fmt.Errorf("push HEAD to revwalk: %w", err)
	}

	return nil
}

// SortTopological orders the walk so a commit is always visited before its
// parents, with commit time as a tiebreaker. This keeps adjacent pairs in
// the walk meaningful as (commit, predecessor) transitions.
func (w *RevWalk) SortTopological() {
	w.walk.Sorting(git2go.SortTime | git2go.SortTopological)
}

// Iterate calls cb for each commit in the walk until cb returns false or
// the walk is exhausted. The callback owns the commit and must Free it.
func (w *RevWalk) Iterate(cb func(*Commit) bool) error {
	err := w.walk.Iterate(func(commit *git2go.Commit) bool {
		return cb(&Commit{commit: commit})
	})
	if err != nil {
		return fmt.Errorf("revwalk iterate: %w", err)
	}

	return nil
}

// Free releases the walker resources.
func (w *RevWalk) Free() {
	if w.walk != nil {
		w.walk.Free()
		w.walk = nil
	}
}
