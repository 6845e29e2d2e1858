package gitlib

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// DeltaKind classifies a file-level change between two trees.
type DeltaKind int

const (
	// Added indicates a new file appeared.
	Added DeltaKind = iota
	// Deleted indicates a file was removed.
	Deleted
	// Modified indicates a file's content or path changed.
	Modified
)

// Delta is a single file-level change record. NewPath is empty for pure
// deletions, which carry no post-change path.
type Delta struct {
	Kind    DeltaKind
	OldPath string
	NewPath string
}

// Changes is the ordered list of deltas in a diff. The order is whatever
// libgit2 reports and is preserved because downstream consumers are
// order-sensitive.
type Changes []Delta

// TreeDiff computes the file-level changes between two trees. A nil oldTree
// diffs against the empty tree, covering root commits.
func TreeDiff(repo *Repository, oldTree, newTree *Tree) (Changes, error) {
	if oldTree != nil && newTree != nil && oldTree.Hash() == newTree.Hash() {
		return Changes{}, nil
	}

	opts, err := git2go.DefaultDiffOptions()
	if err != nil {
		return nil, fmt.Errorf("get diff options: %w", err)
	}

	var oldT, newT *git2go.Tree
	if oldTree != nil {
		oldT = oldTree.tree
	}

	if newTree != nil {
		newT = newTree.tree
	}

	diff, err := repo.repo.DiffTreeToTree(oldT, newT, &opts)
	if err != nil {
		return nil, fmt.Errorf("diff trees: %w", err)
	}
	defer func() { _ = diff.Free() }()

	numDeltas, err := diff.NumDeltas()
	if err != nil {
		return nil, fmt.Errorf("get num deltas: %w", err)
	}

	changes := make(Changes, 0, numDeltas)

	for i := range numDeltas {
		delta, deltaErr := diff.Delta(i)
		if deltaErr != nil {
			return nil, fmt.Errorf("get delta %d: %w", i, deltaErr)
		}

		switch delta.Status {
		case git2go.DeltaAdded:
			changes = append(changes, Delta{Kind: Added, NewPath: delta.NewFile.Path})
		case git2go.DeltaDeleted:
			changes = append(changes, Delta{Kind: Deleted, OldPath: delta.OldFile.Path})
		case git2go.DeltaModified, git2go.DeltaRenamed, git2go.DeltaCopied:
			changes = append(changes, Delta{
				Kind:    Modified,
				OldPath: delta.OldFile.Path,
				NewPath: delta.NewFile.Path,
			})
		case git2go.DeltaUnmodified, git2go.DeltaIgnored, git2go.DeltaUntracked,
			git2go.DeltaTypeChange, git2go.DeltaUnreadable, git2go.DeltaConflicted:
			// Not meaningful file changes for coupling purposes.
			continue
		}
	}

	return changes, nil
}
