package gitlib

import (
	"fmt"

	git2go "github.com/libgit2/git2go/v34"
)

// Repository wraps a libgit2 repository handle.
type Repository struct {
	repo *git2go.Repository
	path string
}

// OpenRepository opens the git repository at the given path.
func OpenRepository(path string) (*Repository, error) {
	repo, err := git2go.OpenRepository(path)
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	return &Repository{repo: repo, path: repo.Path()}, nil
}

// DiscoverRepository locates a repository by walking upward from the start
// directory, the way plain `git` commands resolve their repository.
func DiscoverRepository(start string) (*Repository, error) {
	found, err := git2go.Discover(start, false, nil)
	if err != nil {
		return nil, fmt.Errorf("discover repository from %s: %w", start, err)
	}

	repo, err := git2go.OpenRepository(found)
	if err != nil {
		return nil, fmt.Errorf("open discovered repository: %w", err)
	}

	return &Repository{repo: repo, path: found}, nil
}

// Path returns the repository's git directory path.
func (r *Repository) Path() string {
	return r.path
}

// Head returns the hash of the current branch tip.
func (r *Repository) Head() (Hash, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return Hash{}, fmt.Errorf("get HEAD: %w", err)
	}
	defer ref.Free()

	return HashFromOid(ref.Target()), nil
}

// LookupCommit returns the commit with the given hash.
func (r *Repository) LookupCommit(hash Hash) (*Commit, error) {
	commit, err := r.repo.LookupCommit(hash.ToOid())
	if err != nil {
		return nil, fmt.Errorf("lookup commit %s: %w", hash, err)
	}

	return &Commit{commit: commit}, nil
}

// Walk creates a revision walker over this repository.
func (r *Repository) Walk() (*RevWalk, error) {
	walk, err := r.repo.Walk()
	if err != nil {
		return nil, fmt.Errorf("create revwalk: %w", err)
	}

	return &RevWalk{walk: walk, repo: r}, nil
}

// Free releases the repository resources.
func (r *Repository) Free() {
	if r.repo != nil {
		r.repo.Free()
		r.repo = nil
	}
}

// Native returns the underlying libgit2 repository.
func (r *Repository) Native() *git2go.Repository {
	return r.repo
}
