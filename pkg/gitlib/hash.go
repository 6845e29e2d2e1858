// Package gitlib is a thin wrapper around libgit2 (git2go) covering the
// operations cochange needs: repository discovery, revision walking and
// tree-to-tree diffing at the file-path level.
package gitlib

import (
	"encoding/hex"

	git2go "github.com/libgit2/git2go/v34"
)

// HashSize is the size of a SHA-1 object id in bytes.
const HashSize = 20

// Hash is a git object id.
type Hash [HashSize]byte

// HashFromOid converts a libgit2 Oid to a Hash.
func HashFromOid(oid *git2go.Oid) Hash {
	var h Hash
	copy(h[:], oid[:])

	return h
}

// ToOid converts the hash back to a libgit2 Oid.
func (h Hash) ToOid() *git2go.Oid {
	oid := new(git2go.Oid)
	copy(oid[:], h[:])

	return oid
}

// String returns the hex representation of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether the hash is all zeros.
func (h Hash) IsZero() bool {
	return h == Hash{}
}
