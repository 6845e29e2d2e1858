package coupling

import (
	"github.com/Sumatoshi-tech/cochange/pkg/gitlib"
)

// ExtractChangeSet turns one transition's diff into the ordered sequence of
// changed-file paths. Deltas without a new path (pure deletions) contribute
// nothing; the filter drops non-source paths. Output order matches delta
// order because it determines edge direction downstream.
func ExtractChangeSet(changes gitlib.Changes, filter *Filter) []string {
	paths := make([]string, 0, len(changes))

	for _, delta := range changes {
		if delta.NewPath == "" {
			continue
		}

		if !filter.Accepts(delta.NewPath) {
			continue
		}

		paths = append(paths, delta.NewPath)
	}

	return paths
}
