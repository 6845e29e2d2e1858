package coupling

import "strings"

// DefaultRejectPatterns excludes paths that are not hand-written source:
// generated assets, view templates, database migrations, configuration
// trees, YAML files, test specs, ignore files and dependency manifests.
// Matching is plain substring containment.
var DefaultRejectPatterns = []string{
	"app/assets/",
	"app/views/",
	"db/",
	"config/",
	"spec/",
	".yml",
	".gitignore",
	"Gemfile",
	"package-lock.json",
	"go.sum",
}

// Filter decides which file paths participate in coupling analysis.
// It is stateless after construction and safe for concurrent use.
type Filter struct {
	reject []string
}

// NewFilter builds a filter from the given rejection patterns. A nil or
// empty pattern list falls back to DefaultRejectPatterns.
func NewFilter(patterns []string) *Filter {
	if len(patterns) == 0 {
		patterns = DefaultRejectPatterns
	}

	reject := make([]string, len(patterns))
	copy(reject, patterns)

	return &Filter{reject: reject}
}

// Accepts reports whether the path passes the filter. A path matching any
// rejection pattern is excluded.
func (f *Filter) Accepts(path string) bool {
	for _, pattern := range f.reject {
		if strings.Contains(path, pattern) {
			return false
		}
	}

	return true
}
