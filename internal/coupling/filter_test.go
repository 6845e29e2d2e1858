package coupling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter_Accepts_DefaultRules(t *testing.T) {
	t.Parallel()

	f := NewFilter(nil)

	tests := []struct {
		path string
		want bool
	}{
		{"lib/billing/invoice.rb", true},
		{"app/models/user.rb", true},
		{"internal/coupling/graph.go", true},
		{"app/assets/javascripts/app.js", false},
		{"app/views/users/show.html.erb", false},
		{"db/migrate/20240101000000_create_users.rb", false},
		{"config/routes.rb", false},
		{"spec/models/user_spec.rb", false},
		{"deploy/settings.yml", false},
		{".gitignore", false},
		{"Gemfile", false},
		{"Gemfile.lock", false},
		{"go.sum", false},
		{"package-lock.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, f.Accepts(tt.path))
		})
	}
}

func TestFilter_Accepts_Deterministic(t *testing.T) {
	t.Parallel()

	f := NewFilter(nil)

	for range 5 {
		assert.True(t, f.Accepts("lib/foo.rb"))
		assert.False(t, f.Accepts("config/foo.rb"))
	}
}

func TestFilter_Accepts_CustomPatterns(t *testing.T) {
	t.Parallel()

	f := NewFilter([]string{"vendor/", ".pb.go"})

	assert.False(t, f.Accepts("vendor/lib/foo.go"))
	assert.False(t, f.Accepts("api/service.pb.go"))

	// Default rules do not apply once custom patterns are set.
	assert.True(t, f.Accepts("config/settings.rb"))
}

func TestNewFilter_CopiesPatterns(t *testing.T) {
	t.Parallel()

	patterns := []string{"tmp/"}
	f := NewFilter(patterns)

	patterns[0] = "lib/"

	assert.False(t, f.Accepts("tmp/cache.rb"))
	assert.True(t, f.Accepts("lib/foo.rb"))
}
