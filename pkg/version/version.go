// Package version carries build-time version metadata, injected via
// -ldflags at release build time.
package version

var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// Commit is the git hash the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
