// Package version carries build metadata stamped in at link time.
package version

var (
	// Version is the release tag, overridden via -ldflags at build time.
	Version = "dev"
	// Commit is the git revision the binary was built from.
	Commit = "unknown"
	// BuildDate is the build timestamp in RFC 3339.
	BuildDate = "unknown"
)
