// Package buildinfo carries release metadata injected at link time.
package buildinfo

// These values are set via ldflags for release binaries and stay empty
// for local/dev builds, where runtime/debug build info takes over.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
