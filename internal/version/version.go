// Package version holds the chlog version information.
// This is a separate package to avoid import cycles - it has no dependencies
// and can be safely imported from any package.
package version

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version with build metadata for --version output.
func String() string {
	if Commit == "unknown" {
		return Version
	}
	return Version + " (" + Commit + ", " + BuildDate + ")"
}
