package axiom

import "fmt"

//nolint:gochecknoglobals // set via ldflags at build time.
var (
	// Version is the application version, set via ldflags.
	Version = "dev"
	// CompiledAt is the build timestamp, set via ldflags.
	CompiledAt = "unknown"
)

// VersionString describes the build for version output.
func VersionString() string {
	return fmt.Sprintf("axiom %s (compiled %s)", Version, CompiledAt)
}
