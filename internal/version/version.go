package version

import "fmt"

// Version contains the quartonav release version.
// Set via build-time ldflags in release builds:
// go build -ldflags "-X github.com/openearth/nesbp-msp-knowledge-platform/internal/version.Version=v0.3.0" ./cmd/quartonav
var Version = "unknown"

// BuildInfo contains additional build metadata.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String renders the version line printed by --version.
func String() string {
	return fmt.Sprintf("quartonav %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}
