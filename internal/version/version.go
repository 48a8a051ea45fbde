package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // Set by goreleaser: -X github.com/arthur-debert/sdkman/internal/version.Version={{.Version}}
	Commit  = "unknown" // Set by goreleaser: -X github.com/arthur-debert/sdkman/internal/version.Commit={{.Commit}}
	Date    = "unknown" // Set by goreleaser: -X github.com/arthur-debert/sdkman/internal/version.Date={{.Date}}
)

// UserAgent identifies this build to the remote catalog
func UserAgent() string {
	return fmt.Sprintf("sdkman-go/%s", Version)
}
