package version

// Build information, overridden at release time with
// -ldflags "-X github.com/arthur-debert/movex/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
