package buildinfo

import "fmt"

// Set via -ldflags "-X github.com/aalvaropc/orchard/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("orchard %s (commit=%s, date=%s)", Version, Commit, Date)
}
