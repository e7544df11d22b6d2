// Package version holds build-time metadata injected via ldflags.
package version

import "strings"

// Set at build time:
//
//	-X 'github.com/janekbaraniewski/priceanatomy/internal/version.Version=...'
//	-X 'github.com/janekbaraniewski/priceanatomy/internal/version.CommitHash=...'
//	-X 'github.com/janekbaraniewski/priceanatomy/internal/version.BuildDate=...'
var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// String returns a formatted version string. Unknown fields are left out.
func String() string {
	var b strings.Builder
	b.WriteString(Version)
	if CommitHash != "" && CommitHash != "unknown" {
		b.WriteString(" (" + CommitHash + ")")
	}
	if BuildDate != "" && BuildDate != "unknown" {
		b.WriteString(" built " + BuildDate)
	}
	return b.String()
}
