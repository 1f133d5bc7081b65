package ui

import (
	"fmt"

	"github.com/udaan-tools/setsync/internal/theme"
)

// VersionInfo holds version information for display in headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo is used until SetVersionInfo is called
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Keeps correction sets in sync",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// String formats the version for --version
func (v VersionInfo) String() string {
	return fmt.Sprintf("setsync %s (commit: %s, built: %s, go: %s)", v.Version, v.Commit, v.Date, v.GoVersion)
}

// renderHeader renders the app name, the short commit in dev builds and
// an optional subtitle
func renderHeader(subtitle string) string {
	line := theme.TitleStyle.Render("setsync")
	if versionInfo.Version == "dev" && versionInfo.Commit != "unknown" {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		line += theme.MutedStyle.Render(" " + commit)
	}
	if subtitle != "" {
		line += theme.MutedStyle.Render(" · " + subtitle)
	}
	return line
}
