// Package version carries the build fingerprints of the phpfix binary.
package version

import "github.com/fatih/color"

// Overridden at build time via -ldflags, e.g.
//
//	go build -ldflags "-X phpfix/internal/version.GitCommit=$(git rev-parse --short HEAD)"
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var versionColor = color.New(color.FgMagenta, color.Bold)

// Pretty returns the version colorized for terminal output. Coloring
// happens at call time, after the CLI has resolved its --color flag,
// so Version itself stays free of escape codes for machine-readable
// output.
func Pretty() string {
	return versionColor.Sprint(Version)
}
