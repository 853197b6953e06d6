// Package version holds build metadata set via -ldflags.
package version

var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
