// Package build contains build information, the values are set by ldflags.
package build

var (
	BuildVersion = "dev"
	GitCommit    = "-"
	BuildDate    = "-"
)
