// Package settings provides build metadata and per-run configuration shared
// by the simx CLI and the embeddable browser packages.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "simx"

// VersionInformation is populated at build time via ldflags and holds the
// commit hash, semantic version, and build timestamp of the running binary.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds metadata about the build, including the commit hash,
// build version, and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// Run holds configuration for a single execution of the browser: logging
// level, color handling, and the browsing restrictions carried over from the
// command line.
type Run struct {
	MinLogLevel int8
	NoColor     bool
	ShowAll     bool
	FixPath     bool
	ExitOnError bool
}

// NewCliParams returns a Run populated with the CLI defaults.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		NoColor:     false,
		ShowAll:     false,
		FixPath:     false,
		ExitOnError: true,
	}
}
