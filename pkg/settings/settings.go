// Package settings holds build metadata and the per-run settings of the
// termgrid CLI.
package settings

// CliBinaryName is the canonical binary name for this tool.
const CliBinaryName = "termgrid"

// VersionInformation is populated at build time via ldflags.
var VersionInformation = VersionInfo{
	Commit:       "unknown",
	BuildVersion: "v0.0.0-nightly",
	BuildTime:    "unknown",
}

// VersionInfo holds the commit hash, version and build timestamp.
type VersionInfo struct {
	Commit       string
	BuildVersion string
	BuildTime    string
}

// InputSettings describes where the items of a run come from.
type InputSettings struct {
	FromStdin bool
	FromArgs  bool
	Path      string
}

// Run holds configuration for a single execution of the CLI.
type Run struct {
	MinLogLevel int8
	Input       InputSettings
	IsQuiet     bool
	// TerminalWidth is the detected width, 0 when none could be found.
	TerminalWidth int
}

// NewCliParams returns the defaults for a CLI run reading from stdin.
func NewCliParams() *Run {
	return &Run{
		MinLogLevel: 0,
		Input: InputSettings{
			FromStdin: true,
		},
	}
}
