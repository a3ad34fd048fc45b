package cmd

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/oakwood-commons/termgrid/internal/config"
	"github.com/oakwood-commons/termgrid/pkg/settings"
)

// defaultFallbackTermWidth is used when no terminal width can be detected,
// e.g. when output is piped.
const defaultFallbackTermWidth = 80

// resolveConfigPath returns the explicit path if set, otherwise the XDG path
// ($XDG_CONFIG_HOME/termgrid/config.yaml) or ~/.config/termgrid/config.yaml if
// present.
func resolveConfigPath(explicit string) string {
	if explicit != "" {
		return explicit
	}
	xdg := os.Getenv("XDG_CONFIG_HOME")
	candidate := ""
	if xdg != "" {
		candidate = filepath.Join(xdg, settings.CliBinaryName, "config.yaml")
	} else if home, err := os.UserHomeDir(); err == nil {
		candidate = filepath.Join(home, ".config", settings.CliBinaryName, "config.yaml")
	}
	if candidate != "" {
		if st, err := os.Stat(candidate); err == nil && !st.IsDir() {
			return candidate
		}
	}
	return ""
}

// applyFlagOverrides layers explicitly set flags over the file config.
func applyFlagOverrides(flags *pflag.FlagSet, opts *rootOptions, cfg config.Config) config.Config {
	changed := flags.Changed
	l := &cfg.Layout
	if changed("width") {
		l.Width = opts.width
		// An explicit width beats a configured column count.
		if !changed("columns") {
			l.Columns = 0
		}
	}
	if changed("columns") {
		l.Columns = opts.columns
	}
	if changed("direction") {
		l.Direction = opts.direction
	}
	if changed("spaces") {
		l.Separator = config.Separator{Spaces: opts.spaces}
	}
	if changed("separator") {
		l.Separator = config.Separator{Text: opts.separator}
	}
	if changed("tab-size") {
		l.TabSize = opts.tabSize
	}
	if changed("measure") {
		l.Measure = opts.measure
	}
	if changed("input-format") {
		cfg.Input.Format = opts.inputFormat
	}
	return cfg
}

// detectTerminalWidth probes stdout, stderr and stdin, then $COLUMNS. It
// returns 0 when nothing answers.
func detectTerminalWidth() int {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}
	if col := os.Getenv("COLUMNS"); col != "" {
		if w, err := strconv.Atoi(col); err == nil && w > 0 {
			return w
		}
	}
	return 0
}

func fallbackWidth(detected int) int {
	if detected > 0 {
		return detected
	}
	return defaultFallbackTermWidth
}
