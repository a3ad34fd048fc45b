// Package config loads termgrid settings: an embedded default document with
// an optional user YAML file layered on top.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-logr/logr"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/termgrid/pkg/grid"
)

//go:embed default_config.yaml
var embeddedDefaultConfig []byte

var (
	embeddedConfigOnce sync.Once
	embeddedConfig     Config
	embeddedConfigErr  error
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// DefaultConfigYAML returns a copy of the embedded default config.
func DefaultConfigYAML() []byte {
	return append([]byte(nil), embeddedDefaultConfig...)
}

// Default parses the embedded default config once.
func Default() (Config, error) {
	embeddedConfigOnce.Do(func() {
		if len(embeddedDefaultConfig) == 0 {
			embeddedConfigErr = fmt.Errorf("embedded default config is empty")
			return
		}
		if err := yaml.Unmarshal(embeddedDefaultConfig, &embeddedConfig); err != nil {
			embeddedConfigErr = fmt.Errorf("decode embedded default config: %w", err)
		}
	})
	return embeddedConfig, embeddedConfigErr
}

// Load returns the defaults overlaid with the YAML file at path. An empty path
// returns the defaults alone. Keys missing from the file keep their defaults.
func Load(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return Merge(cfg, data)
}

// Merge decodes data on top of base.
func Merge(base Config, data []byte) (Config, error) {
	merged := base
	if err := yaml.Unmarshal(data, &merged); err != nil {
		return base, fmt.Errorf("decode config: %w", err)
	}
	return merged, nil
}

// Validate checks value ranges. Names are checked by Options.
func (l Layout) Validate() error {
	if l.Separator.Spaces < 0 {
		return fmt.Errorf("%w: separator.spaces must be non-negative, got %d", ErrInvalidConfig, l.Separator.Spaces)
	}
	if l.TabSize < 0 {
		return fmt.Errorf("%w: tab_size must be non-negative, got %d", ErrInvalidConfig, l.TabSize)
	}
	if l.Width < 0 {
		return fmt.Errorf("%w: width must be non-negative, got %d", ErrInvalidConfig, l.Width)
	}
	if l.Columns < 0 {
		return fmt.Errorf("%w: columns must be non-negative, got %d", ErrInvalidConfig, l.Columns)
	}
	return nil
}

// Filling returns the configured separator.
func (l Layout) Filling() grid.Filling {
	if l.Separator.Text != "" {
		return grid.Text(l.Separator.Text)
	}
	return grid.Spaces(l.Separator.Spaces)
}

// Target picks a fixed column count when Columns is set, else a width budget.
// fallbackWidth is used when Width is zero.
func (l Layout) Target(fallbackWidth int) grid.Target {
	if l.Columns > 0 {
		return grid.Columns(l.Columns)
	}
	if l.Width > 0 {
		return grid.MaxWidth(l.Width)
	}
	return grid.MaxWidth(fallbackWidth)
}

// Options converts the layout into validated grid options.
func (l Layout) Options(fallbackWidth int, log logr.Logger) (grid.Options, error) {
	if err := l.Validate(); err != nil {
		return grid.Options{}, err
	}
	dir, err := grid.ParseDirection(l.Direction)
	if err != nil {
		return grid.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	measure, err := grid.MeasureByName(l.Measure)
	if err != nil {
		return grid.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	opts := grid.Options{
		Direction: dir,
		Filling:   l.Filling(),
		Target:    l.Target(fallbackWidth),
		TabSize:   l.TabSize,
		Measure:   measure,
		Logger:    log,
	}
	if err := opts.Validate(); err != nil {
		return grid.Options{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return opts, nil
}
