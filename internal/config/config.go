// Package config loads and saves presentation settings from a
// .termdeck.toml file kept alongside the slides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the per-presentation config file, looked up in the slides
// directory.
const FileName = ".termdeck.toml"

// Parse-error policies for deck construction.
const (
	PolicySkip  = "skip"  // drop malformed documents, keep presenting
	PolicyAbort = "abort" // refuse to start on the first malformed document
)

// Config represents the presentation configuration.
type Config struct {
	Version      int        `toml:"version"`
	TargetWidth  int        `toml:"target_width"`   // expected width of slide body lines
	OnParseError string     `toml:"on_parse_error"` // PolicySkip or PolicyAbort
	UISettings   UISettings `toml:"ui"`
}

// UISettings represents UI-related configuration.
type UISettings struct {
	ShowProgressBar bool `toml:"show_progress_bar"`
	ShowDeckTitle   bool `toml:"show_deck_title"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version:      1,
		TargetWidth:  72,
		OnParseError: PolicySkip,
		UISettings: UISettings{
			ShowProgressBar: true,
			ShowDeckTitle:   true,
		},
	}
}

// SkipMalformed reports whether malformed slide documents should be
// skipped with a warning instead of aborting deck construction.
func (c *Config) SkipMalformed() bool {
	return c.OnParseError != PolicyAbort
}

// LoadDir loads the config from dir, falling back to defaults when the
// file does not exist.
func LoadDir(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveDir writes the config to dir.
func SaveDir(cfg *Config, dir string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, FileName), data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func (c *Config) validate() error {
	if c.TargetWidth <= 0 {
		return fmt.Errorf("target_width must be positive, got %d", c.TargetWidth)
	}
	switch c.OnParseError {
	case PolicySkip, PolicyAbort:
		return nil
	default:
		return fmt.Errorf("on_parse_error must be %q or %q, got %q", PolicySkip, PolicyAbort, c.OnParseError)
	}
}
