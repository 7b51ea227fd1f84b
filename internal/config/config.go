// Package config loads viewer settings from YAML and FOLIO_* environment
// variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/go-homedir"
	yamlv3 "gopkg.in/yaml.v3"

	"folio/internal/nav"
)

// Theme is the binary light/dark choice; ThemeAuto asks the terminal.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Config holds viewer settings.
type Config struct {
	// Content is the portfolio YAML file; empty uses the built-in sample.
	Content string `koanf:"content" yaml:"content,omitempty"`

	// Breakpoint is the column count at which the side panel appears.
	Breakpoint int `koanf:"breakpoint" yaml:"breakpoint"`

	// DetectionOffset is added to the scroll offset, in rows, before
	// deciding which section is active.
	DetectionOffset int `koanf:"detection_offset" yaml:"detection_offset"`

	SidebarWidth int    `koanf:"sidebar_width" yaml:"sidebar_width"`
	Theme        Theme  `koanf:"theme" yaml:"theme"`
	Style        string `koanf:"style" yaml:"style,omitempty"`
	Wrap         int    `koanf:"wrap" yaml:"wrap"`
	Mouse        bool   `koanf:"mouse" yaml:"mouse"`
	LogFile      string `koanf:"log_file" yaml:"log_file,omitempty"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() *Config {
	return &Config{
		Breakpoint:      nav.DefaultBreakpoint,
		DetectionOffset: 2,
		SidebarWidth:    32,
		Theme:           ThemeAuto,
		Mouse:           true,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if path != "" {
		p, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("expanding config path %s: %w", path, err)
		}
		if _, err := os.Stat(p); err == nil {
			if err := k.Load(file.Provider(p), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", p, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", p, err)
		}
	}

	// FOLIO_DETECTION_OFFSET -> detection_offset, etc.
	if err := k.Load(env.Provider("FOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "FOLIO_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) expandPaths() error {
	for _, p := range []*string{&c.Content, &c.LogFile} {
		if *p == "" {
			continue
		}
		x, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expanding %s: %w", *p, err)
		}
		*p = x
	}
	return nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validThemes = map[Theme]bool{
	ThemeAuto:  true,
	ThemeDark:  true,
	ThemeLight: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Breakpoint <= 0 {
		return fmt.Errorf("breakpoint must be positive")
	}
	if c.DetectionOffset < 0 {
		return fmt.Errorf("detection_offset must be non-negative")
	}
	if c.SidebarWidth < 16 {
		return fmt.Errorf("sidebar_width must be at least 16")
	}
	if c.SidebarWidth >= c.Breakpoint {
		return fmt.Errorf("sidebar_width %d leaves no room below breakpoint %d", c.SidebarWidth, c.Breakpoint)
	}
	if !validThemes[c.Theme] {
		return fmt.Errorf("invalid theme %q: must be one of auto, dark, light", c.Theme)
	}
	if c.Wrap < 0 {
		return fmt.Errorf("wrap must be non-negative")
	}
	return nil
}
