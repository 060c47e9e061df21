// Package config loads the optional cellgrid configuration file.
package config

import (
	"fmt"
	"os"

	"github.com/aretw0/cellgrid/internal/layout"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration. Every field has a default, so
// an absent or partial file is fine.
type Config struct {
	// Layout holds the grid spacing constants.
	Layout layout.Config `yaml:"layout"`

	// Zoom bounds for the viewport.
	Zoom struct {
		Step float64 `yaml:"step"`
		Min  float64 `yaml:"min"`
		Max  float64 `yaml:"max"`
	} `yaml:"zoom"`

	// HTTP is the listen address of the serve adapter.
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`

	// Redis, when Addr is set, switches session persistence from the
	// in-memory store to Redis.
	Redis struct {
		Addr   string `yaml:"addr"`
		Prefix string `yaml:"prefix"`
	} `yaml:"redis"`

	// Session controls persistence middleware. EncryptionKey, when set,
	// is the base64 of a 32-byte AES-256 key; RedactPatterns are regexes
	// masked out of persisted command history.
	Session struct {
		EncryptionKey  string   `yaml:"encryption_key"`
		RedactPatterns []string `yaml:"redact_patterns"`
	} `yaml:"session"`

	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	var cfg Config
	cfg.Layout = layout.DefaultConfig()
	cfg.Zoom.Step = 1.2
	cfg.Zoom.Min = 0.6
	cfg.Zoom.Max = 2.4
	cfg.HTTP.Addr = ":8765"
	cfg.Redis.Prefix = "cellgrid:"
	cfg.LogLevel = "info"
	return cfg
}

// Load reads path over the defaults. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults refills zero values so a partial file cannot disable the
// layout or clamp the zoom range to nothing.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Layout.MaxPerRow <= 0 {
		c.Layout.MaxPerRow = def.Layout.MaxPerRow
	}
	if c.Layout.ColumnSpacing == 0 {
		c.Layout.ColumnSpacing = def.Layout.ColumnSpacing
	}
	if c.Layout.SiblingSpacing == 0 {
		c.Layout.SiblingSpacing = def.Layout.SiblingSpacing
	}
	if c.Layout.LevelSpacing == 0 {
		c.Layout.LevelSpacing = def.Layout.LevelSpacing
	}
	if c.Layout.RowSpacing == 0 {
		c.Layout.RowSpacing = def.Layout.RowSpacing
	}
	if c.Layout.NodeWidth == 0 {
		c.Layout.NodeWidth = def.Layout.NodeWidth
	}
	if c.Layout.NodeHeight == 0 {
		c.Layout.NodeHeight = def.Layout.NodeHeight
	}
	if c.Zoom.Step == 0 {
		c.Zoom.Step = def.Zoom.Step
	}
	if c.Zoom.Min == 0 {
		c.Zoom.Min = def.Zoom.Min
	}
	if c.Zoom.Max == 0 {
		c.Zoom.Max = def.Zoom.Max
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = def.HTTP.Addr
	}
	if c.Redis.Prefix == "" {
		c.Redis.Prefix = def.Redis.Prefix
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
}
