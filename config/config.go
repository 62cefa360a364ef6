// Package config loads optional user defaults from
// ~/.config/roast/config.toml. A missing file is not an error; CLI flags
// always override config values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user-level defaults for analysis.
type Config struct {
	DateOrder      string   `toml:"date_order"` // "mdy", "dmy", "ymd"
	Clock24        bool     `toml:"clock_24"`
	Level          string   `toml:"level"` // roast intensity
	TopN           int      `toml:"top_n"`
	MinTokenLength int      `toml:"min_token_length"`
	ExtraStopWords []string `toml:"stop_words"` // merged into the built-in set
}

// Load reads the config file, applying defaults first.
func Load() (*Config, error) {
	cfg := &Config{
		DateOrder:      "mdy",
		Level:          "medium",
		TopN:           10,
		MinTokenLength: 2,
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, nil
	}

	path := filepath.Join(home, ".config", "roast", "config.toml")
	return cfg, decode(path, cfg)
}

// LoadFile reads defaults from an explicit path, for tests and the
// --config flag.
func LoadFile(path string) (*Config, error) {
	cfg := &Config{
		DateOrder:      "mdy",
		Level:          "medium",
		TopN:           10,
		MinTokenLength: 2,
	}
	return cfg, decode(path, cfg)
}

func decode(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
