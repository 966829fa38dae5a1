package config

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/prabalesh/memtop/internal/collector"
)

// Verbosity selects how much the report prints.
type Verbosity int

const (
	Quiet Verbosity = iota
	Normal
	Verbose
	Debug
)

// DefaultLimit is the number of processes shown when -n is not given.
const DefaultLimit = 10

// Config holds every setting for a single run.
type Config struct {
	Root       string    `toml:"root"`
	Limit      int       `toml:"limit"`
	Human      bool      `toml:"human"`
	Verbosity  Verbosity `toml:"verbosity"`
	Strict     bool      `toml:"strict"`
	RequireDir bool      `toml:"require_dir"`
	FullScan   bool      `toml:"full_scan"`
	TUI        bool      `toml:"tui"`
}

// Default returns the settings used when nothing overrides them.
func Default() *Config {
	return &Config{
		Root:      collector.DefaultRoot,
		Limit:     DefaultLimit,
		Verbosity: Normal,
	}
}

// LoadFile reads a TOML file on top of the defaults.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader decodes TOML from r on top of the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// applyEnvOverrides lets the environment replace file settings.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MEMTOP_ROOT"); v != "" {
		cfg.Root = v
	}
}
