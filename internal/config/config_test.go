package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAtoi(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"10", 10},
		{"0", 0},
		{"  42", 42},
		{"+7", 7},
		{"-3", -3},
		{"12abc", 12},
		{"abc", 0},
		{"", 0},
		{"-", 0},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		if got := Atoi(tt.in); got != tt.want {
			t.Errorf("Atoi(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Root != "/proc" {
		t.Errorf("Root = %q, want /proc", cfg.Root)
	}
	if cfg.Limit != DefaultLimit {
		t.Errorf("Limit = %d, want %d", cfg.Limit, DefaultLimit)
	}
	if cfg.Verbosity != Normal {
		t.Errorf("Verbosity = %v, want normal", cfg.Verbosity)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, cfg *Config)
	}{
		{
			name: "no arguments",
			args: nil,
			check: func(t *testing.T, cfg *Config) {
				if cfg.Limit != 10 || cfg.Verbosity != Normal || cfg.Human {
					t.Errorf("got %+v, want defaults", cfg)
				}
			},
		},
		{
			name: "count",
			args: []string{"-n", "3"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Limit != 3 {
					t.Errorf("Limit = %d, want 3", cfg.Limit)
				}
			},
		},
		{
			name: "attached count",
			args: []string{"-n25"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Limit != 25 {
					t.Errorf("Limit = %d, want 25", cfg.Limit)
				}
			},
		},
		{
			name: "malformed count is zero",
			args: []string{"-n", "lots"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Limit != 0 {
					t.Errorf("Limit = %d, want 0", cfg.Limit)
				}
			},
		},
		{
			name: "debug after positional",
			args: []string{"extra", "--debug", "-n", "2"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Verbosity != Debug {
					t.Errorf("Verbosity = %v, want debug", cfg.Verbosity)
				}
				if cfg.Limit != 2 {
					t.Errorf("Limit = %d, want 2", cfg.Limit)
				}
			},
		},
		{
			name: "debug wins over verbose",
			args: []string{"-v", "--debug"},
			check: func(t *testing.T, cfg *Config) {
				if cfg.Verbosity != Debug {
					t.Errorf("Verbosity = %v, want debug", cfg.Verbosity)
				}
			},
		},
		{
			name: "parser switches",
			args: []string{"-H", "--strict", "--require-dir", "--full-scan", "--root", "/tmp/p", "--tui", "-q"},
			check: func(t *testing.T, cfg *Config) {
				if !cfg.Human || !cfg.Strict || !cfg.RequireDir || !cfg.FullScan || !cfg.TUI {
					t.Errorf("got %+v, want all switches on", cfg)
				}
				if cfg.Root != "/tmp/p" {
					t.Errorf("Root = %q, want /tmp/p", cfg.Root)
				}
				if cfg.Verbosity != Quiet {
					t.Errorf("Verbosity = %v, want quiet", cfg.Verbosity)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			cfg, err := Parse(tt.args, &stderr)
			if err != nil {
				t.Fatalf("Parse(%v): %v", tt.args, err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestParseUnknownOption(t *testing.T) {
	var stderr bytes.Buffer
	_, err := Parse([]string{"-x"}, &stderr)
	if err == nil {
		t.Fatal("expected error for unknown option")
	}
	if !strings.Contains(stderr.String(), "Usage: memtop") {
		t.Errorf("stderr %q does not contain usage", stderr.String())
	}
}

func TestParseHelp(t *testing.T) {
	var stderr bytes.Buffer
	_, err := Parse([]string{"--help"}, &stderr)
	if !errors.Is(err, ErrHelp) {
		t.Fatalf("err = %v, want ErrHelp", err)
	}
}

func TestParseConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memtop.toml")
	content := `
root = "/srv/proc"
limit = 5
human = true
verbosity = "verbose"
full_scan = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	cfg, err := Parse([]string{"--config", path, "-n", "7"}, &stderr)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Root != "/srv/proc" {
		t.Errorf("Root = %q, want /srv/proc", cfg.Root)
	}
	if cfg.Limit != 7 {
		t.Errorf("Limit = %d, want 7 (flag overrides file)", cfg.Limit)
	}
	if !cfg.Human || !cfg.FullScan {
		t.Errorf("got %+v, want human and full_scan from file", cfg)
	}
	if cfg.Verbosity != Verbose {
		t.Errorf("Verbosity = %v, want verbose", cfg.Verbosity)
	}
}

func TestParseConfigFileMissing(t *testing.T) {
	var stderr bytes.Buffer
	_, err := Parse([]string{"--config", filepath.Join(t.TempDir(), "none.toml")}, &stderr)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestLoadFromReaderBadVerbosity(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader(`verbosity = "loud"`))
	if err == nil {
		t.Fatal("expected error for unknown verbosity")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("MEMTOP_ROOT", "/env/proc")

	var stderr bytes.Buffer
	cfg, err := Parse(nil, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "/env/proc" {
		t.Errorf("Root = %q, want /env/proc", cfg.Root)
	}

	cfg, err = Parse([]string{"--root", "/flag/proc"}, &stderr)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Root != "/flag/proc" {
		t.Errorf("Root = %q, want /flag/proc", cfg.Root)
	}
}
