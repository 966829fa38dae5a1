package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// ErrHelp is returned by Parse when -h or --help was given.
var ErrHelp = pflag.ErrHelp

// Parse builds the run configuration from command-line arguments
// (without the program name). Defaults come first, then the file named
// by --config, then the environment, then any flag the user set.
// Usage and parse errors are written to stderr.
func Parse(args []string, stderr io.Writer) (*Config, error) {
	fs := pflag.NewFlagSet("memtop", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	count := fs.StringP("count", "n", "", "number of processes to show (default 10)")
	debug := fs.Bool("debug", false, "print per-process diagnostics while scanning")
	verbose := fs.BoolP("verbose", "v", false, "append the raw size in KB to each row")
	quiet := fs.BoolP("quiet", "q", false, "print rows only")
	human := fs.BoolP("human", "H", false, "show sizes in KB, MB or GB")
	strict := fs.Bool("strict", false, "skip processes with malformed status fields")
	requireDir := fs.Bool("require-dir", false, "only consider directory entries")
	fullScan := fs.Bool("full-scan", false, "read whole status files instead of stopping at VmSize")
	root := fs.String("root", "", "process filesystem root (default /proc)")
	configPath := fs.String("config", "", "TOML file with default settings")
	tui := fs.Bool("tui", false, "browse the snapshot interactively")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: memtop [-n count] [--debug] [options]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, ErrHelp
		}
		fmt.Fprintf(stderr, "memtop: %v\n", err)
		fs.Usage()
		return nil, err
	}

	cfg := Default()
	if *configPath != "" {
		loaded, err := LoadFile(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "memtop: %v\n", err)
			return nil, err
		}
		cfg = loaded
	}
	applyEnvOverrides(cfg)

	if fs.Changed("count") {
		cfg.Limit = Atoi(*count)
	}
	if fs.Changed("human") {
		cfg.Human = *human
	}
	if fs.Changed("strict") {
		cfg.Strict = *strict
	}
	if fs.Changed("require-dir") {
		cfg.RequireDir = *requireDir
	}
	if fs.Changed("full-scan") {
		cfg.FullScan = *fullScan
	}
	if fs.Changed("root") {
		cfg.Root = *root
	}
	if fs.Changed("tui") {
		cfg.TUI = *tui
	}

	switch {
	case *debug:
		cfg.Verbosity = Debug
	case *verbose:
		cfg.Verbosity = Verbose
	case *quiet:
		cfg.Verbosity = Quiet
	}

	return cfg, nil
}

// Atoi converts s the way C's atoi does: optional leading whitespace, an
// optional sign, then as many decimal digits as follow. Input with no
// leading digits yields 0.
func Atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\v' || s[i] == '\f') {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}

	n := 0
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		d := int(s[i] - '0')
		if n > (maxInt-d)/10 {
			return 0
		}
		n = n*10 + d
	}

	if neg {
		return -n
	}
	return n
}

const maxInt = int(^uint(0) >> 1)
