package main

import (
	"errors"
	"io"
	"log"
	"os"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/prabalesh/memtop/internal/collector"
	"github.com/prabalesh/memtop/internal/config"
	"github.com/prabalesh/memtop/internal/ui"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	errLog := log.New(stderr, "memtop: ", 0)

	cfg, err := config.Parse(args, stderr)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return 0
		}
		return 1
	}

	opts := collector.Options{
		Root:       cfg.Root,
		RequireDir: cfg.RequireDir,
		Strict:     cfg.Strict,
		FullScan:   cfg.FullScan,
	}
	if cfg.Verbosity >= config.Debug {
		opts.Debug = stdout
		opts.Log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "memtop"))
	}

	list, err := collector.New(opts).Collect()
	if err != nil {
		errLog.Printf("%v", err)
		return 1
	}
	collector.Rank(list.Processes)

	if cfg.TUI {
		p := tea.NewProgram(ui.NewApp(list, cfg), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			errLog.Printf("Error running program: %v", err)
			return 1
		}
		return 0
	}

	if err := ui.NewReport(cfg).Write(stdout, list); err != nil {
		errLog.Printf("write report: %v", err)
		return 1
	}
	return 0
}
