package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/prabalesh/memtop/internal/collector"
	"github.com/prabalesh/memtop/internal/config"
	"github.com/prabalesh/memtop/internal/models"
)

const separatorWidth = 41

// Report prints the largest processes of a ranked list as a table.
type Report struct {
	Limit     int
	Human     bool
	Verbosity config.Verbosity
}

// NewReport takes its settings from cfg.
func NewReport(cfg *config.Config) *Report {
	return &Report{
		Limit:     cfg.Limit,
		Human:     cfg.Human,
		Verbosity: cfg.Verbosity,
	}
}

// Write prints a header, a separator and one row for each of the first
// min(Limit, len) processes of list, which must already be ranked.
func (r *Report) Write(w io.Writer, list models.ProcessList) error {
	var b strings.Builder

	if r.Verbosity > config.Quiet {
		styles := newReportStyles(lipgloss.NewRenderer(w))
		b.WriteString(styles.header.Render(r.header()))
		b.WriteByte('\n')
		b.WriteString(styles.separator.Render(strings.Repeat("-", separatorWidth)))
		b.WriteByte('\n')
	}

	for _, proc := range collector.Top(list.Processes, r.Limit) {
		b.WriteString(r.row(proc))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Report) header() string {
	sizeTitle := "VMSIZE (kB)"
	if r.Human {
		sizeTitle = "VMSIZE"
	}
	return fmt.Sprintf("%-8s %-15s %s", "PID", "NAME", sizeTitle)
}

func (r *Report) row(proc models.Process) string {
	return fmt.Sprintf("%-8d %-15s %s", proc.PID, proc.Name, r.size(proc.VmSize))
}

func (r *Report) size(kib uint64) string {
	if !r.Human {
		return fmt.Sprintf("%d", kib)
	}
	s := models.HumanSize(kib)
	if r.Verbosity >= config.Verbose {
		s += fmt.Sprintf(" (%d KB)", kib)
	}
	return s
}
