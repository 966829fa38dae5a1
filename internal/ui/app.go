package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/prabalesh/memtop/internal/collector"
	"github.com/prabalesh/memtop/internal/config"
	"github.com/prabalesh/memtop/internal/models"
)

const maxTableHeight = 23

// App browses one ranked snapshot. It never rescans.
type App struct {
	list   models.ProcessList
	shown  []models.Process
	report *Report
	table  table.Model
	width  int
	height int
}

func NewApp(list models.ProcessList, cfg *config.Config) *App {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Inherit(TableHeaderStyle)
	styles.Selected = SelectedRowStyle

	t := table.New(table.WithFocused(true))
	t.SetStyles(styles)

	a := &App{
		list:   list,
		shown:  collector.Top(list.Processes, cfg.Limit),
		report: NewReport(cfg),
		table:  t,
	}
	a.refreshTable()
	a.table.SetHeight(a.tableHeight(maxTableHeight))
	return a
}

func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// title, blank, border, footer, blank, help
		a.table.SetHeight(a.tableHeight(a.height - 8))
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return a, tea.Quit
		case "u":
			a.report.Human = !a.report.Human
			a.refreshTable()
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.table, cmd = a.table.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	title := TitleStyle.Render("memtop")

	footer := fmt.Sprintf("%s %s  %s %s  %s %s",
		LabelStyle.Render("Shown:"), ValueStyle.Render(strconv.Itoa(len(a.shown))),
		LabelStyle.Render("Processes:"), ValueStyle.Render(strconv.Itoa(a.list.Total())),
		LabelStyle.Render("Skipped:"), ValueStyle.Render(strconv.Itoa(a.list.Skipped)),
	)

	if p, ok := a.Selected(); ok {
		footer += fmt.Sprintf("  %s %s", LabelStyle.Render("Selected:"),
			ValueStyle.Render(fmt.Sprintf("%d %s (%d KB)", p.PID, p.Name, p.VmSize)))
	}

	if a.list.MemTotal > 0 {
		footer += fmt.Sprintf("  %s %s", LabelStyle.Render("Memory:"), ValueStyle.Render(models.HumanSize(a.list.MemTotal)))
	}

	help := HelpStyle.Render("↑/↓ k/j: move • u: toggle units • q: quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		BaseStyle.Render(a.table.View()),
		footer,
		"",
		help,
	)
}

// Selected returns the process under the cursor.
func (a *App) Selected() (models.Process, bool) {
	i := a.table.Cursor()
	if i < 0 || i >= len(a.shown) {
		return models.Process{}, false
	}
	return a.shown[i], true
}

// tableHeight fits every shown row plus the header and its border,
// capped at limit.
func (a *App) tableHeight(limit int) int {
	return max(3, min(len(a.shown)+3, limit))
}

func (a *App) refreshTable() {
	sizeTitle := "VMSIZE (kB)"
	if a.report.Human {
		sizeTitle = "VMSIZE"
	}
	sizeWidth := len(sizeTitle)

	rows := make([]table.Row, 0, len(a.shown))
	for _, proc := range a.shown {
		size := a.report.size(proc.VmSize)
		sizeWidth = max(sizeWidth, len(size))
		rows = append(rows, table.Row{strconv.Itoa(proc.PID), proc.Name, size})
	}

	// Columns must be set before rows of a new width are rendered.
	a.table.SetColumns([]table.Column{
		{Title: "PID", Width: 8},
		{Title: "NAME", Width: models.MaxNameLen},
		{Title: sizeTitle, Width: sizeWidth},
	})
	a.table.SetRows(rows)
}
