package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"hostdash/collector"
	"hostdash/config"
	"hostdash/model"
)

type tickMsg time.Time

type collectMsg struct {
	snap *model.Snapshot
	errs []error
}

// Model is the bubbletea model.
type Model struct {
	registry *collector.Registry
	cfg      config.Config
	interval time.Duration
	width    int
	height   int

	// Data from the last collection pass
	snap *model.Snapshot
	errs []error

	paused   bool
	showHelp bool
}

// NewModel creates a new TUI model.
func NewModel(reg *collector.Registry, cfg config.Config) Model {
	interval := time.Duration(cfg.IntervalSec) * time.Second
	if interval <= 0 {
		interval = time.Second
	}
	return Model{
		registry: reg,
		cfg:      cfg,
		interval: interval,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(m.interval), collectOnce(m.registry))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// collectOnce runs a full collection pass off the render loop; the result
// arrives as a collectMsg.
func collectOnce(reg *collector.Registry) tea.Cmd {
	return func() tea.Msg {
		snap := &model.Snapshot{}
		errs := reg.CollectAll(snap)
		return collectMsg{snap: snap, errs: errs}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
		case "a":
			m.paused = !m.paused
			if !m.paused {
				// Resume: schedule next tick immediately
				return m, tea.Batch(tick(m.interval), collectOnce(m.registry))
			}
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		if m.paused {
			return m, nil
		}
		return m, tea.Batch(tick(m.interval), collectOnce(m.registry))
	case collectMsg:
		if !m.paused {
			m.snap = msg.snap
			m.errs = msg.errs
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}
	if m.width == 0 {
		return "Loading..."
	}
	if m.snap == nil {
		return "Collecting first sample..."
	}

	content := renderPanels(Panels(m.snap, m.cfg.WatchProcesses, m.cfg.QueueGroup), m.width, m.height-1)
	return content + "\n" + m.renderStatusBar()
}

func (m Model) renderStatusBar() string {
	left := dimStyle.Render(fmt.Sprintf("%s  every %.0fs",
		time.Now().Format("15:04:05"), m.interval.Seconds()))
	if m.paused {
		left += "  " + critStyle.Render("[PAUSED]")
	}
	if len(m.errs) > 0 {
		left += "  " + critStyle.Render(fmt.Sprintf("[%d collect error(s)]", len(m.errs)))
	}

	help := helpStyle.Render("a:pause  ?:help  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(help)
	if gap < 1 {
		return left
	}
	return left + strings.Repeat(" ", gap) + help
}

func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("hostdash — single-host status dashboard"))
	sb.WriteString("\n\n")
	sb.WriteString("  a         Toggle auto-refresh (pause/resume)\n")
	sb.WriteString("  ?         Toggle this help\n")
	sb.WriteString("  q/Ctrl+C  Quit\n")
	sb.WriteString("\n")
	sb.WriteString("Panels, top to bottom:\n")
	sb.WriteString("  Memory Usage     used/total physical memory in MB\n")
	sb.WriteString("  System Uptime    days, hours, minutes, seconds\n")
	sb.WriteString("  Apt Updates      count of upgradable packages\n")
	sb.WriteString("  Program Status   Running/Not Running per watched process\n")
	sb.WriteString("  Pueue Group      task-queue status output, verbatim\n")
	sb.WriteString("\n")
	sb.WriteString("Errors from a failed collector degrade only its own panel;\n")
	sb.WriteString("the count in the status bar shows how many failed last tick.\n")
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("Press any key to close"))
	return sb.String()
}
