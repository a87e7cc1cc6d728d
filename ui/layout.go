package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPanels stacks the panels as equal-height bordered bands with a
// one-cell margin around the whole drawable area. Order is fixed
// top-to-bottom; bodies that do not fit their band are truncated.
func renderPanels(ps []Panel, width, height int) string {
	innerW := width - 2
	innerH := height - 2
	// Each band needs at least its border plus one content line.
	if innerW < 10 || innerH < len(ps)*3 {
		return "Terminal too small"
	}
	band := innerH / len(ps)

	blocks := make([]string, 0, len(ps))
	for _, p := range ps {
		bodyStyle := lipgloss.NewStyle().Foreground(p.Color)
		lines := strings.Split(strings.TrimRight(p.Body, "\n"), "\n")
		maxBody := band - 3 // top/bottom border + title line
		if maxBody < 1 {
			maxBody = 1
		}
		if len(lines) > maxBody {
			lines = lines[:maxBody]
		}
		content := titleStyle.Foreground(p.Color).Render(p.Title) + "\n" +
			bodyStyle.Render(strings.Join(lines, "\n"))
		blocks = append(blocks, panelStyle.Width(innerW-2).Height(band-2).Render(content))
	}

	stacked := lipgloss.JoinVertical(lipgloss.Left, blocks...)
	return lipgloss.NewStyle().Margin(1, 1).Render(stacked)
}
