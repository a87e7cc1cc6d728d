package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"hostdash/model"
)

// Panel is one rendered dashboard block: a title, a text body and the
// foreground color the body is drawn in.
type Panel struct {
	Title string
	Body  string
	Color lipgloss.Color
}

// Panels builds all five panels in fixed display order from one snapshot.
func Panels(snap *model.Snapshot, watch []string, group string) []Panel {
	return []Panel{
		renderMemory(snap),
		renderUptime(snap),
		renderUpdates(snap),
		renderPrograms(snap, watch),
		renderQueue(snap, group),
	}
}

func renderMemory(snap *model.Snapshot) Panel {
	return Panel{
		Title: "Memory Usage",
		Body:  fmt.Sprintf("Memory Usage: %d/%d MB", snap.MemUsedKB/1024, snap.MemTotalKB/1024),
		Color: colorCyan,
	}
}

func renderUptime(snap *model.Snapshot) Panel {
	s := snap.UptimeSec
	return Panel{
		Title: "System Uptime",
		Body: fmt.Sprintf("Uptime: %dd %dh %dm %ds",
			s/86400, s%86400/3600, s%3600/60, s%60),
		Color: colorGreen,
	}
}

func renderUpdates(snap *model.Snapshot) Panel {
	p := Panel{Title: "Apt Updates", Color: colorYellow}
	if snap.Updates.Failed() {
		p.Body = "updates check failed: " + snap.Updates.Err
		return p
	}
	p.Body = fmt.Sprintf("Available Updates: %d", updateCount(snap.Updates.Output))
	return p
}

// updateCount extracts the upgradable-package count from the raw line-count
// output. The first line of `apt list --upgradable` is a header, so one is
// subtracted; unparsable output counts as zero updates.
func updateCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		n = 1
	}
	return n - 1
}

func renderPrograms(snap *model.Snapshot, watch []string) Panel {
	var sb strings.Builder
	for _, name := range watch {
		if snap.ProcessRunning(name) {
			sb.WriteString(name + ": Running\n")
		} else {
			sb.WriteString(name + ": Not Running\n")
		}
	}
	return Panel{Title: "Program Status", Body: sb.String(), Color: colorMagenta}
}

func renderQueue(snap *model.Snapshot, group string) Panel {
	p := Panel{Title: "Pueue " + group + " Group", Color: colorBlue}
	if snap.Queue.Failed() {
		p.Body = "queue status unavailable: " + snap.Queue.Err
		return p
	}
	p.Body = snap.Queue.Output
	return p
}
