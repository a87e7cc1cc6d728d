package cmd

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hostdash/collector"
	"hostdash/config"
	"hostdash/model"
	"hostdash/ui"
)

// Version is set at build time via ldflags.
var Version = "0.3.0"

func printUsage() {
	fmt.Fprintf(os.Stderr, `hostdash v%s — single-host status dashboard

Usage:
  hostdash [OPTIONS] [INTERVAL]

Modes:
  (default)         Interactive TUI (bubbletea, fullscreen)
  -watch            CLI output mode — prints to terminal with auto-refresh
  -json             Single JSON snapshot to stdout, then exit
  -version          Print version and exit

Options:
  -interval N       Refresh interval in seconds (default: 1)
  -programs LIST    Comma-separated process names to watch
  -group NAME       Task-queue group to show
  -count N          Number of iterations for -watch mode (0 = infinite)

Positional:
  INTERVAL          First positional arg sets interval: hostdash 5 = hostdash -interval 5

Examples:
  hostdash                              Interactive TUI, 1s refresh
  hostdash 5                            Interactive TUI, 5s refresh
  hostdash -programs nginx,redis-server
  hostdash -watch -count 10             CLI mode, 10 iterations then exit
  hostdash -json | jq .snapshot.uptime_sec

Defaults come from ~/.config/hostdash/config.json when present; flags
override the file.
`, Version)
}

// Run parses flags and starts the dashboard.
func Run() error {
	cfg := config.Load()

	var (
		intervalSec = flag.Int("interval", cfg.IntervalSec, "Refresh interval in seconds")
		programs    = flag.String("programs", strings.Join(cfg.WatchProcesses, ","), "Comma-separated process names to watch")
		group       = flag.String("group", cfg.QueueGroup, "Task-queue group to show")
		watchMode   = flag.Bool("watch", false, "CLI output mode (no TUI, prints to terminal)")
		watchCount  = flag.Int("count", 0, "Number of iterations for -watch (0=infinite)")
		jsonMode    = flag.Bool("json", false, "Output a single JSON snapshot and exit")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *showVersion {
		fmt.Printf("hostdash v%s\n", Version)
		return nil
	}

	// Support positional arg for interval: `hostdash 5` = `hostdash -interval 5`
	if args := flag.Args(); len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			*intervalSec = n
		}
	}

	cfg.IntervalSec = *intervalSec
	if cfg.IntervalSec < 1 {
		cfg.IntervalSec = 1
	}
	cfg.QueueGroup = *group
	if names := splitNames(*programs); len(names) > 0 {
		cfg.WatchProcesses = names
	}

	reg := collector.NewRegistry(cfg.UpdatesCommand, cfg.QueueCommand, cfg.QueueGroup)

	if *jsonMode {
		return runJSON(reg, cfg)
	}
	if *watchMode {
		return runWatch(reg, cfg, *watchCount)
	}

	p := tea.NewProgram(ui.NewModel(reg, cfg), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// splitNames parses a comma-separated list, dropping empty entries.
func splitNames(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// runJSON outputs a single snapshot as JSON and exits.
func runJSON(reg *collector.Registry, cfg config.Config) error {
	snap := &model.Snapshot{}
	for _, err := range reg.CollectAll(snap) {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	programs := make(map[string]bool, len(cfg.WatchProcesses))
	for _, name := range cfg.WatchProcesses {
		programs[name] = snap.ProcessRunning(name)
	}

	data := map[string]interface{}{
		"timestamp": snap.Timestamp.Format(time.RFC3339),
		"snapshot":  snap,
		"programs":  programs,
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
