package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"hostdash/collector"
	"hostdash/config"
	"hostdash/model"
	"hostdash/ui"
)

// ── ANSI color/style codes ──────────────────────────────────────────────────

const (
	R = "\033[0m" // reset
	B = "\033[1m" // bold
	D = "\033[2m" // dim

	FRed = "\033[31m"
	FGrn = "\033[32m"
	FYel = "\033[33m"
	FBlu = "\033[34m"
	FMag = "\033[35m"
	FCyn = "\033[36m"
)

// watchColors follows the fixed panel order: memory, uptime, updates,
// programs, queue.
var watchColors = []string{FCyn, FGrn, FYel, FMag, FBlu}

// runWatch prints the panels to the terminal on a fixed interval until
// interrupted or count iterations have run.
func runWatch(reg *collector.Registry, cfg config.Config, count int) error {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	interval := time.Duration(cfg.IntervalSec) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	iteration := 0

	for {
		select {
		case <-sig:
			fmt.Printf("\n%sStopped.%s\n", D, R)
			return nil
		case <-ticker.C:
			iteration++
			snap := &model.Snapshot{}
			errs := reg.CollectAll(snap)

			fmt.Print("\033[2J\033[H")

			ts := snap.Timestamp.Format("15:04:05")
			iter := fmt.Sprintf("#%d", iteration)
			if count > 0 {
				iter = fmt.Sprintf("#%d/%d", iteration, count)
			}
			fmt.Printf(" %shostdash v%s%s  %s  %severy %s%s  %s\n",
				B, Version, R, ts, D, interval, R, D+iter+R)

			for i, p := range ui.Panels(snap, cfg.WatchProcesses, cfg.QueueGroup) {
				color := watchColors[i%len(watchColors)]
				fmt.Printf("\n %s%s%s%s\n", B, color, p.Title, R)
				for _, line := range strings.Split(strings.TrimRight(p.Body, "\n"), "\n") {
					fmt.Printf("   %s%s%s\n", color, line, R)
				}
			}

			for _, err := range errs {
				fmt.Printf("\n %s%v%s\n", FRed, err, R)
			}

			fmt.Printf("\n %sCtrl+C%s to quit\n", B, R)
			if count > 0 && iteration >= count {
				return nil
			}
		}
	}
}
