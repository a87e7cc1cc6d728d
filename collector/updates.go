package collector

import "hostdash/model"

// UpdatesCollector captures the output of the upgradable-package count
// pipeline. The raw line count is parsed at render time.
type UpdatesCollector struct {
	Command string // e.g. `apt list --upgradable 2>/dev/null | wc -l`
}

func (u *UpdatesCollector) Name() string { return "updates" }

func (u *UpdatesCollector) Collect(snap *model.Snapshot) error {
	snap.Updates = runShell(u.Command)
	return nil
}
