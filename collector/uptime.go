package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/host"

	"hostdash/model"
)

// UptimeCollector reads system uptime in seconds.
type UptimeCollector struct{}

func (u *UptimeCollector) Name() string { return "uptime" }

func (u *UptimeCollector) Collect(snap *model.Snapshot) error {
	up, err := host.Uptime()
	if err != nil {
		return fmt.Errorf("read uptime: %w", err)
	}
	snap.UptimeSec = up
	return nil
}
