package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/process"

	"hostdash/model"
)

// ProcessCollector rebuilds the name-indexed process table.
type ProcessCollector struct{}

func (p *ProcessCollector) Name() string { return "process" }

func (p *ProcessCollector) Collect(snap *model.Snapshot) error {
	procs, err := process.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}
	table := make(map[string]int, len(procs))
	for _, proc := range procs {
		name, err := proc.Name()
		if err != nil {
			continue // process may have exited
		}
		table[name]++
	}
	snap.Processes = table
	return nil
}
