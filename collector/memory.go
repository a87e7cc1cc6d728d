package collector

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/mem"

	"hostdash/model"
)

// MemoryCollector reads total and used physical memory.
type MemoryCollector struct{}

func (m *MemoryCollector) Name() string { return "memory" }

func (m *MemoryCollector) Collect(snap *model.Snapshot) error {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return fmt.Errorf("read memory: %w", err)
	}
	snap.MemTotalKB = vm.Total / 1024
	snap.MemUsedKB = vm.Used / 1024
	return nil
}
