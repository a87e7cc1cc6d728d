package collector

import (
	"fmt"
	"time"

	"hostdash/model"
)

// Collector refreshes one slice of the snapshot.
type Collector interface {
	Name() string
	Collect(snap *model.Snapshot) error
}

// Registry holds all registered collectors.
type Registry struct {
	collectors []Collector
}

// NewRegistry creates a registry with the default collectors. updatesCmd is
// a shell pipeline producing a line count; queueCmd is the task-queue CLI
// queried with "status -g <group>".
func NewRegistry(updatesCmd, queueCmd, queueGroup string) *Registry {
	return &Registry{
		collectors: []Collector{
			&MemoryCollector{},
			&UptimeCollector{},
			&ProcessCollector{},
			&UpdatesCollector{Command: updatesCmd},
			&QueueCollector{Command: queueCmd, Group: queueGroup},
		},
	}
}

// Add registers an additional collector.
func (r *Registry) Add(c Collector) {
	r.collectors = append(r.collectors, c)
}

// CollectAll runs all collectors, populating the snapshot. A failing
// collector does not stop the pass; all errors are returned.
func (r *Registry) CollectAll(snap *model.Snapshot) []error {
	snap.Timestamp = time.Now()
	var errs []error
	for _, c := range r.collectors {
		if err := c.Collect(snap); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", c.Name(), err))
		}
	}
	return errs
}
