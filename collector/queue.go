package collector

import "hostdash/model"

// QueueCollector captures the task queue's status text for one group.
// The output is displayed verbatim, no parsing.
type QueueCollector struct {
	Command string // task-queue CLI, e.g. "pueue"
	Group   string
}

func (q *QueueCollector) Name() string { return "queue" }

func (q *QueueCollector) Collect(snap *model.Snapshot) error {
	snap.Queue = runCommand(q.Command, "status", "-g", q.Group)
	return nil
}
