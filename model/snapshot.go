package model

import "time"

// Snapshot is one refresh of host state plus the captured output of the
// external commands. It is rebuilt from scratch on every tick; readings
// are only meaningful after a full collection pass.
type Snapshot struct {
	Timestamp time.Time `json:"timestamp"`

	// Memory readings in KiB.
	MemTotalKB uint64 `json:"mem_total_kb"`
	MemUsedKB  uint64 `json:"mem_used_kb"`

	UptimeSec uint64 `json:"uptime_sec"`

	// Processes maps process name to occurrence count from the last refresh.
	Processes map[string]int `json:"-"`

	Updates CommandResult `json:"updates"`
	Queue   CommandResult `json:"queue"`
}

// CommandResult is the captured output of one external command. Err is set
// when the command could not be run; Output still holds whatever bytes were
// captured before the failure.
type CommandResult struct {
	Output string `json:"output"`
	Err    string `json:"err,omitempty"`
}

// Failed reports whether the command could not be executed.
func (r CommandResult) Failed() bool { return r.Err != "" }

// ProcessRunning reports whether at least one process with exactly this
// name (case-sensitive) was present in the last refresh.
func (s *Snapshot) ProcessRunning(name string) bool {
	return s.Processes[name] > 0
}
