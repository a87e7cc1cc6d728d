package collector

import (
	"strings"
	"testing"

	"hostdash/model"
)

func TestRunShellCapturesStdout(t *testing.T) {
	res := runShell("printf '6\\n'")
	if res.Failed() {
		t.Fatalf("unexpected failure: %s", res.Err)
	}
	if res.Output != "6\n" {
		t.Errorf("output = %q, want %q", res.Output, "6\n")
	}
}

func TestRunShellPipeline(t *testing.T) {
	res := runShell("printf 'a\\nb\\nc\\n' | wc -l")
	if res.Failed() {
		t.Fatalf("unexpected failure: %s", res.Err)
	}
	if strings.TrimSpace(res.Output) != "3" {
		t.Errorf("output = %q, want 3", res.Output)
	}
}

func TestRunShellNonZeroExit(t *testing.T) {
	res := runShell("exit 3")
	if !res.Failed() {
		t.Error("expected failure for non-zero exit")
	}
}

func TestRunCommandMissingBinary(t *testing.T) {
	res := runCommand("hostdash-no-such-binary", "status")
	if !res.Failed() {
		t.Fatal("expected failure for missing binary")
	}
	if !strings.Contains(res.Err, "not found") {
		t.Errorf("err = %q, want a not-found message", res.Err)
	}
}

func TestUpdatesCollectorNeverReturnsError(t *testing.T) {
	u := &UpdatesCollector{Command: "no-such-pipeline-command"}
	snap := &model.Snapshot{}
	if err := u.Collect(snap); err != nil {
		t.Fatalf("Collect returned %v, want nil (failure belongs in the result)", err)
	}
	if !snap.Updates.Failed() {
		t.Error("expected the failure recorded in the result")
	}
}

func TestQueueCollectorMissingBinary(t *testing.T) {
	q := &QueueCollector{Command: "hostdash-no-such-binary", Group: "SERVICES"}
	snap := &model.Snapshot{}
	if err := q.Collect(snap); err != nil {
		t.Fatalf("Collect returned %v, want nil (failure belongs in the result)", err)
	}
	if !snap.Queue.Failed() {
		t.Error("expected the failure recorded in the result")
	}
}
