package collector

import (
	"errors"
	"testing"

	"hostdash/model"
)

type fakeCollector struct {
	name string
	err  error
	runs int
}

func (f *fakeCollector) Name() string { return f.name }

func (f *fakeCollector) Collect(snap *model.Snapshot) error {
	f.runs++
	return f.err
}

func TestCollectAllAggregatesErrors(t *testing.T) {
	good := &fakeCollector{name: "good"}
	bad := &fakeCollector{name: "bad", err: errors.New("boom")}
	after := &fakeCollector{name: "after"}

	reg := &Registry{}
	reg.Add(good)
	reg.Add(bad)
	reg.Add(after)

	snap := &model.Snapshot{}
	errs := reg.CollectAll(snap)

	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if got := errs[0].Error(); got != "bad: boom" {
		t.Errorf("error = %q, want %q", got, "bad: boom")
	}
	// A failing collector must not stop the pass.
	if after.runs != 1 {
		t.Errorf("collector after the failure ran %d times, want 1", after.runs)
	}
	if snap.Timestamp.IsZero() {
		t.Error("CollectAll did not stamp the snapshot")
	}
}

func TestNewRegistryCollectorOrder(t *testing.T) {
	reg := NewRegistry("true", "pueue", "SERVICES")
	want := []string{"memory", "uptime", "process", "updates", "queue"}
	if len(reg.collectors) != len(want) {
		t.Fatalf("got %d collectors, want %d", len(reg.collectors), len(want))
	}
	for i, c := range reg.collectors {
		if c.Name() != want[i] {
			t.Errorf("collector %d = %q, want %q", i, c.Name(), want[i])
		}
	}
}
