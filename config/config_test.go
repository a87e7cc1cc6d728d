package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.IntervalSec != 1 {
		t.Errorf("IntervalSec = %d, want 1", cfg.IntervalSec)
	}
	if want := []string{"nginx", "mysql"}; !reflect.DeepEqual(cfg.WatchProcesses, want) {
		t.Errorf("WatchProcesses = %v, want %v", cfg.WatchProcesses, want)
	}
	if cfg.QueueGroup != "SERVICES" {
		t.Errorf("QueueGroup = %q, want SERVICES", cfg.QueueGroup)
	}
	if cfg.QueueCommand != "pueue" {
		t.Errorf("QueueCommand = %q, want pueue", cfg.QueueCommand)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	if got := Load(); !reflect.DeepEqual(got, Default()) {
		t.Errorf("Load() = %+v, want defaults", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.IntervalSec = 5
	cfg.WatchProcesses = []string{"sshd"}
	cfg.QueueGroup = "batch"

	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if got := Load(); !reflect.DeepEqual(got, cfg) {
		t.Errorf("Load() = %+v, want %+v", got, cfg)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p := filepath.Join(dir, "hostdash", "config.json")
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte(`{"interval_sec": 10}`), 0600); err != nil {
		t.Fatal(err)
	}

	got := Load()
	if got.IntervalSec != 10 {
		t.Errorf("IntervalSec = %d, want 10", got.IntervalSec)
	}
	if got.QueueGroup != "SERVICES" {
		t.Errorf("QueueGroup = %q, want default kept", got.QueueGroup)
	}
}
