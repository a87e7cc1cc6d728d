package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Config holds user-configurable defaults.
type Config struct {
	IntervalSec    int      `json:"interval_sec"`
	WatchProcesses []string `json:"watch_processes"`
	QueueGroup     string   `json:"queue_group"`
	UpdatesCommand string   `json:"updates_command"`
	QueueCommand   string   `json:"queue_command"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		IntervalSec:    1,
		WatchProcesses: []string{"nginx", "mysql"},
		QueueGroup:     "SERVICES",
		UpdatesCommand: "apt list --upgradable 2>/dev/null | wc -l",
		QueueCommand:   "pueue",
	}
}

// Path returns ~/.config/hostdash/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "hostdash", "config.json")
}

// Load loads config from disk; returns defaults on error.
func Load() Config {
	cfg := Default()
	p := Path()
	if p == "" {
		return cfg
	}
	data, err := os.ReadFile(p)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("hostdash: warning: config parse error: %v", err)
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	path := Path()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
