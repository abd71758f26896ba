package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded defaults differ:\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadSnakeCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := "grid:\n  width: 25\ntiming:\n  tick_interval: 90ms\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Grid.Width != 25 {
		t.Errorf("Grid.Width = %d, expected 25", cfg.Grid.Width)
	}
	if cfg.Grid.Height != 19 {
		t.Errorf("Grid.Height = %d, expected default 19", cfg.Grid.Height)
	}
	if cfg.Timing.TickInterval != 90*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 90ms", cfg.Timing.TickInterval)
	}
	if cfg.Timing.RespawnDelay != 400*time.Millisecond {
		t.Errorf("RespawnDelay = %s, expected default 400ms", cfg.Timing.RespawnDelay)
	}
}

func TestLoadSnakeCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSnake(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("grid: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(bad); err == nil {
		t.Error("expected an error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("grid:\n  width: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnake(invalid); err == nil || !strings.Contains(err.Error(), "grid") {
		t.Errorf("expected a grid validation error, got %v", err)
	}
}

func TestLoadSnakeSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: defaults.
	cfg, err := LoadSnake("")
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// Local configs directory.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("snake:\n  initial_length: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadSnake("")
	if cfg.Snake.InitialLength != 5 {
		t.Errorf("InitialLength = %d, expected 5 from ./configs", cfg.Snake.InitialLength)
	}

	// User config wins over the local one.
	userDir := filepath.Join(home, ".snake")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("snake:\n  initial_length: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadSnake("")
	if cfg.Snake.InitialLength != 7 {
		t.Errorf("InitialLength = %d, expected 7 from ~/.snake", cfg.Snake.InitialLength)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SnakeConfig)
	}{
		{"tiny grid", func(c *SnakeConfig) { c.Grid.Width = 1 }},
		{"zero cell width", func(c *SnakeConfig) { c.Grid.CellWidth = 0 }},
		{"margin eats board", func(c *SnakeConfig) { c.Grid.AppleMargin = 10 }},
		{"zero tick", func(c *SnakeConfig) { c.Timing.TickInterval = 0 }},
		{"negative countdown", func(c *SnakeConfig) { c.Timing.Countdown = -time.Second }},
		{"no snake", func(c *SnakeConfig) { c.Snake.InitialLength = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestDifficultyPresets(t *testing.T) {
	tests := []struct {
		name     string
		expected time.Duration
	}{
		{"", 140 * time.Millisecond},
		{"normal", 140 * time.Millisecond},
		{"easy", 210 * time.Millisecond},
		{"hard", 98 * time.Millisecond},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			preset, err := ParseDifficulty(tc.name)
			if err != nil {
				t.Fatalf("ParseDifficulty(%q) failed: %v", tc.name, err)
			}
			cfg := DefaultSnakeConfig()
			ApplySnakePreset(&cfg, preset)
			if cfg.Timing.TickInterval != tc.expected {
				t.Errorf("TickInterval = %s, expected %s", cfg.Timing.TickInterval, tc.expected)
			}
		})
	}

	if _, err := ParseDifficulty("insane"); err == nil {
		t.Error("unknown preset should be rejected")
	}
}
