package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// withFlags sets global flags for one test and restores them afterwards.
func withFlags(t *testing.T, set func()) {
	t.Helper()
	saved := []string{flagConfig, flagDifficulty, flagHighFile, flagDBPath, flagLogLevel, flagLogFile}
	t.Cleanup(func() {
		flagConfig, flagDifficulty, flagHighFile = saved[0], saved[1], saved[2]
		flagDBPath, flagLogLevel, flagLogFile = saved[3], saved[4], saved[5]
	})
	set()
}

func TestLoadConfigAppliesFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "snake.yaml")
	if err := os.WriteFile(cfgPath, []byte("grid:\n  width: 21\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	withFlags(t, func() {
		flagConfig = cfgPath
		flagDifficulty = "hard"
		flagHighFile = filepath.Join(dir, "high.txt")
		flagDBPath = filepath.Join(dir, "scores.db")
	})

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Grid.Width != 21 {
		t.Errorf("Grid.Width = %d, want 21", cfg.Grid.Width)
	}
	if cfg.Timing.TickInterval != 98*time.Millisecond {
		t.Errorf("TickInterval = %s, want 98ms for hard", cfg.Timing.TickInterval)
	}
	if cfg.Storage.HighScoreFile != flagHighFile || cfg.Storage.Database != flagDBPath {
		t.Errorf("storage flags not applied: %+v", cfg.Storage)
	}
}

func TestLoadConfigRejectsUnknownDifficulty(t *testing.T) {
	withFlags(t, func() {
		flagConfig = ""
		flagDifficulty = "insane"
	})
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if _, err := loadConfig(); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}

func TestSettingsFromConfig(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Grid.AppleMargin = 2

	s := settingsFromConfig(cfg)
	if s.GridW != 19 || s.GridH != 19 || s.CellWidth != 2 || s.AppleMargin != 2 {
		t.Errorf("grid settings = %+v", s)
	}
	if s.InitialLength != 3 || s.Countdown != 3*time.Second || s.RespawnDelay != 400*time.Millisecond {
		t.Errorf("snake settings = %+v", s)
	}
}

func TestNewLogger(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "snake.log")
	withFlags(t, func() {
		flagLogLevel = "debug"
		flagLogFile = logFile
	})

	var fallback bytes.Buffer
	logger, closeLog, err := newLogger(&fallback)
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello", "n", 1)
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, want the debug line", data)
	}
	if fallback.Len() != 0 {
		t.Error("fallback writer should be unused when --log-file is set")
	}

	flagLogLevel = "loud"
	if _, _, err := newLogger(&fallback); err == nil {
		t.Error("expected error for invalid log level")
	}
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	var out bytes.Buffer
	if err := printScores(&out, store, 0); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	if !strings.Contains(out.String(), "No scores recorded yet.") {
		t.Errorf("empty output:\n%s", out.String())
	}

	store.SaveScore(storage.ScoreEntry{SessionID: "s", Score: 7, Length: 10})
	out.Reset()
	if err := printScores(&out, store, 7); err != nil {
		t.Fatalf("printScores() failed: %v", err)
	}
	for _, want := range []string{"Rank", "local", "Best: 7"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}
