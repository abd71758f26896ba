// Package highscore persists the best score as a single decimal integer in a
// plain-text file.
package highscore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// ErrMalformed is returned by Read when the file does not hold a
// non-negative integer.
var ErrMalformed = errors.New("highscore: malformed file")

// File is a high score backed by a text file. It is safe for concurrent use
// so that several sessions can share one record.
type File struct {
	mu     sync.Mutex
	path   string
	best   int
	logger *log.Logger
}

// Open loads the high score at path. A missing file means no high score yet;
// an unreadable or malformed file is logged and treated the same way.
// A leading ~ expands to the home directory.
func Open(path string, logger *log.Logger) (*File, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	best, err := Read(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		best = 0
	case err != nil:
		logger.Warn("ignoring unreadable high score", "path", path, "error", err)
		best = 0
	}

	return &File{path: path, best: best, logger: logger}, nil
}

// Read parses the high score stored at path.
func Read(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", path, err)
	}

	text := strings.TrimSpace(string(data))
	n, err := strconv.Atoi(text)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: %s holds %q", ErrMalformed, path, text)
	}
	return n, nil
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

// Best returns the current high score.
func (f *File) Best() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.best
}

// Submit records score if it beats the current best, overwriting the file.
// It reports whether score was a new high. When the write fails the new best
// is still kept in memory and the error is returned.
func (f *File) Submit(score int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if score <= f.best {
		return false, nil
	}
	f.best = score

	if err := f.write(score); err != nil {
		return true, err
	}
	f.logger.Info("new high score", "score", score, "path", f.path)
	return true, nil
}

// Reset deletes the file and forgets the high score.
func (f *File) Reset() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.best = 0
	if err := os.Remove(f.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("highscore: cannot remove %s: %w", f.path, err)
	}
	return nil
}

// write replaces the file contents through a temporary file in the same
// directory, so a crash never leaves a half-written number behind.
func (f *File) write(score int) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".high-*")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // Gone after a successful rename

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot write: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("highscore: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
