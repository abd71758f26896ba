package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model running one snake session.
type Model struct {
	game      *snake.Game
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keys      KeyMap
	logger    *log.Logger
	sessionID string
	player    string

	// Empty disables ctrl+s.
	screenshotDir string

	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether the finished game is already in the history
}

// NewModel creates a model for game. store may be nil to skip score history.
func NewModel(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = core.DefaultConfig().TickInterval
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:         store,
		config:        cfg,
		keys:          DefaultKeyMap(),
		logger:        logger,
		sessionID:     uuid.NewString(),
		screenshotDir: defaultScreenshotDir(),
	}
}

// WithPlayer tags recorded scores with a player name.
func (m Model) WithPlayer(name string) Model {
	m.player = name
	return m
}

// WithScreenshotDir sets where ctrl+s writes screen dumps; "" disables them.
func (m Model) WithScreenshotDir(dir string) Model {
	m.screenshotDir = dir
	return m
}

// SessionID identifies this session in the score history.
func (m Model) SessionID() string {
	return m.sessionID
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "screenshots")
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("session started", "session", m.sessionID, "seed", m.config.Seed)
	return tickCmd(m.config.TickInterval)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey forwards steering and restart requests to the game.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else if path != "" {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	ev, ok := snake.EventForAction(action)
	if !ok {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	m.game.HandleEvent(ev)
	m.gameState = m.game.State()
	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
		m.logger.Debug("game restarted", "session", m.sessionID)
	}

	return m, nil
}

// handleResize only resizes the frame; the board keeps its cell size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step()
	m.gameState = result.State

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordScore()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickInterval)
}

// recordScore appends the finished game to the history. Empty games are skipped.
func (m Model) recordScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		SessionID: m.sessionID,
		Player:    m.player,
		Score:     m.gameState.Score,
		Length:    m.game.Length(),
	})
	if err != nil {
		m.logger.Warn("could not record score", "score", m.gameState.Score, "error", err)
	}
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m Model) saveScreenshot() (string, error) {
	if m.screenshotDir == "" {
		return "", nil
	}

	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local game.
func Run(game *snake.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
