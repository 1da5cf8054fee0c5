package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/registry"
	"github.com/vovakirdan/starcatch/internal/storage"
)

// Options configures a game Model beyond the runtime config.
type Options struct {
	Player  string        // name stored with saved runs
	KeyHold time.Duration // how long a press keeps a direction held
	Logger  *log.Logger
	// ScreenshotDir is where ctrl+s writes frames; empty means ~/.starcatch/screenshots.
	ScreenshotDir string
	// NoScreenshots ignores ctrl+s, for sessions that do not own the filesystem.
	NoScreenshots bool
	// Palette colors the output; nil uses the local terminal's profile.
	Palette *Palette
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	keys       *KeyMapper
	tracker    *KeyTracker
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
	best       records
}

// records are the stored bests shown in the footer.
type records struct {
	loaded bool
	top    int // best run by anyone
	mine   int // best run by this player
}

// NewModel creates a new Bubble Tea model for the given game.
// The last terminal row is kept for the help footer.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Player == "" {
		opts.Player = storage.DefaultPlayer
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Palette == nil {
		opts.Palette = NewPalette(nil)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		opts:       opts,
		logger:     logger.WithPrefix(game.ID()),
		keys:       NewKeyMapper(),
		tracker:    NewKeyTracker(opts.KeyHold),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.loadRecords()
	return m
}

func playHeight(h int) int {
	return max(h-1, 1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "player", m.opts.Player)
	if errer, ok := m.game.(interface{ Err() error }); ok && errer.Err() != nil {
		m.logger.Warn("game loaded with fallback", "err", errer.Err())
	}

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "ticks", m.gameState.Ticks)
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Keys().Screenshot) {
		if m.opts.NoScreenshots {
			return m, nil
		}
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch {
	case Holdable(action):
		m.tracker.Press(action, now)
	case action == core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case action == core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	}

	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the viewport changes, so the running game is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.tracker.Reset()
		m.inputFrame.Clear()
		m.logger.Info("game restarted", "seed", m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	m.tracker.Apply(&m.inputFrame, now)

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !wasOver {
		m.logger.Info("game over",
			"score", m.gameState.Score,
			"stars", m.gameState.Pickups,
			"bombs", m.gameState.Hazards,
			"ticks", m.gameState.Ticks)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// loadRecords reads the footer bests. A failed read hides them.
func (m *Model) loadRecords() {
	m.best = records{}
	if m.store == nil {
		return
	}
	top, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not read high score", "err", err)
		return
	}
	mine, err := m.store.PlayerBest(m.game.ID(), m.opts.Player)
	if err != nil {
		m.logger.Warn("could not read player best", "err", err)
		return
	}
	m.best = records{loaded: true, top: top, mine: mine}
}

// saveRun stores the finished run. Zero scores are not recorded.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	id, err := m.store.SaveRun(storage.RunEntry{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  m.gameState.Score,
		Stars:  m.gameState.Pickups,
		Bombs:  m.gameState.Hazards,
		Ticks:  m.gameState.Ticks,
	})
	if err != nil {
		m.logger.Error("could not save run", "err", err)
		return
	}
	m.logger.Debug("run saved", "id", id, "score", m.gameState.Score)
	m.loadRecords()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: screenshot dir: %w", err)
		}
		dir = filepath.Join(home, ".starcatch", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := m.help.ShortHelpView(m.keys.Keys().ShortHelp())
	if m.best.loaded {
		footer = fmt.Sprintf("best %d  you %d  %s", m.best.top, m.best.mine, footer)
	}
	return m.opts.Palette.Render(m.screen) + "\n" + m.opts.Palette.Footer(footer)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
