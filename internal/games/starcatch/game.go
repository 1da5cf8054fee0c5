// Package starcatch implements Star Catcher, a single-screen platformer:
// run and jump across platforms collecting falling stars while dodging the
// bombs each cleared round releases.
package starcatch

import (
	"fmt"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/registry"
	"github.com/vovakirdan/starcatch/internal/scene"
)

// ID is the registry identifier of the game.
const ID = "starcatch"

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names use the config default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// Game adapts a Session to the registry.Game interface.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.StarcatchConfig
	fixed   bool // cfg was supplied by the caller
	session *Session
	runner  *scene.Runner
	paused  bool
	err     error
}

// New creates a new Star Catcher game instance using the CLI-selected config.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg instead of loading one.
func NewWithConfig(cfg config.StarcatchConfig) *Game {
	return &Game{cfg: cfg, fixed: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Star Catcher"
}

// Reset starts a fresh session. Score and game over are only ever cleared
// here, by throwing the old session away.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.err = nil

	if !g.fixed {
		cfg, err := config.LoadStarcatch(configPath)
		if err != nil {
			g.err = err
			cfg = config.DefaultStarcatchConfig()
		}
		config.ApplyStarcatchPreset(&cfg, difficultyPreset)
		g.cfg = cfg
	}

	g.session = NewSession(g.cfg)
	g.runner = scene.NewRunner(SceneConfig(g.cfg), g.session, nil)
	if err := g.runner.Boot(runtime.Seed); err != nil {
		g.err = err
	}
}

// Err returns the error that prevented the last Reset from loading cleanly.
func (g *Game) Err() error {
	return g.err
}

// Session returns the running session.
func (g *Game) Session() *Session {
	return g.session
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.runner == nil || g.runner.Context() == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.session.GameOver() {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.runner.Step(in.Cursors(), g.runtime.TickSeconds())
	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.runner == nil || g.runner.Context() == nil {
		msg := "not started"
		if g.err != nil {
			msg = g.err.Error()
		}
		drawCenteredMessage(dst, "STAR CATCHER", msg)
		return
	}

	g.runner.Render(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.session.GameOver() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score()))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: g.session.GameOver(),
		Paused:   g.paused,
		Ticks:    g.session.Ticks(),
		Pickups:  g.session.Collected(),
		Hazards:  g.session.Bombs(),
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
