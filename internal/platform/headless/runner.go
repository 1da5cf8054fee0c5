package headless

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/registry"
)

// Options controls a headless run.
type Options struct {
	// Ticks is the number of ticks to simulate. Zero runs exactly the script;
	// ticks past the end of the script get no input.
	Ticks int
	// StopOnGameOver ends the run at the first game over tick.
	StopOnGameOver bool
	Logger         *log.Logger
}

// Result is the outcome of a headless run.
type Result struct {
	State core.GameState
	Steps int // ticks actually stepped
}

// Run resets game with cfg and steps it through the scripted input.
// A "pause" action toggles pause on every tick it is present.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig, steps []Step, opts Options) (Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	if errer, ok := game.(interface{ Err() error }); ok && errer.Err() != nil {
		logger.Warn("game loaded with fallback", "err", errer.Err())
	}

	frames := Frames(steps)
	total := opts.Ticks
	if total <= 0 {
		total = len(frames)
	}

	idle := core.NewInputFrame()
	res := Result{State: game.State()}
	for i := range total {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("headless: stopped at tick %d: %w", i, err)
		}

		in := idle
		if i < len(frames) {
			in = frames[i]
		}
		res.State = game.Step(in).State
		res.Steps++

		if res.State.GameOver && opts.StopOnGameOver {
			logger.Debug("game over", "tick", i, "score", res.State.Score)
			break
		}
	}

	logger.Debug("run finished", "steps", res.Steps, "score", res.State.Score)
	return res, nil
}
