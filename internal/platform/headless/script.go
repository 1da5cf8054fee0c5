// Package headless runs games without a terminal, driven by an input script.
// It is used by the sim command and by tests that need the full registry path.
package headless

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/starcatch/internal/core"
)

// ErrBadScript is returned for input scripts that cannot be parsed.
var ErrBadScript = errors.New("headless: bad input script")

// maxRepeat bounds a single step's repeat count.
const maxRepeat = 1_000_000

// Step holds a set of actions for Count consecutive ticks.
type Step struct {
	Actions []core.Action
	Count   int
}

var actionNames = map[string]core.Action{
	"idle":    core.ActionNone,
	"left":    core.ActionLeft,
	"right":   core.ActionRight,
	"up":      core.ActionUp,
	"jump":    core.ActionJump,
	"down":    core.ActionDown,
	"pause":   core.ActionPause,
	"restart": core.ActionRestart,
}

// ParseScript parses a comma separated list of steps. Each step is one or
// more action names joined by '+', optionally followed by '*' and a repeat
// count:
//
//	right*60,right+up,idle*30
//
// Whitespace around tokens is ignored. An empty script yields no steps.
func ParseScript(src string) ([]Step, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, nil
	}

	var steps []Step
	for i, tok := range strings.Split(src, ",") {
		step, err := parseStep(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("%w: step %d: %v", ErrBadScript, i+1, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func parseStep(tok string) (Step, error) {
	if tok == "" {
		return Step{}, errors.New("empty step")
	}

	names, countStr, repeated := strings.Cut(tok, "*")
	count := 1
	if repeated {
		n, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil || n < 1 || n > maxRepeat {
			return Step{}, fmt.Errorf("invalid repeat %q", countStr)
		}
		count = n
	}

	var actions []core.Action
	for _, name := range strings.Split(names, "+") {
		name = strings.ToLower(strings.TrimSpace(name))
		a, ok := actionNames[name]
		if !ok {
			return Step{}, fmt.Errorf("unknown action %q", name)
		}
		if a != core.ActionNone {
			actions = append(actions, a)
		}
	}
	return Step{Actions: actions, Count: count}, nil
}

// Len returns the number of ticks the steps cover.
func Len(steps []Step) int {
	n := 0
	for _, s := range steps {
		n += s.Count
	}
	return n
}

// Frames expands steps into one input frame per tick.
func Frames(steps []Step) []core.InputFrame {
	frames := make([]core.InputFrame, 0, Len(steps))
	for _, s := range steps {
		for range s.Count {
			f := core.NewInputFrame()
			for _, a := range s.Actions {
				f.Set(a)
			}
			frames = append(frames, f)
		}
	}
	return frames
}
