// Package registry maps game IDs to factories. Games register themselves in
// init(); the CLI, the SSH server and the headless runner create them by ID.
package registry

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/vovakirdan/starcatch/internal/core"
)

// Game is the contract between a game and the platforms that run it.
// Games are pure and seeded: no Bubble Tea, no I/O, no wall clock.
type Game interface {
	// ID returns a unique identifier such as "starcatch". Scores are stored under it.
	ID() string

	// Title returns the display name, e.g. "Star Catcher".
	Title() string

	// Reset starts a new run. It is called once at start and again on restart;
	// the RuntimeConfig carries the tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick using the actions held
	// during that tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst, scaled to its size.
	Render(dst *core.Screen)

	// State returns score, flags and counters for the platform.
	State() core.GameState
}

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// GameInfo describes a registered game for listings.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh, unreset game.
type Factory func() Game

type entry struct {
	title string
	build Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register makes a game available under id. It panics on a duplicate id,
// which can only be a programming error in some init().
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f().Title(), build: f}
}

// List returns the registered games ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for _, id := range slices.Sorted(maps.Keys(entries)) {
		out = append(out, GameInfo{ID: id, Title: entries[id].title})
	}
	return out
}

// Create builds a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.build(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
