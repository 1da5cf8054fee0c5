package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/core"
)

// DefaultKeyHold is how long a single key press keeps a direction held.
// Terminals report presses and auto-repeats but never releases, so holding
// has to be emulated.
const DefaultKeyHold = 150 * time.Millisecond

// GameKeyMap holds the key bindings used while a game is running.
type GameKeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Up         key.Binding
	Down       key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp implements help.KeyMap.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Up, k.Pause, k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Pause, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultGameKeyMap returns the default game key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k", " "),
			key.WithHelp("↑/space", "jump"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Up):
		return core.ActionUp, false
	case key.Matches(msg, km.keys.Down):
		return core.ActionDown, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	case key.Matches(msg, km.keys.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// KeyTracker turns key presses into held directions. Each press holds its
// action until the hold duration passes without another press of the same
// key. Pressing one horizontal direction releases the other.
type KeyTracker struct {
	hold  time.Duration
	until map[core.Action]time.Time
}

// NewKeyTracker creates a tracker. A non-positive hold uses DefaultKeyHold.
func NewKeyTracker(hold time.Duration) *KeyTracker {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	return &KeyTracker{
		hold:  hold,
		until: make(map[core.Action]time.Time),
	}
}

// Holdable reports whether an action is tracked as a held key.
func Holdable(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		return true
	}
	return false
}

// Press records a press of a at now. Non-holdable actions are ignored.
func (k *KeyTracker) Press(a core.Action, now time.Time) {
	if !Holdable(a) {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(k.until, core.ActionRight)
	case core.ActionRight:
		delete(k.until, core.ActionLeft)
	}
	k.until[a] = now.Add(k.hold)
}

// Apply sets every action still held at now on frame and forgets the
// expired ones.
func (k *KeyTracker) Apply(frame *core.InputFrame, now time.Time) {
	for a, until := range k.until {
		if now.Before(until) {
			frame.Set(a)
			continue
		}
		delete(k.until, a)
	}
}

// Held reports whether a is held at now.
func (k *KeyTracker) Held(a core.Action, now time.Time) bool {
	until, ok := k.until[a]
	return ok && now.Before(until)
}

// Reset releases every key.
func (k *KeyTracker) Reset() {
	clear(k.until)
}
