// Package tui runs games in a terminal with Bubble Tea, locally or over SSH.
// It owns the tick loop, key mapping, rendering and score saving.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// defaultTickRate is used when a config asks for zero or negative fps.
const defaultTickRate = 60

// TickMsg advances the game by one fixed step.
type TickMsg time.Time

// tickInterval is the time between ticks at tickRate per second.
// Rates of zero or less fall back to 60 fps.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next TickMsg.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
