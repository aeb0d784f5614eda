// Package tui provides the Bubble Tea integration for the asteroids game.
// It runs the fixed-rate tick loop, maps keys to actions and draws frames.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one simulation tick.
type TickMsg time.Time

// tickInterval is the wall-clock time between ticks. Non-positive rates
// fall back to the default rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd schedules the next tick. Each tick is scheduled only after the
// previous one was handled, so slow frames stretch time instead of queueing.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
