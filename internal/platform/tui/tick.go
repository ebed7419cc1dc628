// Package tui provides the Bubble Tea integration for the runner.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a host frame. It carries the wall time it fired at.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameTimer measures the real time between consecutive ticks.
type frameTimer struct {
	last time.Time
}

// elapsed returns the time since the previous tick. The first tick, and any
// tick arriving out of order, counts as one nominal frame.
func (f *frameTimer) elapsed(now time.Time, tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	nominal := time.Second / time.Duration(tickRate)

	prev := f.last
	f.last = now
	if prev.IsZero() || !now.After(prev) {
		return nominal
	}
	return now.Sub(prev)
}

// reset forgets the previous tick so a resumed loop does not see the gap.
func (f *frameTimer) reset() {
	f.last = time.Time{}
}
