// Package tui provides the Bubble Tea integration for the arena engine.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg triggers one session tick. It carries the controller generation
// it was scheduled for, so a frame queued before a stop or restart is
// recognized as stale and dropped.
type TickMsg struct {
	Gen uint64
	At  time.Time
}

// tickCmd returns a Bubble Tea command that fires one tick at the given
// rate. The next tick is only scheduled after the current one completes,
// so ticks never overlap.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, At: t}
	})
}
