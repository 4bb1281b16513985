// Package tui provides the Bubble Tea integration for the simulator.
// It handles the terminal UI loop, input mapping, frame timing and the
// SSH-served sessions. The engine itself stays free of any of this.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one rendered frame of the simulation.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// given frame rate. The moves-per-tick multiplier, not the frame rate,
// carries the high simulation speeds.
func tickCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 1
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
