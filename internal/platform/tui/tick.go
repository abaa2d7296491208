// Package tui runs blockfall in the terminal with Bubble Tea.
// It owns the tick loop, key bindings, styling and the menu screens;
// games stay free of any terminal dependency.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickInterval is the wall-clock spacing of ticks. Games advance their
// clock by the same amount per Step, so play speed follows the rate.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	return time.Second / time.Duration(tickRate)
}

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
