// Package tui provides the Bubble Tea frontend for Road Rush.
// It handles the terminal UI loop, input mapping, and score keeping.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadrush/internal/games/road"
)

// TickMsg is sent to trigger a game simulation tick.
// Token ties the tick to the round that scheduled it; ticks from an earlier
// round are dropped.
type TickMsg struct {
	Time  time.Time
	Token road.Token
}

// tickCmd returns a Bubble Tea command that sends one tick after a frame.
func tickCmd(tickRate int, token road.Token) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Token: token}
	})
}
