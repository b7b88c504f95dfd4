package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadrush/internal/config"
	"github.com/vovakirdan/roadrush/internal/core"
	"github.com/vovakirdan/roadrush/internal/games/road"
)

// KeyMap defines the key bindings for the game screen.
// It translates Bubble Tea key messages to game actions and doubles as the
// help.KeyMap for the help bar.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Restart key.Binding
	Pick    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	pick := make([]string, len(config.DifficultyNames()))
	for i := range pick {
		pick[i] = strconv.Itoa(i + 1)
	}

	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pick: key.NewBinding(
			key.WithKeys(pick...),
			key.WithHelp("1-"+strconv.Itoa(len(pick)), "difficulty"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Pick, k.Confirm, k.Restart, k.Quit, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Pick, k.Confirm, k.Restart},
		{k.Help, k.Quit},
	}
}

// SetPhase enables the bindings that mean something in phase p.
// Disabled bindings neither match nor show up in help.
func (k *KeyMap) SetPhase(p road.Phase) {
	k.Pick.SetEnabled(p == road.PhaseMenu)
	k.Confirm.SetEnabled(p != road.PhasePlaying)
	k.Restart.SetEnabled(p == road.PhaseGameOver)
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// PickDifficulty returns the difficulty a number key selects directly.
func (k KeyMap) PickDifficulty(msg tea.KeyMsg) (string, bool) {
	if !key.Matches(msg, k.Pick) {
		return "", false
	}
	n, err := strconv.Atoi(msg.String())
	names := config.DifficultyNames()
	if err != nil || n < 1 || n > len(names) {
		return "", false
	}
	return names[n-1], true
}
