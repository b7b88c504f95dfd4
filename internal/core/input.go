package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - steer left
	ActionRight          // D, Right arrow - steer right
	ActionUp             // W, Up arrow - move up / menu cursor up
	ActionDown           // S, Down arrow - move down / menu cursor down
	ActionConfirm        // Enter, Space - choose highlighted menu entry or restart
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions received between two simulation frames.
// Order is preserved and repeats are kept: two Left presses move twice.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an input frame holding the given actions.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{
		Actions: make([]Action, 0, 4),
	}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set appends an action to this frame. ActionNone is dropped.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
