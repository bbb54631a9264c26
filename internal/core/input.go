package core

import "github.com/kamstrup/intmap"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow - rotate clockwise (Tetris)
	ActionDown             // S, Down arrow - soft drop (Tetris)
	ActionLeft             // A, Left arrow - move left
	ActionRight            // D, Right arrow - move right
	ActionRotateCCW        // Z - rotate counter-clockwise
	ActionHardDrop         // X - hard drop
	ActionJump             // Space - launch ball (Breakout), hard drop (Tetris)
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHardDrop:
		return "HardDrop"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	actions *intmap.Map[Action, bool]
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		actions: intmap.New[Action, bool](8),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.actions == nil {
		f.actions = intmap.New[Action, bool](8)
	}
	f.actions.Put(a, true)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.actions == nil {
		return false
	}
	v, ok := f.actions.Get(a)
	return ok && v
}

// Len returns the number of distinct actions set this frame.
func (f InputFrame) Len() int {
	if f.actions == nil {
		return 0
	}
	return f.actions.Len()
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	if f.actions != nil {
		f.actions.Clear()
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	if f.actions == nil {
		return clone
	}
	f.actions.ForEach(func(a Action, v bool) bool {
		if v {
			clone.actions.Put(a, true)
		}
		return true
	})
	return clone
}
