package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/block-arcade/internal/core"
)

// gameKeys maps key names, as reported by tea.KeyMsg.String, to actions.
// Arrows, WASD and vim keys all steer.
var gameKeys = map[string]core.Action{
	"ctrl+c": core.ActionQuit, "q": core.ActionQuit,
	"left": core.ActionLeft, "a": core.ActionLeft, "h": core.ActionLeft,
	"right": core.ActionRight, "d": core.ActionRight, "l": core.ActionRight,
	"up": core.ActionUp, "w": core.ActionUp, "k": core.ActionUp,
	"down": core.ActionDown, "s": core.ActionDown, "j": core.ActionDown,
	"z":     core.ActionRotateCCW,
	"x":     core.ActionHardDrop,
	" ":     core.ActionJump,
	"enter": core.ActionConfirm,
	"b":     core.ActionBack, "esc": core.ActionBack,
	"p": core.ActionPause,
	"r": core.ActionRestart,
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	action = gameKeys[msg.String()]
	return action, action == core.ActionQuit
}

// MapKeyToFrame records the key's action in frame.
// Returns true if the key was a quit request; quit is never recorded.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

var menuKeys = map[string]MenuAction{
	"ctrl+c": MenuActionQuit, "q": MenuActionQuit,
	"up": MenuActionUp, "w": MenuActionUp, "k": MenuActionUp,
	"down": MenuActionDown, "s": MenuActionDown, "j": MenuActionDown,
	"enter": MenuActionSelect, " ": MenuActionSelect,
	"esc": MenuActionBack, "b": MenuActionBack,
	"tab": MenuActionScoreboard,
}

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return menuKeys[msg.String()]
}
