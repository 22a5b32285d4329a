package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/goblin-arcade/internal/core"
)

// gameKeys binds key names, as reported by tea.KeyMsg.String, to game actions.
var gameKeys = map[string]core.Action{
	"w":     core.ActionUp,
	"up":    core.ActionUp,
	"s":     core.ActionDown,
	"down":  core.ActionDown,
	"a":     core.ActionLeft,
	"left":  core.ActionLeft,
	"d":     core.ActionRight,
	"right": core.ActionRight,
	" ":     core.ActionJump, // jump, fire, advance dialogue
	"enter": core.ActionConfirm,
	"b":     core.ActionBack,
	"esc":   core.ActionBack,
	"p":     core.ActionPause,
	"r":     core.ActionRestart,
}

// menuKeys binds key names to arcade menu actions. j/k follow vim.
var menuKeys = map[string]MenuAction{
	"w":     MenuActionUp,
	"up":    MenuActionUp,
	"k":     MenuActionUp,
	"s":     MenuActionDown,
	"down":  MenuActionDown,
	"j":     MenuActionDown,
	"enter": MenuActionSelect,
	" ":     MenuActionSelect,
	"b":     MenuActionBack,
	"esc":   MenuActionBack,
	"tab":   MenuActionScoreboard,
}

func isQuitKey(key string) bool {
	return key == "q" || key == "ctrl+c"
}

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()
	if isQuitKey(key) {
		return core.ActionQuit, true
	}
	return gameKeys[key], false
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

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()
	if isQuitKey(key) {
		return MenuActionQuit
	}
	return menuKeys[key]
}
