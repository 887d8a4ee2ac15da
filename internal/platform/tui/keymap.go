package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lanerush/lanerush/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions. Bindings
// live in one place so they stay testable and easy to document.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. isQuit reports a session
// quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true

	case "a", "left":
		return core.ActionMoveLeft, false
	case "d", "right":
		return core.ActionMoveRight, false
	case " ":
		return core.ActionFire, false
	case "f":
		return core.ActionSlowMotion, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "1":
		return core.ActionShopSlot1, false
	case "2":
		return core.ActionShopSlot2, false
	case "3":
		return core.ActionShopSlot3, false
	case "4":
		return core.ActionShopSlot4, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame folds a key message into an input frame. Returns true on
// a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
