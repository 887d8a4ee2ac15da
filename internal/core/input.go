package core

// Action represents a semantic game action, abstracted from physical key
// presses. Games work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveLeft          // A, Left arrow - shift one lane left
	ActionMoveRight         // D, Right arrow - shift one lane right
	ActionFire              // Space held - fire blasters
	ActionSlowMotion        // Shift, F - trigger slow motion
	ActionConfirm           // Enter - confirm selection in menus/shop
	ActionBack              // B, Escape - leave shop / go back
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
	ActionShopSlot1         // 1 - buy first shop upgrade
	ActionShopSlot2         // 2 - buy second shop upgrade
	ActionShopSlot3         // 3 - buy third shop upgrade
	ActionShopSlot4         // 4 - buy fourth shop upgrade
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionFire:
		return "Fire"
	case ActionSlowMotion:
		return "SlowMotion"
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
	case ActionShopSlot1:
		return "ShopSlot1"
	case ActionShopSlot2:
		return "ShopSlot2"
	case ActionShopSlot3:
		return "ShopSlot3"
	case ActionShopSlot4:
		return "ShopSlot4"
	}
	return "Unknown"
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
