// Package keymap defines key bindings and action dispatch for the picker.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	ActionQuit       Action = "quit"
	ActionMoveUp     Action = "move_up"
	ActionMoveDown   Action = "move_down"
	ActionFirst      Action = "first"
	ActionLast       Action = "last"
	ActionToggle     Action = "toggle"
	ActionSwitchView Action = "switch_view"
	ActionReset      Action = "reset"
)
