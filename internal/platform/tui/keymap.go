package tui

import tea "github.com/charmbracelet/bubbletea"

// Action is a semantic simulator action, abstracted from physical keys.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionRestart
	ActionFaster
	ActionSlower
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to simulator actions.
// Centralizing the bindings keeps them testable and shared between the
// local and SSH-served sessions.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return ActionQuit
	case "p", " ":
		return ActionPause
	case "r":
		return ActionRestart
	case "+", "=", "right", "l":
		return ActionFaster
	case "-", "_", "left", "h":
		return ActionSlower
	}
	return ActionNone
}
