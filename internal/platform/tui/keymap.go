package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Control is a session-level action derived from input, as opposed to a
// movement key that feeds the sampler.
type Control int

const (
	ControlNone Control = iota
	ControlQuit
	ControlRestart
)

// KeyMapper translates Bubble Tea key messages to sampler keys and session
// controls. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey splits a key message into a movement key (empty if none) and a
// session control. Movement keys are passed through by name; the sampler
// owns the arrow/WASD alias table, so the mapper only filters out keys that
// mean something else to the host.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (moveKey string, control Control) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q", "esc":
		return "", ControlQuit
	case "r":
		return "", ControlRestart
	case "up", "down", "left", "right", "w", "a", "s", "d":
		return key, ControlNone
	}

	return "", ControlNone
}
