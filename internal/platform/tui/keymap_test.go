package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestMapKeyMovement(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"up", "down", "left", "right", "w", "a", "s", "d"} {
		moveKey, control := km.MapKey(keyMsg(key))
		if moveKey != key {
			t.Errorf("MapKey(%q) moveKey = %q, expected pass-through", key, moveKey)
		}
		if control != ControlNone {
			t.Errorf("MapKey(%q) control = %v, expected none", key, control)
		}
	}
}

func TestMapKeyControls(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		moveKey, control := km.MapKey(keyMsg(key))
		if control != ControlQuit {
			t.Errorf("MapKey(%q) control = %v, expected quit", key, control)
		}
		if moveKey != "" {
			t.Errorf("MapKey(%q) moveKey = %q, expected empty", key, moveKey)
		}
	}

	if _, control := km.MapKey(keyMsg("r")); control != ControlRestart {
		t.Errorf("MapKey(r) control = %v, expected restart", control)
	}
}

func TestMapKeyIgnoresOtherKeys(t *testing.T) {
	km := NewKeyMapper()

	for _, key := range []string{"x", "enter", "1", " "} {
		moveKey, control := km.MapKey(keyMsg(key))
		if moveKey != "" || control != ControlNone {
			t.Errorf("MapKey(%q) = (%q, %v), expected ignored", key, moveKey, control)
		}
	}
}
