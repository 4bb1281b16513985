package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"p", ActionPause},
		{"space", ActionPause},
		{"r", ActionRestart},
		{"+", ActionFaster},
		{"=", ActionFaster},
		{"right", ActionFaster},
		{"l", ActionFaster},
		{"-", ActionSlower},
		{"_", ActionSlower},
		{"left", ActionSlower},
		{"h", ActionSlower},
		{"x", ActionNone},
		{"1", ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(keyMsg(tt.key)); got != tt.want {
			t.Errorf("MapKey(%q) = %v, expected %v", tt.key, got, tt.want)
		}
	}
}
