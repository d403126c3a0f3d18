package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"enter"}, Action: "open", Scopes: []string{"screen:links"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyEnter}, "open", "screen:links") {
		t.Fatalf("expected enter in screen:links")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyEnter}, "open", "screen:leaf") {
		t.Fatalf("did not expect enter in screen:leaf")
	}
	if !reg.IsAction(runeKey('q'), "quit", "screen:leaf") {
		t.Fatalf("expected q to match wildcard scope")
	}
}

func TestDefaultBindingsCoverHostKeys(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	cases := []struct {
		msg    tea.KeyMsg
		action string
	}{
		{runeKey('3'), actionSwitchTab},
		{tea.KeyMsg{Type: tea.KeyTab}, actionNextTab},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, actionPrevTab},
		{tea.KeyMsg{Type: tea.KeyEsc}, actionBack},
		{tea.KeyMsg{Type: tea.KeyBackspace}, actionBack},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, actionSave},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, actionQuit},
	}
	for _, tc := range cases {
		got, ok := reg.Action(tc.msg, scopeLinks)
		if !ok || got != tc.action {
			t.Fatalf("%s: got %q, want %q", tc.msg, got, tc.action)
		}
	}
}

func TestApplyActionKeybindings(t *testing.T) {
	reg := NewKeyRegistry(ApplyActionKeybindings(DefaultKeyBindings(), map[string][]string{actionQuit: {"x"}}))
	if reg.IsAction(runeKey('q'), actionQuit, scopeLeaf) {
		t.Fatalf("q should no longer quit")
	}
	if !reg.IsAction(runeKey('x'), actionQuit, scopeLeaf) {
		t.Fatalf("x should quit")
	}
}

func TestValidateActionKeybindings(t *testing.T) {
	if err := ValidateActionKeybindings(DefaultKeyBindings(), map[string][]string{"next-tab": {"n"}}); err != nil {
		t.Fatalf("known action rejected: %v", err)
	}
	err := ValidateActionKeybindings(DefaultKeyBindings(), map[string][]string{"teleport": {"t"}})
	if err == nil || !strings.Contains(err.Error(), `unknown action "teleport"`) {
		t.Fatalf("err = %v", err)
	}
}

func TestHelpCollapsesKeys(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	var labels []string
	for _, b := range reg.Help(scopeLeaf) {
		labels = append(labels, b.Help().Key)
	}
	want := map[string]bool{"q/ctrl+c": true, "1-9": true, "esc/backspace": true}
	for _, l := range labels {
		delete(want, l)
		if l == "enter" {
			t.Fatalf("open-link should not show on leaf screens")
		}
	}
	if len(want) != 0 {
		t.Fatalf("missing help labels: %v (got %v)", want, labels)
	}
}
