package tui

import (
	"fmt"
	"strings"
)

const (
	actionQuit       = "quit"
	actionSave       = "save"
	actionBack       = "back"
	actionSwitchTab  = "switch-tab"
	actionNextTab    = "next-tab"
	actionPrevTab    = "prev-tab"
	actionLinkDown   = "link-down"
	actionLinkUp     = "link-up"
	actionOpenLink   = "open-link"
	actionScrollDown = "scroll-down"
	actionScrollUp   = "scroll-up"
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+s"}, Action: actionSave, Description: "save", Scopes: []string{"*"}},
		{Keys: []string{"esc", "backspace"}, Action: actionBack, Description: "back", Scopes: []string{"*"}},
		{Keys: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}, Action: actionSwitchTab, Description: "tab", Scopes: []string{"*"}},
		{Keys: []string{"tab", "l"}, Action: actionNextTab, Description: "next", Scopes: []string{"*"}},
		{Keys: []string{"shift+tab", "h"}, Action: actionPrevTab, Description: "prev", Scopes: []string{"*"}},
		{Keys: []string{"down", "j"}, Action: actionLinkDown, Description: "link", Scopes: []string{"screen:links"}},
		{Keys: []string{"up", "k"}, Action: actionLinkUp, Description: "", Scopes: []string{"screen:links"}},
		{Keys: []string{"enter"}, Action: actionOpenLink, Description: "open", Scopes: []string{"screen:links"}},
		{Keys: []string{"pgdown", "ctrl+d"}, Action: actionScrollDown, Description: "scroll", Scopes: []string{"*"}},
		{Keys: []string{"pgup", "ctrl+u"}, Action: actionScrollUp, Description: "", Scopes: []string{"*"}},
	}
}

// ValidateActionKeybindings rejects overrides for actions bindings does not
// define.
func ValidateActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) error {
	known := make(map[string]bool, len(bindings))
	for _, b := range bindings {
		known[b.Action] = true
	}
	for action := range actionKeys {
		if !known[strings.TrimSpace(action)] {
			return fmt.Errorf("unknown action %q", action)
		}
	}
	return nil
}

// ApplyActionKeybindings overrides the keys of the named actions.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[strings.TrimSpace(b.Action)]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
