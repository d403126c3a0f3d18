package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/tabnav/internal/nav"
)

// ChoiceKind says how the bar reacted to a user choice.
type ChoiceKind int

const (
	ChoiceUnknown ChoiceKind = iota
	ChoiceChosen
	ChoiceReselected
)

type TabItem struct {
	ID    string
	Label string
}

// TabBar is the visible selector. User choices go out through Choose; the
// controller pushes programmatic changes back through Sync, which never
// reports a choice.
type TabBar struct {
	items    []TabItem
	selected int
}

func NewTabBar(dests []nav.Destination) *TabBar {
	items := make([]TabItem, 0, len(dests))
	for _, d := range dests {
		items = append(items, TabItem{ID: d.SelectorItemID, Label: d.Title})
	}
	return &TabBar{items: items}
}

func (b *TabBar) Len() int      { return len(b.items) }
func (b *TabBar) Selected() int { return b.selected }

// ItemAt returns the selector id at position i.
func (b *TabBar) ItemAt(i int) (string, bool) {
	if i < 0 || i >= len(b.items) {
		return "", false
	}
	return b.items[i].ID, true
}

// Choose records a user choice of itemID.
func (b *TabBar) Choose(itemID string) ChoiceKind {
	for i, it := range b.items {
		if it.ID != itemID {
			continue
		}
		if i == b.selected {
			return ChoiceReselected
		}
		b.selected = i
		return ChoiceChosen
	}
	return ChoiceUnknown
}

// Sync moves the highlight without reporting a choice.
func (b *TabBar) Sync(index int) {
	if index >= 0 && index < len(b.items) {
		b.selected = index
	}
}

func (b *TabBar) View(width int) string {
	tabs := make([]string, 0, len(b.items))
	for i, it := range b.items {
		label := fmt.Sprintf("%d:%s", i+1, it.Label)
		if i == b.selected {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	line := tabSepStyle.Render(" ") + strings.Join(tabs, tabSepStyle.Render("│"))
	return ansi.Truncate(line, max(1, width), "")
}
