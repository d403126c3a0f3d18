package screens

import (
	"errors"
	"fmt"
	"maps"

	"github.com/jask/tabnav/internal/deeplink"
)

// Graph is a tab's navigation graph: its screens and the one it starts on.
type Graph struct {
	ID      string
	Root    string
	Screens []ScreenSpec
}

func (g Graph) Lookup(id string) (ScreenSpec, bool) {
	for _, s := range g.Screens {
		if s.ID == id {
			return s, true
		}
	}
	return ScreenSpec{}, false
}

func (g Graph) Validate() error {
	if g.ID == "" {
		return errors.New("graph id is required")
	}
	seen := make(map[string]bool, len(g.Screens))
	for _, s := range g.Screens {
		if s.ID == "" {
			return fmt.Errorf("graph %q: screen without id", g.ID)
		}
		if seen[s.ID] {
			return fmt.Errorf("graph %q: duplicate screen %q", g.ID, s.ID)
		}
		seen[s.ID] = true
	}
	if !seen[g.Root] {
		return fmt.Errorf("graph %q: unknown root screen %q", g.ID, g.Root)
	}
	for _, s := range g.Screens {
		for _, child := range s.Children {
			if !seen[child] {
				return fmt.Errorf("graph %q: screen %q links to unknown screen %q", g.ID, s.ID, child)
			}
		}
	}
	return nil
}

// StackNavigator is a tab's nested navigator. The root screen is always at
// the bottom of its stack.
type StackNavigator struct {
	graph Graph
	stack ScreenStack
	style string
}

func NewStackNavigator(graph Graph, style string) (*StackNavigator, error) {
	if err := graph.Validate(); err != nil {
		return nil, err
	}
	n := &StackNavigator{graph: graph, style: style}
	n.stack.Push(n.open(graph.Root, nil))
	return n, nil
}

func (n *StackNavigator) Graph() Graph { return n.graph }

func (n *StackNavigator) Current() Screen { return n.stack.Top() }

func (n *StackNavigator) Depth() int { return n.stack.Len() }

// Trail lists the titles of the open screens, root first.
func (n *StackNavigator) Trail() []string {
	items := n.stack.Items()
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = s.Title()
	}
	return out
}

// Navigate opens screenID on top of the current screen.
func (n *StackNavigator) Navigate(screenID string, args map[string]string) error {
	if _, ok := n.graph.Lookup(screenID); !ok {
		return fmt.Errorf("graph %q: unknown screen %q", n.graph.ID, screenID)
	}
	n.stack.Push(n.open(screenID, args))
	return nil
}

func (n *StackNavigator) OnBackPressed() bool {
	if n.stack.Len() <= 1 {
		return false
	}
	n.stack.Pop()
	return true
}

func (n *StackNavigator) PopToRoot() {
	n.stack.Truncate(1)
}

// HandleDeepLink accepts requests addressed to this graph and a screen it
// knows. The stack is rebuilt as root then target so back leads to the root.
func (n *StackNavigator) HandleDeepLink(req deeplink.Request) bool {
	if req.Graph != n.graph.ID {
		return false
	}
	if _, ok := n.graph.Lookup(req.Destination); !ok {
		return false
	}
	n.stack.Truncate(0)
	if req.Destination == n.graph.Root {
		n.stack.Push(n.open(n.graph.Root, req.Args))
		return true
	}
	n.stack.Push(n.open(n.graph.Root, nil))
	n.stack.Push(n.open(req.Destination, req.Args))
	return true
}

func (n *StackNavigator) open(id string, args map[string]string) Screen {
	spec, _ := n.graph.Lookup(id)
	return NewMarkdownScreen(spec, maps.Clone(args), n.style)
}
