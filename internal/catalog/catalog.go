// Package catalog holds the static tab configuration the controller is
// built from.
package catalog

import (
	"fmt"

	"github.com/agnivade/levenshtein"

	"github.com/jask/tabnav/internal/nav"
	"github.com/jask/tabnav/internal/screens"
)

// TabDef describes one tab and its screen graph.
type TabDef struct {
	ID       string               `mapstructure:"id"`
	Selector string               `mapstructure:"selector"`
	Title    string               `mapstructure:"title"`
	Root     string               `mapstructure:"root"`
	Screens  []screens.ScreenSpec `mapstructure:"screens"`
}

func (d TabDef) Graph() screens.Graph {
	return screens.Graph{ID: d.ID, Root: d.Root, Screens: d.Screens}
}

// Default is the tab set used when the configuration defines none.
func Default() []TabDef {
	return []TabDef{
		{
			ID: "home", Selector: "nav_home", Title: "Home", Root: "home",
			Screens: []screens.ScreenSpec{
				{ID: "home", Title: "Home", Children: []string{"about"}, Body: "# Home\n\nEach tab keeps its own history. Press **enter** to open a screen, **esc** to go back."},
				{ID: "about", Title: "About", Body: "# About\n\nBack unwinds this tab first, then returns to the tab you came from."},
			},
		},
		{
			ID: "library", Selector: "nav_library", Title: "Library", Root: "library",
			Screens: []screens.ScreenSpec{
				{ID: "library", Title: "Library", Children: []string{"book"}, Body: "# Library\n\nShelves and saved books."},
				{ID: "book", Title: "{{title}}", Body: "# {{title}}\n\nPublished {{date}}."},
			},
		},
		{
			ID: "settings", Selector: "nav_settings", Title: "Settings", Root: "settings",
			Screens: []screens.ScreenSpec{
				{ID: "settings", Title: "Settings", Children: []string{"licenses"}, Body: "# Settings\n\nPreferences for this device."},
				{ID: "licenses", Title: "Licenses", Body: "# Licenses\n\nThird-party notices."},
			},
		},
	}
}

// Build creates one destination per definition, each with its own stack
// navigator.
func Build(defs []TabDef, style string) ([]nav.Destination, error) {
	out := make([]nav.Destination, 0, len(defs))
	for _, d := range defs {
		n, err := screens.NewStackNavigator(d.Graph(), style)
		if err != nil {
			return nil, fmt.Errorf("tab %q: %w", d.ID, err)
		}
		title := d.Title
		if title == "" {
			title = d.ID
		}
		out = append(out, nav.Destination{ID: d.ID, SelectorItemID: d.Selector, Title: title, Navigator: n})
	}
	return out, nil
}

// Suggest returns the candidate closest to name, if any is close enough to
// be a plausible typo.
func Suggest(name string, candidates []string) (string, bool) {
	const maxDistance = 3
	best, bestDist := "", maxDistance+1
	for _, c := range candidates {
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}

func IDs(defs []TabDef) []string {
	out := make([]string, len(defs))
	for i, d := range defs {
		out[i] = d.ID
	}
	return out
}
