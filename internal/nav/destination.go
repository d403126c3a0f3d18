package nav

import "github.com/jask/tabnav/internal/deeplink"

// NestedNavigator is the per-tab navigation capability the controller
// delegates to.
type NestedNavigator interface {
	// OnBackPressed unwinds one step of the tab's own history. It returns
	// false when there is nothing left to unwind.
	OnBackPressed() bool
	// PopToRoot resets the tab to its initial screen.
	PopToRoot()
	// HandleDeepLink reports whether the tab took ownership of req.
	HandleDeepLink(req deeplink.Request) bool
}

// Destination describes one tab.
type Destination struct {
	ID             string
	SelectorItemID string
	Title          string
	Navigator      NestedNavigator
}
