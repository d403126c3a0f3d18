package nav

import "github.com/jask/tabnav/internal/deeplink"

// The On* methods are the entry points a host surface wires its events to.
// Selector events carry selector item ids; everything else maps directly
// onto the controller operations.

// OnSelectorItemChosen handles a tap on a selector item.
func (c *Controller) OnSelectorItemChosen(itemID string) (bool, error) {
	idx, ok := c.IndexOfSelectorItem(itemID)
	if !ok {
		return false, &UnknownSelectorItemError{ItemID: itemID}
	}
	return c.SelectTab(idx)
}

// OnSelectorItemReselected handles a tap on the already selected item.
func (c *Controller) OnSelectorItemReselected(itemID string) error {
	idx, ok := c.IndexOfSelectorItem(itemID)
	if !ok {
		return &UnknownSelectorItemError{ItemID: itemID}
	}
	return c.ReselectTab(idx)
}

// OnPageSelected handles a page change that did not come from the selector,
// such as a swipe. It records history like a selector tap; listeners then
// move the selector to match. Pager hosts that echo the page change back
// through the selector would record nothing for a swipe; here a swipe is
// undone by back the same way a tap is.
func (c *Controller) OnPageSelected(index int) (bool, error) {
	return c.SelectTab(index)
}

func (c *Controller) OnHostBackPressed() BackOutcome {
	return c.OnBackPressed()
}

func (c *Controller) OnDeepLinkReceived(req deeplink.Request) (int, bool) {
	return c.ResolveDeepLink(req)
}

func (c *Controller) OnHostSave() State {
	return c.PersistState()
}

func (c *Controller) OnHostRestore(s State) bool {
	return c.RestoreState(s)
}
