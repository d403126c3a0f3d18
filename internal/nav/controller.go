package nav

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/jask/tabnav/internal/deeplink"
)

// BackOutcome tells the host what a back action resolved to.
type BackOutcome int

const (
	// BackConsumed means the active tab's navigator unwound its own history.
	BackConsumed BackOutcome = iota
	// BackRestored means a previously active tab was brought back.
	BackRestored
	// BackExit means nothing was left to go back to; the host decides how
	// to leave.
	BackExit
)

func (o BackOutcome) String() string {
	switch o {
	case BackConsumed:
		return "consumed"
	case BackRestored:
		return "restored"
	case BackExit:
		return "exit"
	default:
		return fmt.Sprintf("BackOutcome(%d)", int(o))
	}
}

// SelectionListener is told about every change of the active tab. The
// selector widget uses it to move its visual selection without emitting a
// selection request of its own.
type SelectionListener func(index int, dest Destination)

// Controller owns the tab set, the cross-tab history and the active index.
// It is not safe for concurrent use; the host drives it from its event loop.
type Controller struct {
	destinations []Destination
	history      *TabHistory
	active       int
	listeners    []SelectionListener
	logger       *log.Logger
}

type Option func(*Controller)

func WithLogger(logger *log.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithSelectionListener(fn SelectionListener) Option {
	return func(c *Controller) {
		if fn != nil {
			c.listeners = append(c.listeners, fn)
		}
	}
}

// NewController builds a controller over a fixed, non-empty set of
// destinations. The first destination starts active.
func NewController(destinations []Destination, opts ...Option) (*Controller, error) {
	if len(destinations) == 0 {
		return nil, errors.New("nav: at least one destination is required")
	}
	seenItems := make(map[string]string, len(destinations))
	for i, d := range destinations {
		if d.Navigator == nil {
			return nil, fmt.Errorf("nav: destination %d (%q) has no navigator", i, d.ID)
		}
		if d.SelectorItemID == "" {
			continue
		}
		if other, ok := seenItems[d.SelectorItemID]; ok {
			return nil, fmt.Errorf("nav: selector item %q shared by %q and %q", d.SelectorItemID, other, d.ID)
		}
		seenItems[d.SelectorItemID] = d.ID
	}
	c := &Controller{
		destinations: slices.Clone(destinations),
		history:      NewTabHistory(),
		logger:       log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Controller) AddSelectionListener(fn SelectionListener) {
	if fn != nil {
		c.listeners = append(c.listeners, fn)
	}
}

func (c *Controller) Len() int { return len(c.destinations) }

func (c *Controller) ActiveIndex() int { return c.active }

func (c *Controller) Active() Destination { return c.destinations[c.active] }

// History returns the cross-tab history, oldest first.
func (c *Controller) History() []int { return c.history.Snapshot() }

func (c *Controller) Destinations() []Destination { return slices.Clone(c.destinations) }

func (c *Controller) Destination(index int) (Destination, error) {
	if err := c.checkIndex(index); err != nil {
		return Destination{}, err
	}
	return c.destinations[index], nil
}

// IndexOf finds a destination by id.
func (c *Controller) IndexOf(id string) (int, bool) {
	i := slices.IndexFunc(c.destinations, func(d Destination) bool { return d.ID == id })
	return i, i >= 0
}

// IndexOfSelectorItem finds a destination by selector item id.
func (c *Controller) IndexOfSelectorItem(itemID string) (int, bool) {
	i := slices.IndexFunc(c.destinations, func(d Destination) bool { return d.SelectorItemID == itemID })
	return i, i >= 0
}

// SelectTab makes target the active tab. Selecting the tab that is already
// active does nothing and returns false; same-tab taps that should reset the
// tab go through ReselectTab.
func (c *Controller) SelectTab(target int) (bool, error) {
	if err := c.checkIndex(target); err != nil {
		return false, err
	}
	if target == c.active {
		return false, nil
	}
	// The tab being left is the one deduplicated and pushed, never the target.
	leaving := c.active
	c.history.RemoveIfPresent(leaving)
	c.history.Push(leaving)
	c.active = target
	c.logger.Debug("tab selected", "from", leaving, "to", target, "history", c.history.Snapshot())
	c.emit(target)
	return true, nil
}

// ReselectTab resets the tab at index to its root screen. History and the
// active index are left alone.
func (c *Controller) ReselectTab(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.logger.Debug("tab reselected", "index", index)
	c.destinations[index].Navigator.PopToRoot()
	return nil
}

// OnBackPressed gives the active tab the first chance to handle back, then
// falls back to the cross-tab history. The tab being left is not pushed back
// onto the history.
func (c *Controller) OnBackPressed() BackOutcome {
	if c.destinations[c.active].Navigator.OnBackPressed() {
		return BackConsumed
	}
	prev, err := c.history.Pop()
	if errors.Is(err, ErrEmptyHistory) {
		c.logger.Debug("back with empty history", "active", c.active)
		return BackExit
	}
	from := c.active
	c.active = prev
	c.logger.Debug("back restored tab", "from", from, "to", prev, "history", c.history.Snapshot())
	c.emit(prev)
	return BackRestored
}

// ResolveDeepLink offers req to each destination in order and selects the
// first one that accepts it. Unmatched requests are dropped.
func (c *Controller) ResolveDeepLink(req deeplink.Request) (int, bool) {
	for i, d := range c.destinations {
		if !d.Navigator.HandleDeepLink(req) {
			continue
		}
		// i is always in range, so SelectTab cannot fail here.
		changed, _ := c.SelectTab(i)
		c.logger.Debug("deep link resolved", "link", req.URI(), "index", i, "changed", changed)
		return i, true
	}
	c.logger.Debug("deep link unmatched", "link", req.URI())
	return -1, false
}

// NotifySelectorOfProgrammaticChange tells the selection listeners that
// index is displayed, without going through SelectTab.
func (c *Controller) NotifySelectorOfProgrammaticChange(index int) error {
	if err := c.checkIndex(index); err != nil {
		return err
	}
	c.emit(index)
	return nil
}

func (c *Controller) emit(index int) {
	d := c.destinations[index]
	for _, fn := range c.listeners {
		fn(index, d)
	}
}

func (c *Controller) checkIndex(index int) error {
	if index < 0 || index >= len(c.destinations) {
		return &InvalidIndexError{Index: index, Count: len(c.destinations)}
	}
	return nil
}
