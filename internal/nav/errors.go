package nav

import (
	"errors"
	"fmt"
)

// ErrEmptyHistory is returned by TabHistory.Pop when there is nothing left
// to go back to. The controller turns it into BackExit.
var ErrEmptyHistory = errors.New("nav: tab history is empty")

// InvalidIndexError reports a destination index outside [0, Count).
type InvalidIndexError struct {
	Index int
	Count int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("nav: destination index %d out of range [0,%d)", e.Index, e.Count)
}

// UnknownSelectorItemError reports a selector item id that maps to no
// destination.
type UnknownSelectorItemError struct {
	ItemID string
}

func (e *UnknownSelectorItemError) Error() string {
	return fmt.Sprintf("nav: unknown selector item %q", e.ItemID)
}

// StateCorruptionError describes why a restored State was discarded.
type StateCorruptionError struct {
	State  State
	Count  int
	Reason string
}

func (e *StateCorruptionError) Error() string {
	return fmt.Sprintf("nav: corrupted state (active=%d history=%v count=%d): %s",
		e.State.ActiveIndex, e.State.History, e.Count, e.Reason)
}
