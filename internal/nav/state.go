package nav

import (
	"fmt"
	"slices"
)

// State is the part of the controller that survives host recreation: the
// active index and the cross-tab history, oldest first.
type State struct {
	ActiveIndex int   `json:"active_index" msgpack:"active_index"`
	History     []int `json:"history" msgpack:"history"`
}

// DefaultState is what the controller falls back to when a persisted state
// cannot be trusted.
func DefaultState() State {
	return State{ActiveIndex: 0, History: []int{}}
}

// Validate checks s against a controller with count destinations.
func (s State) Validate(count int) error {
	if s.ActiveIndex < 0 || s.ActiveIndex >= count {
		return &StateCorruptionError{State: s, Count: count, Reason: fmt.Sprintf("active index %d out of range", s.ActiveIndex)}
	}
	seen := make(map[int]struct{}, len(s.History))
	for _, idx := range s.History {
		if idx < 0 || idx >= count {
			return &StateCorruptionError{State: s, Count: count, Reason: fmt.Sprintf("history entry %d out of range", idx)}
		}
		if _, dup := seen[idx]; dup {
			return &StateCorruptionError{State: s, Count: count, Reason: fmt.Sprintf("history entry %d repeated", idx)}
		}
		seen[idx] = struct{}{}
	}
	// A back press must always change the active tab.
	if n := len(s.History); n > 0 && s.History[n-1] == s.ActiveIndex {
		return &StateCorruptionError{State: s, Count: count, Reason: fmt.Sprintf("latest history entry %d is the active index", s.ActiveIndex)}
	}
	return nil
}

func (s State) Equal(other State) bool {
	return s.ActiveIndex == other.ActiveIndex && slices.Equal(s.History, other.History)
}

// PersistState captures the controller's state.
func (c *Controller) PersistState() State {
	return State{ActiveIndex: c.active, History: c.history.Snapshot()}
}

// RestoreState replaces the controller's state with s. A state that does not
// fit the current destination set is discarded in favour of DefaultState and
// RestoreState returns false. Either way selection listeners are told about
// the resulting active tab.
func (c *Controller) RestoreState(s State) bool {
	ok := true
	if err := s.Validate(len(c.destinations)); err != nil {
		c.logger.Warn("discarding persisted navigation state", "err", err,
			"active", s.ActiveIndex, "history", s.History, "count", len(c.destinations))
		s = DefaultState()
		ok = false
	}
	c.active = s.ActiveIndex
	c.history.reset(s.History)
	c.emit(c.active)
	return ok
}
