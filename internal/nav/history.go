package nav

import "slices"

// TabHistory records previously deactivated tabs, oldest first, most
// recently deactivated last. It never holds the same index twice.
type TabHistory struct {
	items []int
}

func NewTabHistory(items ...int) *TabHistory {
	return &TabHistory{items: slices.Clone(items)}
}

// RemoveIfPresent deletes the entry for index, if any.
func (h *TabHistory) RemoveIfPresent(index int) {
	if i := slices.Index(h.items, index); i >= 0 {
		h.items = slices.Delete(h.items, i, i+1)
	}
}

// Push appends index as the most recent entry. Callers remove any existing
// occurrence first.
func (h *TabHistory) Push(index int) {
	h.items = append(h.items, index)
}

// Pop removes and returns the most recent entry.
func (h *TabHistory) Pop() (int, error) {
	if len(h.items) == 0 {
		return 0, ErrEmptyHistory
	}
	last := h.items[len(h.items)-1]
	h.items = h.items[:len(h.items)-1]
	return last, nil
}

func (h *TabHistory) IsEmpty() bool {
	return len(h.items) == 0
}

func (h *TabHistory) Contains(index int) bool {
	return slices.Contains(h.items, index)
}

func (h *TabHistory) Len() int {
	return len(h.items)
}

// Snapshot returns a copy of the entries, oldest first.
func (h *TabHistory) Snapshot() []int {
	if len(h.items) == 0 {
		return []int{}
	}
	return slices.Clone(h.items)
}

func (h *TabHistory) reset(items []int) {
	h.items = slices.Clone(items)
}
