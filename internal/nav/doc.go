// Package nav is the tab navigation core: a fixed set of destinations, each
// owning a nested navigator, and a controller that tracks which tab is
// active and in which order tabs were left.
//
// Allowed here:
// - the cross-tab history and its invariants
// - back delegation, reselection and deep-link resolution
// - persisted state and its validation
//
// Not allowed here:
// - rendering, key handling or any other host surface concern
// - interpreting deep-link payloads (navigators do that)
package nav
