package nav

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestPersistRestoreRoundTrip(t *testing.T) {
	c, _ := newFakeController(t, 5)
	for _, target := range []int{2, 4, 1, 2} {
		_, err := c.SelectTab(target)
		require.NoError(t, err)
	}
	saved := c.PersistState()

	restored, _ := newFakeController(t, 5)
	require.True(t, restored.RestoreState(saved))
	require.True(t, saved.Equal(restored.PersistState()))
	require.Equal(t, saved, restored.PersistState())
}

func TestRestoreDefaultStateRoundTrip(t *testing.T) {
	c, _ := newFakeController(t, 2)
	saved := c.PersistState()
	require.Equal(t, DefaultState(), saved)
	require.True(t, c.RestoreState(saved))
	require.Equal(t, saved, c.PersistState())
}

func TestRestoreActiveOutOfRangeFallsBack(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	c, navs := newFakeController(t, 3)
	c.logger = logger
	_, _ = c.SelectTab(2)

	var events []int
	c.AddSelectionListener(func(idx int, _ Destination) { events = append(events, idx) })
	require.False(t, c.RestoreState(State{ActiveIndex: 7, History: []int{1}}))
	require.Equal(t, 0, c.ActiveIndex())
	require.Empty(t, c.History())
	require.Equal(t, []int{0}, events)
	require.Contains(t, buf.String(), "discarding persisted navigation state")
	for _, n := range navs {
		require.Zero(t, n.backs)
	}
}

func TestRestoreRejectsCorruptedHistory(t *testing.T) {
	cases := map[string]State{
		"negative active":  {ActiveIndex: -1, History: []int{}},
		"entry too large":  {ActiveIndex: 1, History: []int{0, 3}},
		"negative entry":   {ActiveIndex: 1, History: []int{-2}},
		"repeated entries": {ActiveIndex: 2, History: []int{0, 1, 0}},
		"latest is active": {ActiveIndex: 1, History: []int{0, 1}},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			c, _ := newFakeController(t, 3)
			_, _ = c.SelectTab(1)
			require.False(t, c.RestoreState(s))
			require.Equal(t, DefaultState(), c.PersistState())
		})
	}
}

func TestValidateReportsReason(t *testing.T) {
	err := State{ActiveIndex: 7}.Validate(3)
	var corrupt *StateCorruptionError
	require.ErrorAs(t, err, &corrupt)
	require.Equal(t, 3, corrupt.Count)
	require.Contains(t, corrupt.Error(), "active index 7 out of range")

	require.NoError(t, State{ActiveIndex: 2, History: []int{0, 1}}.Validate(3))
}

func TestValidateLatestEntryMustDifferFromActive(t *testing.T) {
	err := State{ActiveIndex: 1, History: []int{0, 1}}.Validate(3)
	var corrupt *StateCorruptionError
	require.ErrorAs(t, err, &corrupt)
	require.Contains(t, corrupt.Error(), "latest history entry 1")

	// The active tab may still sit deeper in history.
	require.NoError(t, State{ActiveIndex: 2, History: []int{3, 2, 0, 1, 4}}.Validate(5))
}

func TestRestoreCopiesHistory(t *testing.T) {
	c, _ := newFakeController(t, 3)
	hist := []int{0, 1}
	require.True(t, c.RestoreState(State{ActiveIndex: 2, History: hist}))
	hist[0] = 1
	require.Equal(t, []int{0, 1}, c.History())
}
