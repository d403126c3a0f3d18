package nav

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/tabnav/internal/deeplink"
)

func TestOnSelectorItemChosenMapsToIndex(t *testing.T) {
	c, _ := newFakeController(t, 3)
	changed, err := c.OnSelectorItemChosen("item2")
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 2, c.ActiveIndex())

	changed, err = c.OnSelectorItemChosen("item2")
	require.NoError(t, err)
	require.False(t, changed)
}

func TestOnSelectorItemUnknown(t *testing.T) {
	c, _ := newFakeController(t, 3)
	_, err := c.OnSelectorItemChosen("nope")
	var unknown *UnknownSelectorItemError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "nope", unknown.ItemID)

	require.ErrorAs(t, c.OnSelectorItemReselected("nope"), &unknown)
}

func TestOnSelectorItemReselectedPopsToRoot(t *testing.T) {
	c, navs := newFakeController(t, 3)
	_, _ = c.OnSelectorItemChosen("item1")
	require.NoError(t, c.OnSelectorItemReselected("item1"))
	require.Equal(t, 1, navs[1].roots)
	require.Equal(t, 1, c.ActiveIndex())
	require.Equal(t, []int{0}, c.History())
}

func TestOnPageSelectedRecordsHistory(t *testing.T) {
	c, _ := newFakeController(t, 3)
	var synced []int
	c.AddSelectionListener(func(idx int, _ Destination) { synced = append(synced, idx) })

	changed, err := c.OnPageSelected(1)
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, []int{0}, c.History())
	require.Equal(t, []int{1}, synced)
}

func TestHostSaveRestoreAndBack(t *testing.T) {
	c, navs := newFakeController(t, 3)
	_, _ = c.OnSelectorItemChosen("item1")
	_, _ = c.OnSelectorItemChosen("item2")
	saved := c.OnHostSave()

	next, _ := newFakeController(t, 3)
	require.True(t, next.OnHostRestore(saved))
	require.Equal(t, BackRestored, next.OnHostBackPressed())
	require.Equal(t, 1, next.ActiveIndex())

	navs[0].accepts = true
	idx, ok := c.OnDeepLinkReceived(deeplink.Request{Graph: "home", Destination: "about"})
	require.True(t, ok)
	require.Equal(t, 0, idx)
}
