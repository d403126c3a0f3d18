package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/tabnav/internal/deeplink"
	"github.com/jask/tabnav/internal/nav"
	"github.com/jask/tabnav/internal/screens"
)

func TestDefaultBuildsController(t *testing.T) {
	dests, err := Build(Default(), "notty")
	require.NoError(t, err)
	require.Len(t, dests, 3)

	c, err := nav.NewController(dests)
	require.NoError(t, err)

	req, err := deeplink.NewBuilder().
		SetGraph("library").
		SetDestination("book").
		SetArguments(map[string]string{"title": "Game of Thrones: The short night", "date": "2019"}).
		Build()
	require.NoError(t, err)

	idx, ok := c.ResolveDeepLink(req)
	require.True(t, ok)
	require.Equal(t, 1, idx)

	lib := dests[1].Navigator.(*screens.StackNavigator)
	require.Equal(t, "Game of Thrones: The short night", lib.Current().Title())

	// Back unwinds the library first, then returns to home.
	require.Equal(t, nav.BackConsumed, c.OnBackPressed())
	require.Equal(t, nav.BackRestored, c.OnBackPressed())
	require.Equal(t, 0, c.ActiveIndex())
	require.Equal(t, nav.BackExit, c.OnBackPressed())
}

func TestBuildRejectsBrokenGraph(t *testing.T) {
	defs := Default()
	defs[2].Root = "missing"
	_, err := Build(defs, "notty")
	require.ErrorContains(t, err, `tab "settings"`)
}

func TestBuildDefaultsTitle(t *testing.T) {
	defs := []TabDef{{ID: "solo", Root: "a", Screens: []screens.ScreenSpec{{ID: "a"}}}}
	dests, err := Build(defs, "notty")
	require.NoError(t, err)
	require.Equal(t, "solo", dests[0].Title)
}

func TestSuggest(t *testing.T) {
	got, ok := Suggest("libary", IDs(Default()))
	require.True(t, ok)
	require.Equal(t, "library", got)

	_, ok = Suggest("zzzzzzzzzz", IDs(Default()))
	require.False(t, ok)
}
