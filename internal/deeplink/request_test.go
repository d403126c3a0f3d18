package deeplink

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderProducesRequest(t *testing.T) {
	req, err := NewBuilder().
		SetGraph("library").
		SetDestination("book").
		SetArguments(map[string]string{"title": "Game of Thrones: The short night", "date": "2019"}).
		Build()
	require.NoError(t, err)
	require.Equal(t, "library", req.Graph)
	require.Equal(t, "book", req.Destination)
	require.Equal(t, "2019", req.Arg("date"))
	require.Equal(t, "", req.Arg("missing"))
}

func TestBuilderCopiesArguments(t *testing.T) {
	args := map[string]string{"id": "1"}
	b := NewBuilder().SetGraph("g").SetDestination("d").SetArguments(args)
	args["id"] = "2"
	req, err := b.Build()
	require.NoError(t, err)
	require.Equal(t, "1", req.Arg("id"))
}

func TestBuilderRequiresGraphAndDestination(t *testing.T) {
	_, err := NewBuilder().SetDestination("book").Build()
	require.ErrorIs(t, err, ErrMissingGraph)

	_, err = NewBuilder().SetGraph("library").Build()
	require.ErrorIs(t, err, ErrMissingDestination)
}

func TestURIRoundTrip(t *testing.T) {
	req, err := NewBuilder().
		SetGraph("library").
		SetDestination("book").
		PutArgument("title", "Game of Thrones").
		PutArgument("date", "2019").
		Build()
	require.NoError(t, err)

	uri := req.URI()
	require.Equal(t, "tabnav://library/book?date=2019&title=Game+of+Thrones", uri)

	parsed, err := Parse(uri)
	require.NoError(t, err)
	require.Equal(t, req, parsed)
}

func TestParseWithoutArgs(t *testing.T) {
	req, err := Parse("tabnav://settings/licenses")
	require.NoError(t, err)
	require.Equal(t, Request{Graph: "settings", Destination: "licenses"}, req)
	require.False(t, req.IsZero())
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := map[string]error{
		"https://library/book": ErrInvalidScheme,
		"tabnav:///book":       ErrMissingGraph,
		"tabnav://library":     ErrMissingDestination,
		"tabnav://library/":    ErrMissingDestination,
	}
	for raw, want := range cases {
		_, err := Parse(raw)
		require.ErrorIs(t, err, want, raw)
	}
}
