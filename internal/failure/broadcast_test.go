package failure

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEmitRespectsMask(t *testing.T) {
	b := NewBroadcaster(Debug)
	var usual, all []Failure
	b.Observe("status", Usual, func(f Failure) { usual = append(usual, f) })
	b.Observe("log", All, func(f Failure) { all = append(all, f) })

	boom := errors.New("boom")
	require.True(t, b.Debug(boom))
	require.True(t, b.Usual(boom))
	require.True(t, b.Severe(boom))

	require.Len(t, usual, 1)
	require.Len(t, all, 3)
	require.ErrorIs(t, all[0], boom)
	require.Equal(t, "usual: boom", usual[0].Error())
}

func TestEmitBelowThresholdIsDropped(t *testing.T) {
	b := NewBroadcaster(Usual)
	var got int
	b.Observe("x", All, func(Failure) { got++ })
	require.False(t, b.Debug(errors.New("noise")))
	require.True(t, b.Severe(errors.New("bad")))
	require.Equal(t, 1, got)
	require.False(t, b.Usual(nil))
}

func TestRemoveObservers(t *testing.T) {
	b := NewBroadcaster(0)
	var got int
	b.Observe("a", All, func(Failure) { got++ })
	b.Observe("b", All, func(Failure) { got++ })
	b.RemoveObservers("a")
	b.Usual(errors.New("x"))
	require.Equal(t, 1, got)

	b.RemoveObservers("b")
	require.False(t, b.Usual(errors.New("x")))
}

func TestLevelString(t *testing.T) {
	require.Equal(t, "debug|severe", (Debug | Severe).String())
	require.Equal(t, "Level(0)", Level(0).String())
}
