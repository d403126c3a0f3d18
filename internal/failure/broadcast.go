// Package failure broadcasts recoverable failures to whoever wants to show
// or record them.
package failure

import (
	"fmt"
	"slices"
	"strings"
)

// Level is a failure channel. Levels are bit flags so observers can listen
// on several at once.
type Level int

const (
	Debug Level = 1 << iota
	Usual
	Severe

	All = Debug | Usual | Severe
)

func (l Level) String() string {
	var parts []string
	for _, c := range []struct {
		l    Level
		name string
	}{{Debug, "debug"}, {Usual, "usual"}, {Severe, "severe"}} {
		if l&c.l != 0 {
			parts = append(parts, c.name)
		}
	}
	if len(parts) == 0 {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return strings.Join(parts, "|")
}

// Failure is one emitted failure.
type Failure struct {
	Level Level
	Err   error
}

func (f Failure) Error() string {
	return f.Level.String() + ": " + f.Err.Error()
}

func (f Failure) Unwrap() error { return f.Err }

type Observer func(Failure)

type subscription struct {
	owner string
	mask  Level
	fn    Observer
}

// Broadcaster delivers failures synchronously on the emitting goroutine.
// Failures below the threshold are dropped.
type Broadcaster struct {
	threshold Level
	subs      []subscription
}

func NewBroadcaster(threshold Level) *Broadcaster {
	if threshold == 0 {
		threshold = Debug
	}
	return &Broadcaster{threshold: threshold}
}

// Observe registers fn for failures whose level is in mask.
func (b *Broadcaster) Observe(owner string, mask Level, fn Observer) {
	if fn == nil {
		return
	}
	b.subs = append(b.subs, subscription{owner: owner, mask: mask, fn: fn})
}

// RemoveObservers drops every observer registered by owner.
func (b *Broadcaster) RemoveObservers(owner string) {
	b.subs = slices.DeleteFunc(b.subs, func(s subscription) bool { return s.owner == owner })
}

// Emit publishes err on level. It returns false when nothing received it.
func (b *Broadcaster) Emit(level Level, err error) bool {
	if err == nil || level < b.threshold {
		return false
	}
	f := Failure{Level: level, Err: err}
	delivered := false
	for _, s := range slices.Clone(b.subs) {
		if s.mask&level != 0 {
			s.fn(f)
			delivered = true
		}
	}
	return delivered
}

func (b *Broadcaster) Debug(err error) bool  { return b.Emit(Debug, err) }
func (b *Broadcaster) Usual(err error) bool  { return b.Emit(Usual, err) }
func (b *Broadcaster) Severe(err error) bool { return b.Emit(Severe, err) }
