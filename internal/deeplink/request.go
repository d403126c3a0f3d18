// Package deeplink models requests that ask the application to open a
// specific screen inside a specific tab.
//
// A Request is an opaque bundle as far as tab navigation is concerned: the
// controller forwards it to each tab's navigator and never inspects it.
package deeplink

import (
	"errors"
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
)

// Scheme is the URI scheme used for textual deep links.
const Scheme = "tabnav"

var (
	ErrInvalidScheme      = errors.New("deeplink: invalid scheme")
	ErrMissingGraph       = errors.New("deeplink: missing graph")
	ErrMissingDestination = errors.New("deeplink: missing destination")
)

// Request names a navigation graph, a destination screen inside it and the
// arguments that screen needs.
type Request struct {
	Graph       string
	Destination string
	Args        map[string]string
}

// Arg returns the named argument or "" when absent.
func (r Request) Arg(key string) string {
	if r.Args == nil {
		return ""
	}
	return r.Args[key]
}

func (r Request) IsZero() bool {
	return r.Graph == "" && r.Destination == "" && len(r.Args) == 0
}

// URI encodes the request as tabnav://<graph>/<destination>?k=v with keys
// in sorted order.
func (r Request) URI() string {
	u := url.URL{Scheme: Scheme, Host: r.Graph, Path: "/" + r.Destination}
	if len(r.Args) > 0 {
		q := url.Values{}
		for _, k := range slices.Sorted(maps.Keys(r.Args)) {
			q.Set(k, r.Args[k])
		}
		u.RawQuery = q.Encode()
	}
	return u.String()
}

func (r Request) String() string { return r.URI() }

// Parse is the inverse of URI.
func Parse(raw string) (Request, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return Request{}, fmt.Errorf("parse deep link %q: %w", raw, err)
	}
	if u.Scheme != Scheme {
		return Request{}, fmt.Errorf("%w: %q", ErrInvalidScheme, u.Scheme)
	}
	if u.Host == "" {
		return Request{}, ErrMissingGraph
	}
	dest := strings.Trim(u.Path, "/")
	if dest == "" {
		return Request{}, ErrMissingDestination
	}
	req := Request{Graph: u.Host, Destination: dest}
	q := u.Query()
	if len(q) > 0 {
		req.Args = make(map[string]string, len(q))
		for k := range q {
			req.Args[k] = q.Get(k)
		}
	}
	return req, nil
}

// Builder assembles a Request step by step.
type Builder struct {
	req Request
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) SetGraph(graph string) *Builder {
	b.req.Graph = graph
	return b
}

func (b *Builder) SetDestination(dest string) *Builder {
	b.req.Destination = dest
	return b
}

// SetArguments replaces the argument bundle. The map is copied.
func (b *Builder) SetArguments(args map[string]string) *Builder {
	b.req.Args = maps.Clone(args)
	return b
}

// PutArgument adds or replaces a single argument.
func (b *Builder) PutArgument(key, value string) *Builder {
	if b.req.Args == nil {
		b.req.Args = map[string]string{}
	}
	b.req.Args[key] = value
	return b
}

// Build validates and returns the request.
func (b *Builder) Build() (Request, error) {
	if b.req.Graph == "" {
		return Request{}, ErrMissingGraph
	}
	if b.req.Destination == "" {
		return Request{}, ErrMissingDestination
	}
	return Request{Graph: b.req.Graph, Destination: b.req.Destination, Args: maps.Clone(b.req.Args)}, nil
}
