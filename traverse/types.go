// Package traverse provides unweighted reachability search over a
// core.Graph: breadth-first and depth-first path finding plus
// connected-set queries. Only edges with a real weight are followed;
// weights themselves are ignored — use shortest for weighted paths.
package traverse

import (
	"context"
	"errors"
)

// Sentinel errors for traversal.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("traverse: graph is nil")

	// ErrVertexNotFound is returned when an endpoint label is absent.
	ErrVertexNotFound = errors.New("traverse: vertex not found")
)

// Option configures Search via functional arguments.
type Option func(*Options)

// Options holds parameters customizing Search execution.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per visited vertex.
	Ctx context.Context

	// DepthFirst switches the frontier from FIFO to LIFO order.
	DepthFirst bool

	// OnVisit is called as each vertex is taken off the frontier. A non-nil
	// error aborts the search and is propagated to the caller.
	OnVisit func(label string) error
}

// DefaultOptions returns Options with breadth-first order, a background
// context, and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(string) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDepthFirst explores the deepest frontier entry first instead of
// the oldest, turning Search into an iterative DFS.
func WithDepthFirst() Option {
	return func(o *Options) {
		o.DepthFirst = true
	}
}

// WithOnVisit registers a callback to run on each visited vertex;
// returning an error from it stops the search.
func WithOnVisit(fn func(label string) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
