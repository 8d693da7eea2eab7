// Package mincut provides randomized minimum-cut search via Karger's
// contraction algorithm and a recursive decomposition of a graph into
// highly connected subgraphs (HCS clustering).
//
// Directionality: contraction treats the graph as undirected — one
// contractible edge per vertex pair joined in either direction — but a
// cut's weight counts every *directed* edge crossing the partition,
// both ways.
//
// Randomness: every routine draws from an explicit *rand.Rand
// (WithRand); under a fixed seed, results are fully reproducible. No
// global random state is touched.
//
// Cancellation: the repeated-trial search checks its context once per
// attempt. The in-flight trial always completes; on cancellation the
// best cut found so far is returned alongside the context error.
//
// Errors:
//
//	ErrGraphNil     — a nil graph pointer was passed.
//	ErrBadAttempts  — a non-positive attempt count.
//	ErrBadThreshold — a non-positive connectedness threshold.
//	ErrRandNil      — a nil random source was passed to MinCut.
package mincut

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"time"

	"go.arcalot.io/log/v2"
)

// Sentinel errors for cut search and clustering.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("mincut: graph is nil")

	// ErrBadAttempts is returned when the attempt count is < 1.
	ErrBadAttempts = errors.New("mincut: attempts must be positive")

	// ErrRandNil is returned when MinCut receives a nil random source.
	ErrRandNil = errors.New("mincut: random source is nil")

	// ErrBadThreshold is returned when the connectedness threshold is <= 0.
	ErrBadThreshold = errors.New("mincut: threshold must be positive")
)

// DegenerateWeight is the Weight of a Cut produced from a graph that
// collapsed to a single cluster (or held at most one vertex to begin
// with): there is nothing to cut.
const DegenerateWeight = -1

// Cut is the value type produced by a min-cut trial: the number of
// directed edges crossing the partition and the two disjoint label sets
// covering all vertices.
type Cut struct {
	// Weight counts directed edges crossing between First and Second in
	// either direction; DegenerateWeight for a degenerate cut, 0 when the
	// graph fell apart into components with no contraction edges left.
	Weight int

	// First and Second partition the vertex labels.
	First  []string
	Second []string
}

// Degenerate reports whether the cut came from a graph with nothing to
// cut (single vertex, or full collapse into one cluster).
func (c Cut) Degenerate() bool { return c.Weight < 0 }

// Better reports whether c beats other under the cut ordering: fewer
// crossing edges first, ties broken by the more balanced partition
// (larger minimum side). A degenerate cut never beats a real one.
func (c Cut) Better(other Cut) bool {
	if c.Degenerate() {
		return false
	}
	if other.Degenerate() {
		return true
	}
	if c.Weight != other.Weight {
		return c.Weight < other.Weight
	}

	return min(len(c.First), len(c.Second)) > min(len(other.First), len(other.Second))
}

// Option configures Karger and HighlyConnectedSubgraphs.
type Option func(*Options)

// Options holds parameters for the randomized search.
type Options struct {
	// Ctx allows cooperative cancellation, checked once per attempt.
	Ctx context.Context

	// Rand is the randomness source for contraction shuffles. Defaults to
	// a time-seeded private generator; inject a fixed seed for
	// reproducible runs.
	Rand *rand.Rand

	// Logger receives attempt progress at debug level. Defaults to a
	// discarding logger.
	Logger log.Logger
}

// DefaultOptions returns Options with a background context, a
// time-seeded private random source, and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:  context.Background(),
		Rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger: log.New(log.Config{
			Level:       log.LevelError,
			Destination: log.DestinationStdout,
			Stdout:      io.Discard,
		}),
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

// WithRand sets the randomness source, making runs reproducible under a
// fixed seed.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
		}
	}
}

// WithLogger routes attempt progress to the given logger.
func WithLogger(l log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
