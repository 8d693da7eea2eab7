// Package shortest computes single-source weighted shortest paths over a
// core.Graph via Dijkstra's algorithm, and serves path/distance queries
// from per-source cached tables.
//
// Two relaxation engines are available:
//
//   - the default heap engine, driven by the pqueue collaborator with
//     true decrease-key, O(V² log V) on dense matrices;
//   - a dense-scan engine (WithDenseScan), a plain O(V²) nested loop
//     with no heap, slightly faster on small dense graphs. It terminates
//     only when no unvisited vertex with a finite distance remains, so it
//     is correct on disconnected graphs too.
//
// Correctness requires non-negative edge weights; the engine does not
// validate this structurally (core accepts any weight).
//
// Errors:
//
//	ErrGraphNil        — a nil graph pointer was passed.
//	ErrVertexNotFound  — an endpoint label is absent from the graph.
//	ErrBadCacheSize    — WithCacheSize received a non-positive size.
package shortest

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for a destination no path leads
// to. distance(v, v) is always 0, never Unreachable.
const Unreachable int64 = math.MaxInt64

// NoPrev marks a table entry with no predecessor: the source itself, or
// a vertex the relaxation never reached.
const NoPrev = -1

// Sentinel errors for shortest-path queries.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("shortest: graph is nil")

	// ErrVertexNotFound is returned when an endpoint label is absent.
	ErrVertexNotFound = errors.New("shortest: vertex not found")

	// ErrBadCacheSize is returned by NewPathFinder for a non-positive
	// cache size.
	ErrBadCacheSize = errors.New("shortest: cache size must be positive")
)

// Hop is one table entry: the predecessor id on the shortest path to
// this destination and the total distance from the source.
type Hop struct {
	Prev int
	Dist int64
}

// Table is the all-destinations shortest-path result for one source,
// indexed by destination id. It snapshots the vertex order it was
// computed against, so paths reconstruct correctly for as long as the
// table is valid (the PathFinder drops tables on any graph mutation).
type Table struct {
	// Source is the label the table was computed from.
	Source string

	// Hops[id] pairs (predecessor id, distance) for destination id.
	Hops []Hop

	labels []string       // id → label, snapshot at compute time
	index  map[string]int // label → id, inverse of labels
}

// DistanceTo returns the total weight of the shortest path to the given
// label, or Unreachable when no path exists or the label is outside the
// table's snapshot (a vertex added after the table was computed is
// simply not reachable through it).
func (t *Table) DistanceTo(to string) int64 {
	id, ok := t.index[to]
	if !ok || id >= len(t.Hops) {
		return Unreachable
	}

	return t.Hops[id].Dist
}

// PathTo reconstructs the shortest path from the table's source to the
// given label by walking predecessor links backward. Returns nil when
// the destination is unreachable or unknown; returns [source] for the
// source itself.
func (t *Table) PathTo(to string) []string {
	id, ok := t.index[to]
	if !ok || id >= len(t.Hops) || t.Hops[id].Dist == Unreachable {
		return nil
	}

	// Walk back until the predecessor chain ends; the source is the only
	// reachable vertex whose Prev is NoPrev.
	path := []string{t.labels[id]}
	for cur := id; t.Hops[cur].Prev != NoPrev; {
		cur = t.Hops[cur].Prev
		path = append(path, t.labels[cur])
	}
	if path[len(path)-1] != t.Source {
		// Chain broke before the source: disconnected.
		return nil
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Option configures a single Dijkstra run.
type Option func(*Options)

// Options holds parameters for one Dijkstra table computation.
type Options struct {
	// DenseScan selects the no-heap O(V²) relaxation engine.
	DenseScan bool
}

// DefaultOptions returns Options selecting the heap engine.
func DefaultOptions() Options { return Options{} }

// WithDenseScan selects the nested-loop relaxation engine instead of the
// heap: no priority queue, O(V²), attractive for small dense graphs.
func WithDenseScan() Option {
	return func(o *Options) {
		o.DenseScan = true
	}
}
