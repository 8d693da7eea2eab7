// File: pathfinder.go
// Role: Cached query surface over per-source Dijkstra tables.
package shortest

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vexlio/graphmat/core"
)

// DefaultCacheSize bounds the per-source table cache when WithCacheSize
// is not given. Most callers query paths from a handful of sources; 128
// tables comfortably covers interactive use without pinning O(V) memory
// per vertex of a large graph.
const DefaultCacheSize = 128

// PathFinder answers weighted path and distance queries against a graph,
// memoizing one Dijkstra table per queried source. Tables are derived
// data, never authoritative: whenever the graph's mutation generation
// moves, the whole cache is dropped before the next query, so no answer
// is ever produced from weights that have since changed.
//
// PathFinder inherits the graph's concurrency contract: no internal
// locking, callers serialize externally.
type PathFinder struct {
	graph     *core.Graph
	cache     *lru.Cache[string, *Table]
	gen       uint64
	denseScan bool

	// cacheSize is consumed by NewPathFinder when building the cache.
	cacheSize int
}

// FinderOption configures a PathFinder.
type FinderOption func(*PathFinder)

// WithCacheSize bounds how many per-source tables are kept; the least
// recently queried source is evicted first. Non-positive sizes are
// rejected by NewPathFinder.
func WithCacheSize(n int) FinderOption {
	return func(pf *PathFinder) {
		pf.cacheSize = n
	}
}

// WithFinderDenseScan makes the PathFinder compute its tables with the
// dense-scan engine instead of the heap.
func WithFinderDenseScan() FinderOption {
	return func(pf *PathFinder) {
		pf.denseScan = true
	}
}

// NewPathFinder builds a PathFinder over g. ErrGraphNil for a nil graph;
// ErrBadCacheSize for a non-positive WithCacheSize.
func NewPathFinder(g *core.Graph, opts ...FinderOption) (*PathFinder, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	pf := &PathFinder{graph: g, gen: g.Generation(), cacheSize: DefaultCacheSize}
	for _, opt := range opts {
		opt(pf)
	}
	if pf.cacheSize <= 0 {
		return nil, ErrBadCacheSize
	}
	cache, err := lru.New[string, *Table](pf.cacheSize)
	if err != nil {
		return nil, err
	}
	pf.cache = cache

	return pf, nil
}

// Path returns the minimum-weight path from from to to, both endpoints
// included; nil when to is unreachable; [from] when from == to.
// ErrVertexNotFound if either endpoint is absent.
func (pf *PathFinder) Path(from, to string) ([]string, error) {
	t, err := pf.table(from, to)
	if err != nil {
		return nil, err
	}

	return t.PathTo(to), nil
}

// Distance returns the total weight of the minimum-weight path from from
// to to, Unreachable when no path exists, and 0 when from == to.
// ErrVertexNotFound if either endpoint is absent.
func (pf *PathFinder) Distance(from, to string) (int64, error) {
	t, err := pf.table(from, to)
	if err != nil {
		return Unreachable, err
	}

	return t.DistanceTo(to), nil
}

// table validates the endpoints and returns the memoized table for from,
// recomputing it after a cache miss or a graph mutation.
func (pf *PathFinder) table(from, to string) (*Table, error) {
	if !pf.graph.Contains(from) || !pf.graph.Contains(to) {
		return nil, ErrVertexNotFound
	}

	// Mutation since the last query invalidates every cached table at
	// once — cheaper and safer than tracking which sources an edge
	// change could influence.
	if gen := pf.graph.Generation(); gen != pf.gen {
		pf.cache.Purge()
		pf.gen = gen
	}

	if t, ok := pf.cache.Get(from); ok {
		return t, nil
	}

	var opts []Option
	if pf.denseScan {
		opts = append(opts, WithDenseScan())
	}
	t, err := Dijkstra(pf.graph, from, opts...)
	if err != nil {
		return nil, err
	}
	pf.cache.Add(from, t)

	return t, nil
}
