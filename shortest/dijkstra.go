// File: dijkstra.go
// Role: Single-source table computation — heap engine and dense-scan
// engine over the adjacency matrix.
package shortest

import (
	"github.com/vexlio/graphmat/core"
	"github.com/vexlio/graphmat/pqueue"
)

// Dijkstra computes the all-destinations shortest-path table for source.
// Every reachable destination receives its predecessor id and total
// distance; unreached destinations keep (NoPrev, Unreachable); the
// source itself holds (NoPrev, 0).
//
// The default engine processes vertices through the pqueue collaborator
// with in-place decrease-key; WithDenseScan switches to the nested-loop
// engine. Both produce identical tables.
//
// Complexity: O(V² log V) heap engine, O(V²) dense engine.
func Dijkstra(g *core.Graph, source string, opts ...Option) (*Table, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.Contains(source) {
		return nil, ErrVertexNotFound
	}

	// 2) Snapshot the vertex order and seed the table.
	labels := g.Vertices()
	n := len(labels)
	t := &Table{
		Source: source,
		Hops:   make([]Hop, n),
		labels: labels,
		index:  make(map[string]int, n),
	}
	src := 0
	for i, label := range labels {
		t.index[label] = i
		t.Hops[i] = Hop{Prev: NoPrev, Dist: Unreachable}
		if label == source {
			src = i
		}
	}
	t.Hops[src].Dist = 0

	// 3) Run the selected relaxation engine.
	var err error
	if o.DenseScan {
		err = relaxDense(g, t, src)
	} else {
		err = relaxHeap(g, t, src)
	}
	if err != nil {
		return nil, err
	}

	return t, nil
}

// relaxHeap settles vertices in increasing distance order using the
// decrease-key priority queue: one queue entry per discovered vertex,
// lowered in place as better routes appear.
func relaxHeap(g *core.Graph, t *Table, src int) error {
	var q pqueue.Queue[int]
	handles := make(map[int]*pqueue.Item[int], len(t.Hops))
	settled := make([]bool, len(t.Hops))

	handles[src] = q.Insert(0, src)
	for {
		u, ok := q.ExtractMin()
		if !ok {
			break
		}
		delete(handles, u)
		settled[u] = true

		row, err := g.Row(t.labels[u])
		if err != nil {
			return err
		}
		for v, w := range row {
			if w == core.NoEdge || settled[v] {
				continue
			}
			next := t.Hops[u].Dist + w
			if next >= t.Hops[v].Dist {
				continue
			}
			t.Hops[v] = Hop{Prev: u, Dist: next}
			if h, queued := handles[v]; queued {
				if err = q.DecreaseKey(h, next); err != nil {
					return err
				}
			} else {
				handles[v] = q.Insert(next, v)
			}
		}
	}

	return nil
}

// relaxDense settles vertices by scanning for the closest unvisited one
// each round. The loop stops only when no unvisited vertex has a finite
// distance left, so disconnected remainders are simply never settled and
// keep their Unreachable sentinel.
func relaxDense(g *core.Graph, t *Table, src int) error {
	n := len(t.Hops)
	settled := make([]bool, n)
	for range t.Hops {
		// Pick the unvisited vertex with the smallest finite distance.
		u, best := NoPrev, Unreachable
		for v := 0; v < n; v++ {
			if !settled[v] && t.Hops[v].Dist < best {
				u, best = v, t.Hops[v].Dist
			}
		}
		if u == NoPrev {
			// Frontier is empty; the rest of the graph is unreachable.
			break
		}
		settled[u] = true

		row, err := g.Row(t.labels[u])
		if err != nil {
			return err
		}
		for v, w := range row {
			if w == core.NoEdge || settled[v] {
				continue
			}
			if next := best + w; next < t.Hops[v].Dist {
				t.Hops[v] = Hop{Prev: u, Dist: next}
			}
		}
	}

	return nil
}
