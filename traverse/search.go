// File: search.go
// Role: Generic frontier-based path search (FIFO = BFS, LIFO = DFS).
package traverse

import (
	"fmt"

	"github.com/vexlio/graphmat/core"
)

// searcher encapsulates mutable state for one Search run.
type searcher struct {
	graph    *core.Graph
	opts     Options
	frontier []string
	parent   map[string]string // child label → parent label on the search tree
	visited  map[string]bool
}

// Search finds an unweighted path from one vertex to another, following
// only edges with a real weight. The frontier is FIFO by default
// (breadth-first); WithDepthFirst switches it to LIFO. Neighbors are
// expanded in matrix-row order (ascending destination id), and
// self-loops are never taken as a hop.
//
// Returns the vertex path including both endpoints, nil when to is
// unreachable from from, and a single-element path when from == to.
// ErrVertexNotFound if either endpoint is absent.
//
// Complexity: O(V²) — each visited vertex scans its full matrix row.
func Search(g *core.Graph, from, to string, opts ...Option) ([]string, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.Contains(from) || !g.Contains(to) {
		return nil, ErrVertexNotFound
	}

	// 2) Trivial path: a vertex reaches itself by the empty walk.
	if from == to {
		return []string{from}, nil
	}

	// 3) Run the frontier loop.
	s := &searcher{
		graph:    g,
		opts:     o,
		frontier: []string{from},
		parent:   make(map[string]string, g.Size()),
		visited:  map[string]bool{from: true},
	}

	return s.loop(from, to)
}

// loop consumes the frontier until it empties, the destination is
// reached, or the context is cancelled.
func (s *searcher) loop(from, to string) ([]string, error) {
	for len(s.frontier) > 0 {
		// Cancellation check, once per visited vertex.
		select {
		case <-s.opts.Ctx.Done():
			return nil, s.opts.Ctx.Err()
		default:
		}

		cur := s.pop()
		if err := s.opts.OnVisit(cur); err != nil {
			return nil, fmt.Errorf("traverse: OnVisit error at %q: %w", cur, err)
		}
		if cur == to {
			return s.trace(from, to), nil
		}
		if err := s.expand(cur); err != nil {
			return nil, err
		}
	}

	// Frontier exhausted: unreachable.
	return nil, nil
}

// pop removes the next frontier entry — front for FIFO, back for LIFO.
func (s *searcher) pop() string {
	if s.opts.DepthFirst {
		last := len(s.frontier) - 1
		cur := s.frontier[last]
		s.frontier = s.frontier[:last]
		return cur
	}
	cur := s.frontier[0]
	s.frontier = s.frontier[1:]
	return cur
}

// expand pushes cur's unvisited neighbors, recording cur as their parent.
func (s *searcher) expand(cur string) error {
	neighbors, err := s.graph.Neighbors(cur)
	if err != nil {
		return err
	}
	for _, nbr := range neighbors {
		// Self-loops are legal data but never a next hop.
		if nbr == cur {
			continue
		}
		if s.visited[nbr] {
			continue
		}
		s.visited[nbr] = true
		s.parent[nbr] = cur
		s.frontier = append(s.frontier, nbr)
	}

	return nil
}

// trace reconstructs from→to by walking parent links backward.
func (s *searcher) trace(from, to string) []string {
	path := []string{to}
	for cur := to; cur != from; {
		cur = s.parent[cur]
		path = append(path, cur)
	}
	// Reverse in place: parents were collected destination-first.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
