// File: dfs.go
// Role: Recursive depth-first variant of Search.
package traverse

import "github.com/vexlio/graphmat/core"

// DepthFirst finds a path from one vertex to another by pure recursion
// instead of an explicit frontier. Same contract as Search with
// WithDepthFirst: path including both endpoints, nil when unreachable,
// [from] when from == to, ErrVertexNotFound on absent endpoints.
//
// Recursion depth is bounded by the vertex count; prefer Search with
// WithDepthFirst on very large graphs.
func DepthFirst(g *core.Graph, from, to string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Contains(from) || !g.Contains(to) {
		return nil, ErrVertexNotFound
	}

	visited := make(map[string]bool, g.Size())

	return descend(g, from, to, visited), nil
}

// descend explores from cur toward to, returning the cur-prefixed path
// on success or nil when no unvisited route exists below cur.
func descend(g *core.Graph, cur, to string, visited map[string]bool) []string {
	visited[cur] = true
	if cur == to {
		return []string{cur}
	}

	// Contains was checked for cur; Neighbors cannot fail here.
	neighbors, _ := g.Neighbors(cur)
	for _, nbr := range neighbors {
		if nbr == cur || visited[nbr] {
			continue
		}
		if tail := descend(g, nbr, to, visited); tail != nil {
			return append([]string{cur}, tail...)
		}
	}

	return nil
}
