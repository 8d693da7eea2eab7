// File: connected.go
// Role: Reachability-set query.
package traverse

import "github.com/vexlio/graphmat/core"

// Connected returns every vertex reachable from v along real edges,
// including v itself, in breadth-first discovery order.
// ErrVertexNotFound if v is absent.
//
// Complexity: O(V²).
func Connected(g *core.Graph, v string) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Contains(v) {
		return nil, ErrVertexNotFound
	}

	reached := []string{v}
	visited := map[string]bool{v: true}
	for head := 0; head < len(reached); head++ {
		neighbors, err := g.Neighbors(reached[head])
		if err != nil {
			return nil, err
		}
		for _, nbr := range neighbors {
			if !visited[nbr] {
				visited[nbr] = true
				reached = append(reached, nbr)
			}
		}
	}

	return reached, nil
}
