// File: methods_clone.go
// Role: Structure-preserving transforms — deep copy, induced subgraph,
// and vertex relabeling. Every method returns a fully independent Graph
// sharing no mutable state with the receiver.
package core

// Clone returns a deep, independent copy of g: fresh vertex slice, fresh
// index map, fresh matrix rows. The clone starts at generation zero.
//
// Complexity: O(V²).
func (g *Graph) Clone() *Graph {
	n := len(g.vertices)
	c := &Graph{
		vertices: make([]string, n),
		index:    make(map[string]int, n),
		weight:   make([][]int64, n),
	}
	copy(c.vertices, g.vertices)
	for label, id := range g.index {
		c.index[label] = id
	}
	for i, row := range g.weight {
		c.weight[i] = make([]int64, n)
		copy(c.weight[i], row)
	}

	return c
}

// Subgraph returns a new Graph induced by the given labels: exactly the
// matched vertices, preserving their relative order in g, with edges
// restricted to pairs inside the subset. Labels not present in g are
// ignored. Uses the same offset-compaction technique as RemoveAll, just
// inverted — survivors are the chosen subset.
//
// Complexity: O(V²).
func (g *Graph) Subgraph(labels ...string) *Graph {
	// 1) Mark chosen ids.
	chosen := make(map[int]struct{}, len(labels))
	for _, label := range labels {
		if id, ok := g.index[label]; ok {
			chosen[id] = struct{}{}
		}
	}

	// 2) Compact: dropped ids accumulate into the running offset, kept
	//    ids land at [oldIndex − offsetSoFar].
	n := len(g.vertices)
	sub := &Graph{
		vertices: make([]string, 0, len(chosen)),
		index:    make(map[string]int, len(chosen)),
	}
	offset := make([]int, n)
	dropped := 0
	for i, label := range g.vertices {
		if _, keep := chosen[i]; !keep {
			dropped++
		} else {
			sub.index[label] = len(sub.vertices)
			sub.vertices = append(sub.vertices, label)
		}
		offset[i] = dropped
	}

	// 3) Copy the surviving cells.
	sub.weight = newMatrix(len(sub.vertices))
	for i := 0; i < n; i++ {
		if _, keep := chosen[i]; !keep {
			continue
		}
		for j := 0; j < n; j++ {
			if _, keep := chosen[j]; !keep {
				continue
			}
			sub.weight[i-offset[i]][j-offset[j]] = g.weight[i][j]
		}
	}

	return sub
}

// MapVertices returns a relabeled copy of g: transform is applied to
// every vertex label, ids and edges carry over unchanged. If transform
// maps two distinct labels to the same output the receiver is left
// untouched and ErrDuplicateVertex is returned — colliding labels would
// silently merge two matrix rows under one index entry otherwise.
//
// Complexity: O(V²).
func (g *Graph) MapVertices(transform func(string) string) (*Graph, error) {
	mapped := &Graph{
		vertices: make([]string, len(g.vertices)),
		index:    make(map[string]int, len(g.vertices)),
	}
	for i, label := range g.vertices {
		next := transform(label)
		if _, clash := mapped.index[next]; clash {
			return nil, ErrDuplicateVertex
		}
		mapped.vertices[i] = next
		mapped.index[next] = i
	}
	mapped.weight = make([][]int64, len(g.weight))
	for i, row := range g.weight {
		mapped.weight[i] = make([]int64, len(row))
		copy(mapped.weight[i], row)
	}

	return mapped, nil
}
