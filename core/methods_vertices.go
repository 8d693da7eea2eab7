// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Both AddAll and RemoveAll rebuild the whole matrix: a deliberate
// simplicity/performance trade that keeps single-edge operations O(1).
package core

// Size returns the vertex count.
func (g *Graph) Size() int { return len(g.vertices) }

// Contains reports whether label is a vertex of g.
func (g *Graph) Contains(label string) bool {
	_, ok := g.index[label]
	return ok
}

// Vertices returns the labels in id order (insertion order, compacted
// after removals). The slice is a copy; mutating it does not affect g.
func (g *Graph) Vertices() []string {
	out := make([]string, len(g.vertices))
	copy(out, g.vertices)
	return out
}

// AddAll inserts every label not already present, in argument order, and
// returns the subset that was already present (rejected). When at least
// one vertex is inserted the matrix is reallocated at the new size, the
// existing weights copied into the upper-left block, and all new
// rows/columns left as NoEdge.
//
// Complexity: O(V'²) when growing, O(len(labels)) otherwise.
func (g *Graph) AddAll(labels ...string) (rejected []string) {
	// 1) Split the input into fresh labels and rejects, deduplicating
	//    repeats inside the argument list itself.
	fresh := make([]string, 0, len(labels))
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}
		if g.Contains(label) {
			rejected = append(rejected, label)
			continue
		}
		fresh = append(fresh, label)
	}
	if len(fresh) == 0 {
		return rejected
	}

	// 2) Register the new labels; ids continue after the current tail.
	for _, label := range fresh {
		g.index[label] = len(g.vertices)
		g.vertices = append(g.vertices, label)
	}

	// 3) Regrow the matrix: new V×V block, old weights in the upper-left,
	//    everything else NoEdge.
	n := len(g.vertices)
	old := g.weight
	g.weight = newMatrix(n)
	for i := range old {
		copy(g.weight[i], old[i])
	}

	g.gen++

	return rejected
}

// RemoveAll deletes every matched label along with all of its incident
// edges and returns the subset that was not found. Surviving rows and
// columns are compacted into a fresh matrix: while scanning, an offset
// counter increments for each removed id, and each kept cell lands at
// [oldIndex − offsetSoFar]. The label index is rebuilt from scratch.
//
// Complexity: O(V²).
func (g *Graph) RemoveAll(labels ...string) (missing []string) {
	// 1) Mark ids scheduled for removal; collect labels we do not hold.
	doomed := make(map[int]struct{}, len(labels))
	for _, label := range labels {
		id, ok := g.index[label]
		if !ok {
			missing = append(missing, label)
			continue
		}
		doomed[id] = struct{}{}
	}
	if len(doomed) == 0 {
		return missing
	}

	// 2) Compact the vertex sequence, tracking each survivor's new id via
	//    the running offset of removed predecessors.
	n := len(g.vertices)
	kept := make([]string, 0, n-len(doomed))
	offset := make([]int, n) // offset[i] = removed ids at or before i
	removedSoFar := 0
	for i, label := range g.vertices {
		if _, gone := doomed[i]; gone {
			removedSoFar++
		} else {
			kept = append(kept, label)
		}
		offset[i] = removedSoFar
	}

	// 3) Rebuild the matrix from surviving cells only.
	m := len(kept)
	next := newMatrix(m)
	for i := 0; i < n; i++ {
		if _, gone := doomed[i]; gone {
			continue
		}
		for j := 0; j < n; j++ {
			if _, gone := doomed[j]; gone {
				continue
			}
			next[i-offset[i]][j-offset[j]] = g.weight[i][j]
		}
	}

	// 4) Swap in the compacted state and rebuild the label index.
	g.vertices = kept
	g.weight = next
	g.index = make(map[string]int, m)
	for i, label := range kept {
		g.index[label] = i
	}

	g.gen++

	return missing
}

// newMatrix allocates an n×n matrix filled with NoEdge.
func newMatrix(n int) [][]int64 {
	m := make([][]int64, n)
	for i := range m {
		row := make([]int64, n)
		for j := range row {
			row[j] = NoEdge
		}
		m[i] = row
	}
	return m
}
