// File: methods_edges.go
// Role: Edge reads, writes, and adjacency queries.
//
// Determinism:
//   - Neighbors and Edges scan matrix rows left to right, so results come
//     out in ascending destination id without extra sorting.
package core

// Weight returns the weight of the directed edge from→to, or NoEdge when
// the edge is absent. ErrVertexNotFound if either label is unknown.
//
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (int64, error) {
	i, err := g.idOf(from)
	if err != nil {
		return NoEdge, err
	}
	j, err := g.idOf(to)
	if err != nil {
		return NoEdge, err
	}

	return g.weight[i][j], nil
}

// SetWeight replaces the weight of the directed edge from→to and returns
// the previous value (NoEdge if the edge did not exist). Setting NoEdge
// is equivalent to RemoveEdge. ErrVertexNotFound if either label is
// unknown.
//
// Complexity: O(1).
func (g *Graph) SetWeight(from, to string, weight int64) (int64, error) {
	i, err := g.idOf(from)
	if err != nil {
		return NoEdge, err
	}
	j, err := g.idOf(to)
	if err != nil {
		return NoEdge, err
	}
	prev := g.weight[i][j]
	g.weight[i][j] = weight
	g.gen++

	return prev, nil
}

// RemoveEdge deletes the directed edge from→to by writing NoEdge, and
// returns the previous weight. ErrVertexNotFound if either label is
// unknown.
func (g *Graph) RemoveEdge(from, to string) (int64, error) {
	return g.SetWeight(from, to, NoEdge)
}

// Neighbors returns the labels v points at through a real edge, in
// ascending destination id order. A self-loop lists v itself.
//
// Complexity: O(V).
func (g *Graph) Neighbors(v string) ([]string, error) {
	i, err := g.idOf(v)
	if err != nil {
		return nil, err
	}
	var out []string
	for j, w := range g.weight[i] {
		if w != NoEdge {
			out = append(out, g.vertices[j])
		}
	}

	return out, nil
}

// CountEdgesBetween counts the real edges joining a and b in either
// direction: 0, 1, or 2. When a == b the self-loop cell is counted once.
func (g *Graph) CountEdgesBetween(a, b string) (int, error) {
	i, err := g.idOf(a)
	if err != nil {
		return 0, err
	}
	j, err := g.idOf(b)
	if err != nil {
		return 0, err
	}
	count := 0
	if g.weight[i][j] != NoEdge {
		count++
	}
	if i != j && g.weight[j][i] != NoEdge {
		count++
	}

	return count, nil
}

// Row returns a copy of v's outgoing weight row, indexed by destination
// id (the position in Vertices()). Cells without an edge hold NoEdge.
// Algorithms that relax whole rows use this instead of V separate
// Weight calls.
//
// Complexity: O(V).
func (g *Graph) Row(v string) ([]int64, error) {
	i, err := g.idOf(v)
	if err != nil {
		return nil, err
	}
	row := make([]int64, len(g.weight[i]))
	copy(row, g.weight[i])

	return row, nil
}

// Edges returns every directed edge with a real weight, in row-major
// matrix order (ascending source id, then ascending destination id).
//
// Complexity: O(V²).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for i, row := range g.weight {
		for j, w := range row {
			if w != NoEdge {
				out = append(out, Edge{From: g.vertices[i], To: g.vertices[j], Weight: w})
			}
		}
	}

	return out
}
