// File: conversions.go
// Role: Bridges from the integer weight matrix to numeric-analytics
// representations.
package core

import "gonum.org/v1/gonum/mat"

// Dense exports the weight matrix as a gonum *mat.Dense for spectral and
// statistical consumers. Absent edges (NoEdge) become 0; real weights are
// converted to float64 as-is, so a genuine zero-weight edge and a missing
// edge are indistinguishable in the export. Returns nil for the empty
// graph (gonum rejects zero-sized matrices).
//
// Complexity: O(V²).
func (g *Graph) Dense() *mat.Dense {
	n := len(g.vertices)
	if n == 0 {
		return nil
	}
	d := mat.NewDense(n, n, nil)
	for i, row := range g.weight {
		for j, w := range row {
			if w != NoEdge {
				d.Set(i, j, float64(w))
			}
		}
	}

	return d
}
