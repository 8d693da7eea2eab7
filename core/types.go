// File: types.go
// Role: Graph type, sentinel errors, and constructors.
//
// Determinism:
//   - Vertices keep insertion order; ids are positional.
//   - Map-based constructors sort source labels so two identical inputs
//     always produce the same id assignment.
package core

import (
	"errors"
	"sort"
)

// NoEdge is the matrix sentinel meaning "no directed edge between these ids".
// Weights are expected non-negative in normal use; the engine does not
// reject negative weights structurally, but shortest-path correctness
// requires them.
const NoEdge int64 = -1

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDuplicateVertex indicates a relabeling transform mapped two
	// distinct vertices onto the same label.
	ErrDuplicateVertex = errors.New("core: duplicate vertex label")

	// ErrMalformedKey indicates a compact key string that does not follow
	// the "<vertices>@<edges>" format.
	ErrMalformedKey = errors.New("core: malformed graph key")
)

// Edge is a directed, weighted edge between two vertex labels.
type Edge struct {
	From   string
	To     string
	Weight int64
}

// Arc is the destination half of a weighted adjacency-list entry,
// consumed by FromWeighted.
type Arc struct {
	To     string
	Weight int64
}

// Graph is a mutable, directed, integer-weighted graph over a dense
// adjacency matrix. The zero value is not usable; construct via New,
// FromNeighbors, FromWeighted, or ParseKey.
type Graph struct {
	// vertices holds labels in insertion order; position is the vertex id.
	vertices []string
	// index maps label → id; kept in sync with vertices on every mutation.
	index map[string]int
	// weight[i][j] is the weight of edge i→j, or NoEdge.
	weight [][]int64
	// gen increments on every structural mutation; derived caches key on it.
	gen uint64
}

// New returns a Graph containing the given vertex labels, deduplicated,
// in first-seen order, with no edges.
func New(labels ...string) *Graph {
	g := &Graph{index: make(map[string]int, len(labels))}
	g.AddAll(labels...)
	return g
}

// FromNeighbors builds a Graph from unweighted adjacency lists: every
// source maps to the destinations it points at, each edge carrying
// weight 1. Labels seen only as destinations are added too.
//
// Source labels are processed in sorted order so id assignment is
// reproducible for identical inputs.
func FromNeighbors(adj map[string][]string) *Graph {
	g := New()
	srcs := sortedKeys(adj)
	// First pass: register every label so edges never miss a vertex.
	for _, src := range srcs {
		g.AddAll(src)
		g.AddAll(adj[src]...)
	}
	// Second pass: wire the edges.
	for _, src := range srcs {
		for _, dst := range adj[src] {
			_, _ = g.SetWeight(src, dst, 1)
		}
	}
	return g
}

// FromWeighted builds a Graph from weighted adjacency lists, one Arc per
// directed edge. Labels seen only as destinations are added too; source
// labels are processed in sorted order for reproducible ids.
func FromWeighted(adj map[string][]Arc) *Graph {
	g := New()
	srcs := sortedKeys(adj)
	for _, src := range srcs {
		g.AddAll(src)
		for _, a := range adj[src] {
			g.AddAll(a.To)
		}
	}
	for _, src := range srcs {
		for _, a := range adj[src] {
			_, _ = g.SetWeight(src, a.To, a.Weight)
		}
	}
	return g
}

// sortedKeys returns the keys of m in lexicographic order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Generation reports the mutation generation of g. It increases on every
// structural change; holders of derived data (path tables, renders)
// compare generations to detect staleness.
func (g *Graph) Generation() uint64 { return g.gen }

// idOf resolves a label to its current id, or ErrVertexNotFound.
func (g *Graph) idOf(label string) (int, error) {
	id, ok := g.index[label]
	if !ok {
		return 0, ErrVertexNotFound
	}
	return id, nil
}
