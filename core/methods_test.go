// Package core_test exercises the adjacency-matrix Graph: vertex and
// edge lifecycle, adjacency queries, and the structure-preserving
// transforms (Clone, Subgraph, MapVertices).
package core_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vexlio/graphmat/core"
)

// buildTriangle constructs the directed triangle A→B(5), B→C(2), C→A(9).
func buildTriangle() *core.Graph {
	g := core.New("A", "B", "C")
	_, _ = g.SetWeight("A", "B", 5)
	_, _ = g.SetWeight("B", "C", 2)
	_, _ = g.SetWeight("C", "A", 9)

	return g
}

// ------------------------------------------------------------------------
// 1. Constructors
// ------------------------------------------------------------------------

func TestNew_DeduplicatesAndKeepsOrder(t *testing.T) {
	g := core.New("A", "B", "A", "C", "B")
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
	assert.Equal(t, 3, g.Size())
}

func TestFromNeighbors_AddsDestinationsAndUnitWeights(t *testing.T) {
	g := core.FromNeighbors(map[string][]string{
		"A": {"B", "C"},
		"B": {"C"},
	})
	// C appears only as a destination but must still be a vertex.
	assert.True(t, g.Contains("C"))

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(1), w)

	// No reverse edge was implied.
	w, err = g.Weight("B", "A")
	require.NoError(t, err)
	assert.Equal(t, core.NoEdge, w)
}

func TestFromWeighted_CarriesWeights(t *testing.T) {
	g := core.FromWeighted(map[string][]core.Arc{
		"A": {{To: "B", Weight: 5}},
		"B": {{To: "C", Weight: 2}},
	})
	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(5), w)
	w, err = g.Weight("B", "C")
	require.NoError(t, err)
	assert.Equal(t, int64(2), w)
}

// ------------------------------------------------------------------------
// 2. Edge reads and writes
// ------------------------------------------------------------------------

func TestWeight_UnknownVertex(t *testing.T) {
	g := buildTriangle()
	_, err := g.Weight("A", "X")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.Weight("X", "A")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestSetWeight_ReturnsPrevious(t *testing.T) {
	g := buildTriangle()

	prev, err := g.SetWeight("A", "B", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), prev)

	// A fresh edge reports NoEdge as its previous weight.
	prev, err = g.SetWeight("A", "C", 1)
	require.NoError(t, err)
	assert.Equal(t, core.NoEdge, prev)
}

func TestRemoveEdge_EquivalentToNoEdgeWrite(t *testing.T) {
	g := buildTriangle()
	prev, err := g.RemoveEdge("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(5), prev)

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, core.NoEdge, w)
}

func TestMutation_BumpsGeneration(t *testing.T) {
	g := buildTriangle()
	before := g.Generation()
	_, _ = g.SetWeight("A", "B", 6)
	assert.Greater(t, g.Generation(), before)

	before = g.Generation()
	g.AddAll("D")
	assert.Greater(t, g.Generation(), before)

	before = g.Generation()
	g.RemoveAll("D")
	assert.Greater(t, g.Generation(), before)
}

// ------------------------------------------------------------------------
// 3. Adjacency queries
// ------------------------------------------------------------------------

func TestNeighbors_RowOrderAndSelfLoop(t *testing.T) {
	g := core.New("A", "B", "C")
	_, _ = g.SetWeight("A", "C", 1)
	_, _ = g.SetWeight("A", "B", 1)
	_, _ = g.SetWeight("A", "A", 1) // self-loop is legal data

	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	// Row scan yields ascending id order: A, B, C — not write order.
	assert.Equal(t, []string{"A", "B", "C"}, nbrs)

	_, err = g.Neighbors("X")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestCountEdgesBetween(t *testing.T) {
	g := buildTriangle()
	_, _ = g.SetWeight("B", "A", 3) // now A and B are joined both ways

	n, err := g.CountEdgesBetween("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = g.CountEdgesBetween("A", "C")
	require.NoError(t, err)
	assert.Equal(t, 1, n) // only C→A exists

	// A self-loop counts once, not twice.
	_, _ = g.SetWeight("C", "C", 1)
	n, err = g.CountEdgesBetween("C", "C")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestEdges_RowMajorOrder(t *testing.T) {
	g := buildTriangle()
	assert.Equal(t, []core.Edge{
		{From: "A", To: "B", Weight: 5},
		{From: "B", To: "C", Weight: 2},
		{From: "C", To: "A", Weight: 9},
	}, g.Edges())
}

// ------------------------------------------------------------------------
// 4. Vertex lifecycle
// ------------------------------------------------------------------------

func TestAddAll_RejectsPresentAndPreservesWeights(t *testing.T) {
	g := buildTriangle()
	rejected := g.AddAll("B", "D", "E")
	assert.Equal(t, []string{"B"}, rejected)
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.Vertices())

	// Old weights survived the matrix regrow.
	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(5), w)

	// New rows/columns start as NoEdge.
	w, err = g.Weight("D", "E")
	require.NoError(t, err)
	assert.Equal(t, core.NoEdge, w)
}

func TestRemoveAll_CompactsAndReportsMissing(t *testing.T) {
	g := core.New("A", "B", "C", "D")
	_, _ = g.SetWeight("A", "D", 4)
	_, _ = g.SetWeight("B", "C", 1)

	missing := g.RemoveAll("B", "X")
	assert.Equal(t, []string{"X"}, missing)
	assert.Equal(t, []string{"A", "C", "D"}, g.Vertices())

	// The surviving edge A→D moved with its compacted ids.
	w, err := g.Weight("A", "D")
	require.NoError(t, err)
	assert.Equal(t, int64(4), w)

	// Edges incident to B are gone entirely.
	assert.Equal(t, []core.Edge{{From: "A", To: "D", Weight: 4}}, g.Edges())
}

func TestAddRemoveRoundTrip_Isomorphic(t *testing.T) {
	g := buildTriangle()
	wantEdges := g.Edges()
	wantVerts := g.Vertices()

	g.AddAll("X", "Y")
	_, _ = g.SetWeight("X", "Y", 11)
	g.RemoveAll("X", "Y")

	// Same vertex set, same edges — ids may have shifted, labels did not.
	assert.ElementsMatch(t, wantVerts, g.Vertices())
	assert.ElementsMatch(t, wantEdges, g.Edges())
}

// ------------------------------------------------------------------------
// 5. Clone / Subgraph / MapVertices
// ------------------------------------------------------------------------

func TestClone_Independent(t *testing.T) {
	g := buildTriangle()
	c := g.Clone()

	// Mutating the clone leaves the original alone, and vice versa.
	_, _ = c.SetWeight("A", "B", 99)
	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(5), w)

	c.RemoveAll("C")
	assert.True(t, g.Contains("C"))
}

func TestSubgraph_PreservesOrderAndRestrictsEdges(t *testing.T) {
	g := core.New("A", "B", "C", "D")
	_, _ = g.SetWeight("A", "C", 1)
	_, _ = g.SetWeight("A", "B", 2)
	_, _ = g.SetWeight("C", "D", 3)

	// Argument order does not matter; original relative order does.
	sub := g.Subgraph("C", "A")
	assert.Equal(t, []string{"A", "C"}, sub.Vertices())
	assert.Equal(t, []core.Edge{{From: "A", To: "C", Weight: 1}}, sub.Edges())

	// Unknown labels are ignored.
	assert.Equal(t, 2, g.Subgraph("A", "C", "Z").Size())

	// Fully independent of the source.
	_, _ = sub.SetWeight("A", "C", 42)
	w, err := g.Weight("A", "C")
	require.NoError(t, err)
	assert.Equal(t, int64(1), w)
}

func TestMapVertices_RelabelsStructure(t *testing.T) {
	g := buildTriangle()
	mapped, err := g.MapVertices(strings.ToLower)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, mapped.Vertices())
	w, err := mapped.Weight("a", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(5), w)

	// The receiver is untouched.
	assert.Equal(t, []string{"A", "B", "C"}, g.Vertices())
}

func TestMapVertices_RejectsCollisions(t *testing.T) {
	g := buildTriangle()
	_, err := g.MapVertices(func(string) string { return "same" })
	if !errors.Is(err, core.ErrDuplicateVertex) {
		t.Fatalf("expected ErrDuplicateVertex, got %v", err)
	}
}
