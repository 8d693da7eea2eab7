// Package core provides the central Graph type of graphmat: an ordered,
// label-addressed vertex set over a dense V×V adjacency matrix of
// directed, integer-weighted edges.
//
// Representation:
//
//   - Vertices are string labels. The position of a label in the internal
//     ordered sequence is its id; ids are private currency and shift when
//     vertices are removed.
//   - The matrix cell [i][j] holds the weight of the directed edge i→j,
//     or NoEdge (-1) when absent. Edge reads and single-edge writes are
//     O(1); vertex insertion and removal rebuild the matrix in O(V²).
//
// Mutation generation:
//
//	Every structural mutation (edge write, vertex add/remove) increments
//	the graph's generation counter. Derived caches — such as the
//	shortest-path tables kept by shortest.PathFinder — compare generations
//	and drop everything they hold on any change, so a cached result is
//	never observed against weights that have since moved.
//
// Concurrency:
//
//	Graph performs no internal locking. Interleaving a mutation with any
//	other access on the same instance is a data race; callers requiring
//	concurrent use must serialize externally.
//
// Errors:
//
//	ErrVertexNotFound   — an operation referenced an absent vertex.
//	ErrDuplicateVertex  — MapVertices produced colliding labels.
//	ErrMalformedKey     — ParseKey received a malformed compact key.
package core
