// Package graphmat is an in-memory, weighted, directed graph engine built
// on a dense adjacency matrix — O(1) edge lookup and mutation traded
// against O(V²) memory and O(V²) structural rebuilds.
//
// 🚀 What is graphmat?
//
//	A small, focused engine that brings together:
//		• Core primitives: a label-addressed vertex set over a V×V weight matrix
//		• Traversals: BFS, DFS (iterative and recursive), reachability
//		• Shortest paths: Dijkstra with per-source cached tables
//		• Clustering: Karger's randomized minimum cut and recursive
//		  decomposition into highly connected subgraphs
//		• A compact textual key format for round-tripping whole graphs
//
// ✨ Design points
//
//   - Dense by intent — graphs up to low tens of thousands of vertices,
//     where constant-time edge access matters more than matrix memory
//   - Deterministic randomness — every randomized routine takes an
//     explicit *rand.Rand, so results reproduce under a fixed seed
//   - Single-threaded by contract — no internal locking; callers needing
//     concurrent access serialize externally
//
// Package map:
//
//	core/     — Graph type: matrix, vertex index, mutation generation, key codec
//	pqueue/   — min-heap priority queue with handle-based decrease-key
//	traverse/ — BFS/DFS search and connected-set queries
//	shortest/ — Dijkstra tables and the caching PathFinder
//	mincut/   — Karger min-cut and highly-connected-subgraph clustering
//
// Quick ASCII example:
//
//	    A──5──▶B
//	            │
//	            2
//	            ▼
//	            C
//
//	g := core.New("A", "B", "C")
//	g.SetWeight("A", "B", 5)
//	g.SetWeight("B", "C", 2)
//	pf, _ := shortest.NewPathFinder(g)
//	path, _ := pf.Path("A", "C") // [A B C], distance 7
package graphmat
