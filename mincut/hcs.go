// File: hcs.go
// Role: Recursive decomposition into highly connected subgraphs.
package mincut

import "github.com/vexlio/graphmat/core"

// HighlyConnectedSubgraphs recursively partitions g into clusters. Each
// level computes a best-effort minimum cut via Karger; when the cut
// weight reaches threshold × current vertex count — the graph is highly
// connected relative to its size — or the cut is degenerate (single
// vertex, nothing to split), the current graph is itself a cluster and
// recursion stops. Otherwise the two cut-induced subgraphs are clustered
// independently and the results concatenated.
//
// Returns the flat collection of terminal clusters as independent Graph
// instances sharing no state with g. On cancellation the clusters
// gathered so far are returned with the context error.
//
// ErrGraphNil, ErrBadAttempts, and ErrBadThreshold on invalid inputs.
func HighlyConnectedSubgraphs(g *core.Graph, threshold float64, attempts int, opts ...Option) ([]*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if attempts < 1 {
		return nil, ErrBadAttempts
	}
	if threshold <= 0 {
		return nil, ErrBadThreshold
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return decompose(g.Clone(), threshold, attempts, &o)
}

// decompose owns its graph argument (always a private clone or subgraph)
// and either returns it as a terminal cluster or recurses on its two
// cut halves.
func decompose(g *core.Graph, threshold float64, attempts int, o *Options) ([]*core.Graph, error) {
	cut, err := Karger(g, attempts, WithContext(o.Ctx), WithRand(o.Rand), WithLogger(o.Logger))
	if err != nil {
		// Cancelled mid-search: treat the current graph as terminal and
		// surface the error so callers know the decomposition is partial.
		return []*core.Graph{g}, err
	}

	// Highly connected relative to size, or nothing left to split.
	if cut.Degenerate() || float64(cut.Weight) >= threshold*float64(g.Size()) {
		o.Logger.Debugf("cluster of %d vertices accepted (cut weight %d)", g.Size(), cut.Weight)
		return []*core.Graph{g}, nil
	}

	first, err := decompose(g.Subgraph(cut.First...), threshold, attempts, o)
	if err != nil {
		return first, err
	}
	second, err := decompose(g.Subgraph(cut.Second...), threshold, attempts, o)

	return append(first, second...), err
}
