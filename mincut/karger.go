// File: karger.go
// Role: Single-trial randomized contraction and the repeated-trial
// minimum-cut search.
package mincut

import (
	"math/rand"

	"github.com/vexlio/graphmat/core"
)

// contractionEdge is one undirected contractible pair of vertex ids.
type contractionEdge struct {
	a, b int
}

// MinCut runs one randomized trial of Karger's contraction algorithm:
// build the deduplicated undirected edge list, shuffle it uniformly with
// rng, then pop edges and merge endpoint clusters until exactly two
// clusters remain or the edges run out.
//
// Outcomes:
//
//   - two clusters left: Weight counts every directed edge crossing the
//     partition in either direction;
//   - one cluster (full collapse, or ≤1 vertex to start): a degenerate
//     Cut (DegenerateWeight, empty partitions);
//   - more than two clusters (edges exhausted on a disconnected graph):
//     a best-effort Cut of Weight 0 splitting the surviving cluster list
//     roughly in half.
//
// A single trial finds *a* cut; repeat via Karger to approach the
// minimum. Success probability per trial is Ω(1/V²).
func MinCut(g *core.Graph, rng *rand.Rand) (Cut, error) {
	if g == nil {
		return Cut{}, ErrGraphNil
	}
	if rng == nil {
		return Cut{}, ErrRandNil
	}
	labels := g.Vertices()
	n := len(labels)
	if n <= 1 {
		return Cut{Weight: DegenerateWeight}, nil
	}

	// 1) Deduplicate directions: one contractible edge per unordered pair
	//    joined either way. Self-loops are never contractible.
	index := make(map[string]int, n)
	for i, label := range labels {
		index[label] = i
	}
	pairSeen := make(map[[2]int]struct{}, n)
	var edges []contractionEdge
	for _, e := range g.Edges() {
		a, b := index[e.From], index[e.To]
		if a == b {
			continue
		}
		if a > b {
			a, b = b, a
		}
		key := [2]int{a, b}
		if _, dup := pairSeen[key]; dup {
			continue
		}
		pairSeen[key] = struct{}{}
		edges = append(edges, contractionEdge{a: a, b: b})
	}

	// 2) Uniform shuffle: popping in order is then a uniform random
	//    contraction sequence.
	rng.Shuffle(len(edges), func(i, j int) {
		edges[i], edges[j] = edges[j], edges[i]
	})

	// 3) Contract. cluster[i] is the representative id of i's cluster;
	//    merging redirects the numerically smaller representative into
	//    the larger one.
	cluster := make([]int, n)
	for i := range cluster {
		cluster[i] = i
	}
	clusters := n
	for _, e := range edges {
		if clusters == 2 {
			break
		}
		ra, rb := cluster[e.a], cluster[e.b]
		if ra == rb {
			continue
		}
		if ra > rb {
			ra, rb = rb, ra
		}
		for i := range cluster {
			if cluster[i] == ra {
				cluster[i] = rb
			}
		}
		clusters--
	}

	// 4) Classify the surviving clusters.
	switch {
	case clusters == 1:
		// Fully collapsed with edges to spare: nothing left to cut.
		return Cut{Weight: DegenerateWeight}, nil
	case clusters > 2:
		// Edges ran out first: the graph is disconnected. Splitting the
		// surviving cluster list in half crosses no contraction edge, so
		// this is a free (weight 0) best-effort cut, not a true minimum.
		return splitSurvivors(labels, cluster), nil
	}

	// Exactly two clusters: count directed crossings both ways.
	cut := Cut{}
	repFirst := cluster[0]
	for i, label := range labels {
		if cluster[i] == repFirst {
			cut.First = append(cut.First, label)
		} else {
			cut.Second = append(cut.Second, label)
		}
	}
	for _, e := range g.Edges() {
		if cluster[index[e.From]] != cluster[index[e.To]] {
			cut.Weight++
		}
	}

	return cut, nil
}

// splitSurvivors distributes the surviving clusters of a disconnected
// graph into two halves: clusters are listed by representative id and
// the list is split down the middle, members following their cluster.
func splitSurvivors(labels []string, cluster []int) Cut {
	reps := make([]int, 0, len(labels))
	seen := make(map[int]struct{}, len(labels))
	for _, rep := range cluster {
		if _, dup := seen[rep]; !dup {
			seen[rep] = struct{}{}
			reps = append(reps, rep)
		}
	}
	firstHalf := make(map[int]struct{}, len(reps)/2+1)
	for _, rep := range reps[:(len(reps)+1)/2] {
		firstHalf[rep] = struct{}{}
	}

	cut := Cut{}
	for i, label := range labels {
		if _, inFirst := firstHalf[cluster[i]]; inFirst {
			cut.First = append(cut.First, label)
		} else {
			cut.Second = append(cut.Second, label)
		}
	}

	return cut
}

// Karger repeats MinCut the given number of attempts and returns the
// best result under the Cut ordering. The context is checked once per
// attempt; on cancellation the best cut found so far is returned
// together with the context error, so partial work is never discarded.
//
// The probability of missing the true minimum cut after k attempts on a
// V-vertex graph is at most (1 − 2/V²)^k; attempts on the order of
// V² ln V make it vanishingly small.
func Karger(g *core.Graph, attempts int, opts ...Option) (Cut, error) {
	if g == nil {
		return Cut{}, ErrGraphNil
	}
	if attempts < 1 {
		return Cut{}, ErrBadAttempts
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	best := Cut{Weight: DegenerateWeight}
	for attempt := 0; attempt < attempts; attempt++ {
		select {
		case <-o.Ctx.Done():
			o.Logger.Debugf("min-cut search cancelled after %d attempts, best weight %d", attempt, best.Weight)
			return best, o.Ctx.Err()
		default:
		}

		trial, err := MinCut(g, o.Rand)
		if err != nil {
			return best, err
		}
		if attempt == 0 || trial.Better(best) {
			best = trial
			o.Logger.Debugf("attempt %d/%d improved cut weight to %d", attempt+1, attempts, best.Weight)
		}
	}

	return best, nil
}
