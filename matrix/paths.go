// Package matrix: Floyd–Warshall distance and predecessor matrices plus
// shortest-path reconstruction.
//
// The triple loop runs in the fixed k → i → j order for deterministic
// accumulation. +Inf denotes "no path"; the diagonal is 0. Negative edge
// weights are accepted but negative cycles are not detected: distances
// and predecessors are silently wrong when one exists.

package matrix

import (
	"fmt"
	"math"

	"github.com/mkadlec/grafy/core"
)

// distanceInit allocates the distance matrix seeded with direct edges:
// diagonal 0, [source][target] = weight-or-1 (mirrored for undirected
// edges), +Inf elsewhere. Parallel edges overwrite in edge order — the
// last edge wins, they do not take the minimum.
func (gen *Generator) distanceInit() [][]float64 {
	n := len(gen.labels)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = math.Inf(1)
			}
		}
	}

	for _, e := range gen.edges {
		i, j := gen.index[e.Source], gen.index[e.Target]
		w := e.WeightOr(1)
		dist[i][j] = w
		if e.Kind == core.Undirected {
			dist[j][i] = w
		}
	}
	for i := range dist {
		dist[i][i] = 0
	}

	return dist
}

// Distances builds the all-pairs shortest-path matrix via Floyd–Warshall.
// Unreachable pairs stay +Inf.
// Complexity: O(V³).
func (gen *Generator) Distances() [][]float64 {
	dist := gen.distanceInit()
	n := len(dist)
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if cand := ik + dist[k][j]; cand < dist[i][j] {
					dist[i][j] = cand
				}
			}
		}
	}

	return dist
}

// Predecessors builds the predecessor matrix alongside a Floyd–Warshall
// run: [i][j] holds the index of the node immediately preceding j on the
// shortest known path from i, NoPredecessor when no path is known.
// Initialization: pred[i][i] = i; a direct edge sets pred[i][j] = i.
// Every relaxation through k copies pred[k][j].
// Complexity: O(V³).
func (gen *Generator) Predecessors() [][]int {
	dist := gen.distanceInit()
	n := len(dist)

	pred := make([][]int, n)
	for i := range pred {
		pred[i] = make([]int, n)
		for j := range pred[i] {
			pred[i][j] = NoPredecessor
		}
		pred[i][i] = i
	}
	for _, e := range gen.edges {
		i, j := gen.index[e.Source], gen.index[e.Target]
		pred[i][j] = i
		if e.Kind == core.Undirected {
			pred[j][i] = j
		}
	}
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			ik := dist[i][k]
			if math.IsInf(ik, 1) {
				continue
			}
			for j := 0; j < n; j++ {
				if cand := ik + dist[k][j]; cand < dist[i][j] {
					dist[i][j] = cand
					pred[i][j] = pred[k][j]
				}
			}
		}
	}

	return pred
}

// ShortestPath reconstructs the node-identifier path from one node to
// another by walking the predecessor matrix backwards from the target.
// Returns ErrNodeNotFound when either endpoint is absent, and (nil, nil)
// when the target is unreachable.
// Complexity: O(V³) (dominated by the predecessor build).
func (gen *Generator) ShortestPath(from, to string) ([]string, error) {
	src, ok := gen.index[from]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, from)
	}
	dst, ok := gen.index[to]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, to)
	}

	pred := gen.Predecessors()
	if pred[src][dst] == NoPredecessor {
		return nil, nil
	}

	// Walk back from the destination; the path length is bounded by V.
	rev := []string{gen.labels[dst]}
	for cur := dst; cur != src; {
		cur = pred[src][cur]
		rev = append(rev, gen.labels[cur])
	}

	out := make([]string, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}

	return out, nil
}
