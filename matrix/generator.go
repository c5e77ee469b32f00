// Package matrix: the Generator, the adjacency family of builders, and
// the shared dense helpers.

package matrix

import (
	"fmt"

	"github.com/mkadlec/grafy/core"
)

// Generator builds matrix representations of one graph.
//
// Node labels, the label→row index, and the edge order are snapshotted at
// construction; mutations of the graph after NewGenerator are not
// reflected. Every builder returns a freshly allocated matrix.
type Generator struct {
	g      *core.Graph
	labels []string
	index  map[string]int
	edges  []core.Edge
}

// NewGenerator snapshots g's node and edge order and binds a Generator
// to it.
// Complexity: O(V + E).
func NewGenerator(g *core.Graph) *Generator {
	labels := g.NodeIDs()
	index := make(map[string]int, len(labels))
	for i, id := range labels {
		index[id] = i
	}

	return &Generator{g: g, labels: labels, index: index, edges: g.Edges()}
}

// NodeLabels returns the row/column labels, one per node, in index order.
func (gen *Generator) NodeLabels() []string {
	out := make([]string, len(gen.labels))
	copy(out, gen.labels)

	return out
}

// EdgeLabels returns one label per edge in edge order: the explicit label
// when present, "source-target" otherwise.
func (gen *Generator) EdgeLabels() []string {
	out := make([]string, 0, len(gen.edges))
	for _, e := range gen.edges {
		out = append(out, e.DefaultLabel())
	}

	return out
}

// zeros allocates an r×c matrix of zeros.
func zeros(r, c int) [][]float64 {
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
	}

	return out
}

// identity allocates the n×n identity matrix.
func identity(n int) [][]float64 {
	out := zeros(n, n)
	for i := range out {
		out[i][i] = 1
	}

	return out
}

// multiply returns the naive O(n³) product a·b of two square matrices of
// equal order.
func multiply(a, b [][]float64) [][]float64 {
	n := len(a)
	out := zeros(n, n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			aik := a[i][k]
			if aik == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				out[i][j] += aik * b[k][j]
			}
		}
	}

	return out
}

// Adjacency builds the n×n adjacency matrix: each edge adds its weight
// (or 1 when unweighted) to [source][target]; undirected edges mirror the
// same value to [target][source]. Multi-edges between the same ordered
// pair accumulate by summation. An undirected self-loop contributes
// twice to its diagonal cell, once per mirrored addition.
// Complexity: O(V² + E).
func (gen *Generator) Adjacency() [][]float64 {
	n := len(gen.labels)
	out := zeros(n, n)
	for _, e := range gen.edges {
		i, j := gen.index[e.Source], gen.index[e.Target]
		v := e.WeightOr(1)
		out[i][j] += v
		if e.Kind == core.Undirected {
			out[j][i] += v
		}
	}

	return out
}

// SignMatrix builds the elementwise sign of the adjacency matrix, entries
// in {−1, 0, 1}.
// Complexity: O(V² + E).
func (gen *Generator) SignMatrix() [][]float64 {
	out := gen.Adjacency()
	for i := range out {
		for j, v := range out[i] {
			switch {
			case v > 0:
				out[i][j] = 1
			case v < 0:
				out[i][j] = -1
			}
		}
	}

	return out
}

// Power raises the adjacency matrix to the given non-negative power:
// 0 yields the identity, 1 the adjacency matrix itself, higher powers
// apply repeated naive multiplication. Entry [i][j] of the k-th power is
// the total weighted count of length-k walks from i to j.
// Returns ErrNegativePower for power < 0.
// Complexity: O(power·V³).
func (gen *Generator) Power(power int) ([][]float64, error) {
	if power < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativePower, power)
	}

	n := len(gen.labels)
	if power == 0 {
		return identity(n), nil
	}

	adj := gen.Adjacency()
	out := adj
	for p := 1; p < power; p++ {
		out = multiply(out, adj)
	}

	return out, nil
}
