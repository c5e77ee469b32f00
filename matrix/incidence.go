// Package matrix: the node-to-edge incidence matrix.

package matrix

import "github.com/mkadlec/grafy/core"

// IncidenceMatrix bundles the n×m incidence data with its row (node) and
// column (edge) labels.
type IncidenceMatrix struct {
	Data       [][]float64
	NodeLabels []string
	EdgeLabels []string
}

// Incidence builds the incidence matrix: one row per node, one column per
// edge. A directed edge sets the source row to +1 and the target row to
// −1 (a directed self-loop therefore reads −1, the later assignment
// winning); an undirected edge sets both endpoint rows to +1.
// Complexity: O(V·E).
func (gen *Generator) Incidence() IncidenceMatrix {
	n, m := len(gen.labels), len(gen.edges)
	data := zeros(n, m)
	for col, e := range gen.edges {
		i, j := gen.index[e.Source], gen.index[e.Target]
		if e.Kind == core.Directed {
			data[i][col] = 1
			data[j][col] = -1
		} else {
			data[i][col] = 1
			data[j][col] = 1
		}
	}

	return IncidenceMatrix{
		Data:       data,
		NodeLabels: gen.NodeLabels(),
		EdgeLabels: gen.EdgeLabels(),
	}
}
