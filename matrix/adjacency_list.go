// Package matrix: the human-readable adjacency-list view.

package matrix

import (
	"strings"

	"github.com/mkadlec/grafy/core"
)

// ListEntry pairs a node with its neighbor descriptors.
type ListEntry struct {
	ID        string
	Neighbors []string
}

// AdjacencyList builds one entry per node, in node index order, with a
// descriptor per incident edge (incident-edge order): the neighbor
// identifier, " (weight: N)" when the edge carries a weight, and " ->"
// when the edge is directed and leaves the node. Incident edges follow
// the model's registration policy, so directed incoming edges do not
// appear in the target node's entry.
// Complexity: O(V + E).
func (gen *Generator) AdjacencyList() []ListEntry {
	out := make([]ListEntry, 0, len(gen.labels))
	for _, id := range gen.labels {
		entry := ListEntry{ID: id}
		for _, e := range gen.g.IncidentEdges(id) {
			other, _ := e.Other(id)

			var b strings.Builder
			b.WriteString(other)
			if e.HasWeight {
				b.WriteString(" (weight: ")
				b.WriteString(core.FormatWeight(e.Weight))
				b.WriteString(")")
			}
			if e.Kind == core.Directed && e.Source == id {
				b.WriteString(" ->")
			}
			entry.Neighbors = append(entry.Neighbors, b.String())
		}
		out = append(out, entry)
	}

	return out
}
