// Package neighborhood: the Calculator and its query methods.

package neighborhood

import "github.com/mkadlec/grafy/core"

// Calculator answers neighborhood and degree queries for one graph.
// It holds no state beyond the graph reference; every call recomputes
// from the model, so a Calculator may be reused across queries freely.
type Calculator struct {
	g *core.Graph
}

// NewCalculator binds a Calculator to g.
func NewCalculator(g *core.Graph) *Calculator {
	return &Calculator{g: g}
}

// Successors returns U+(id): targets of directed edges leaving id.
func (c *Calculator) Successors(id string) []core.Node {
	return c.g.Successors(id)
}

// Predecessors returns U-(id): sources of directed edges entering id.
func (c *Calculator) Predecessors(id string) []core.Node {
	return c.g.Predecessors(id)
}

// Neighbors returns U(id): the deduplicated union of predecessors and
// successors, predecessors first, then successors not already present.
func (c *Calculator) Neighbors(id string) []core.Node {
	preds := c.g.Predecessors(id)
	succs := c.g.Successors(id)

	out := make([]core.Node, 0, len(preds)+len(succs))
	seen := make(map[string]struct{}, len(preds)+len(succs))
	for _, n := range preds {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, n)
	}
	for _, n := range succs {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		out = append(out, n)
	}

	return out
}

// OutgoingEdges returns H+(id): directed edges leaving id.
func (c *Calculator) OutgoingEdges(id string) []core.Edge {
	return c.g.OutgoingEdges(id)
}

// IncomingEdges returns H-(id): directed edges entering id.
func (c *Calculator) IncomingEdges(id string) []core.Edge {
	return c.g.IncomingEdges(id)
}

// IncidentEdges returns H(id): all edges registered at id.
func (c *Calculator) IncidentEdges(id string) []core.Edge {
	return c.g.IncidentEdges(id)
}

// OutDegree returns d+(id), the number of outgoing directed edges.
func (c *Calculator) OutDegree(id string) int {
	return len(c.g.OutgoingEdges(id))
}

// InDegree returns d-(id), the number of incoming directed edges.
func (c *Calculator) InDegree(id string) int {
	return len(c.g.IncomingEdges(id))
}

// Degree returns d(id), the raw incident-edge count.
func (c *Calculator) Degree(id string) int {
	return len(c.g.IncidentEdges(id))
}

// Degrees bundles the degree triple of one node.
type Degrees struct {
	ID    string
	Out   int
	In    int
	Total int
}

// AllDegrees returns the degree triple for every node, in node iteration
// order (the ordered-mapping contract of the bulk accessor).
// Complexity: O(V + E).
func (c *Calculator) AllDegrees() []Degrees {
	ids := c.g.NodeIDs()
	out := make([]Degrees, 0, len(ids))
	for _, id := range ids {
		out = append(out, Degrees{
			ID:    id,
			Out:   c.OutDegree(id),
			In:    c.InDegree(id),
			Total: c.Degree(id),
		})
	}

	return out
}

// Summary bundles every neighborhood view of a single node.
type Summary struct {
	Successors    []core.Node
	Predecessors  []core.Node
	Neighbors     []core.Node
	OutgoingEdges []core.Edge
	IncomingEdges []core.Edge
	IncidentEdges []core.Edge
	Degrees       Degrees
}

// Summarize collects all neighborhood information for one node in a
// single call, the shape consumed by per-node CLI reports.
func (c *Calculator) Summarize(id string) Summary {
	return Summary{
		Successors:    c.Successors(id),
		Predecessors:  c.Predecessors(id),
		Neighbors:     c.Neighbors(id),
		OutgoingEdges: c.OutgoingEdges(id),
		IncomingEdges: c.IncomingEdges(id),
		IncidentEdges: c.IncidentEdges(id),
		Degrees: Degrees{
			ID:    id,
			Out:   c.OutDegree(id),
			In:    c.InDegree(id),
			Total: c.Degree(id),
		},
	}
}
