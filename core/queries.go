// Package core: read-only query surface of the Graph model.
//
// Every method here returns freshly allocated values. Callers may hold,
// share, and iterate results without synchronization and without any risk
// of mutating the underlying graph.

package core

// Node returns the node with the given ID.
// The second return is false when the node is absent.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}

	return *n, true
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Edge returns the first edge (in insertion order) matching source,
// target, and kind. Undirected lookups match either endpoint order.
// The second return is false when no such edge exists.
// Complexity: O(E).
func (g *Graph) Edge(source, target string, kind EdgeKind) (Edge, bool) {
	for _, e := range g.edges {
		if e.Kind != kind {
			continue
		}
		if e.Source == source && e.Target == target {
			return e, true
		}
		if kind == Undirected && e.Source == target && e.Target == source {
			return e, true
		}
	}

	return Edge{}, false
}

// HasConnection reports whether any edge, of any kind and either
// orientation, joins a and b. Used by the planarity subset search, where
// only the existence of a connection matters.
// Complexity: O(deg(a)).
func (g *Graph) HasConnection(a, b string) bool {
	for _, pos := range g.incident[a] {
		e := g.edges[pos]
		if (e.Source == a && e.Target == b) || (e.Source == b && e.Target == a) {
			return true
		}
	}
	// Directed edges into a are not in a's incident list; check b's side.
	for _, pos := range g.incoming[a] {
		if g.edges[pos].Source == b {
			return true
		}
	}

	return false
}

// Nodes returns all nodes in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodeIDs returns all node identifiers in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// Edges returns all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.nodeOrder) }

// EdgeCount returns the number of edges. Complexity: O(1).
func (g *Graph) EdgeCount() int { return len(g.edges) }

// edgesAt materializes the edges behind an index bucket.
func (g *Graph) edgesAt(positions []int) []Edge {
	out := make([]Edge, 0, len(positions))
	for _, pos := range positions {
		out = append(out, g.edges[pos])
	}

	return out
}

// IncidentEdges returns the edges incident to id: all edges added with id
// as source plus undirected edges with id as target. Directed incoming
// edges are deliberately not part of this list (see Graph doc).
// Returns an empty slice for an unknown node.
// Complexity: O(deg(id)).
func (g *Graph) IncidentEdges(id string) []Edge {
	return g.edgesAt(g.incident[id])
}

// OutgoingEdges returns the directed edges leaving id.
// Complexity: O(deg+(id)).
func (g *Graph) OutgoingEdges(id string) []Edge {
	return g.edgesAt(g.outgoing[id])
}

// IncomingEdges returns the directed edges entering id.
// Complexity: O(deg-(id)).
func (g *Graph) IncomingEdges(id string) []Edge {
	return g.edgesAt(g.incoming[id])
}

// Successors returns the targets of id's outgoing directed edges, in edge
// order, one entry per edge (multi-edges repeat; a self-loop contributes
// id itself).
// Complexity: O(deg+(id)).
func (g *Graph) Successors(id string) []Node {
	out := make([]Node, 0, len(g.outgoing[id]))
	for _, pos := range g.outgoing[id] {
		out = append(out, *g.nodes[g.edges[pos].Target])
	}

	return out
}

// Predecessors returns the sources of id's incoming directed edges, in
// edge order, one entry per edge.
// Complexity: O(deg-(id)).
func (g *Graph) Predecessors(id string) []Node {
	out := make([]Node, 0, len(g.incoming[id]))
	for _, pos := range g.incoming[id] {
		out = append(out, *g.nodes[g.edges[pos].Source])
	}

	return out
}

// Neighbors returns the neighbor nodes of id, deduplicated.
//
// The policy pivots on the graph-global IsDirected flag: for a directed
// graph the result is the union of predecessors and successors in
// predecessors-first order; for an undirected graph it is every node one
// incident edge away, in incident-edge order.
// Returns an empty slice for an unknown node.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) []Node {
	if _, ok := g.nodes[id]; !ok {
		return nil
	}

	var out []Node
	seen := make(map[string]struct{})
	appendOnce := func(n Node) {
		if _, dup := seen[n.ID]; dup {
			return
		}
		seen[n.ID] = struct{}{}
		out = append(out, n)
	}

	if g.IsDirected() {
		for _, n := range g.Predecessors(id) {
			appendOnce(n)
		}
		for _, n := range g.Successors(id) {
			appendOnce(n)
		}

		return out
	}

	for _, pos := range g.incident[id] {
		other, _ := g.edges[pos].Other(id)
		appendOnce(*g.nodes[other])
	}

	return out
}

// IsDirected reports whether the graph contains at least one directed
// edge. This is a graph-global property: a mixed graph counts as directed
// as a whole, and neighbor policy, completeness formulas, and adjacency
// symmetry are all defined relative to it.
// Complexity: O(E).
func (g *Graph) IsDirected() bool {
	for _, e := range g.edges {
		if e.Kind == Directed {
			return true
		}
	}

	return false
}

// IsWeighted reports whether any edge carries an explicit weight.
// Complexity: O(E).
func (g *Graph) IsWeighted() bool {
	for _, e := range g.edges {
		if e.HasWeight {
			return true
		}
	}

	return false
}

// HasSelfLoops reports whether any edge starts and ends at the same node.
// Complexity: O(E).
func (g *Graph) HasSelfLoops() bool {
	for _, e := range g.edges {
		if e.Source == e.Target {
			return true
		}
	}

	return false
}

// HasMultipleEdges reports whether the number of distinct unordered
// endpoint pairs is smaller than the edge count.
//
// Note the conflation: a directed pair A→B plus B→A collapses onto the
// same unordered pair and therefore reads as "multiple edges", exactly
// like a true duplicate.
// Complexity: O(E).
func (g *Graph) HasMultipleEdges() bool {
	type pair struct{ lo, hi string }
	pairs := make(map[pair]struct{}, len(g.edges))
	for _, e := range g.edges {
		p := pair{lo: e.Source, hi: e.Target}
		if p.lo > p.hi {
			p.lo, p.hi = p.hi, p.lo
		}
		pairs[p] = struct{}{}
	}

	return len(pairs) < len(g.edges)
}
