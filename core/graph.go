// Package core: mutating operations on the Graph model.
//
// AddNode and AddEdge are the only two mutations in the model. Both are
// idempotent and report whether the addition actually happened; there are
// no update or removal operations — a graph is built once, queried, and
// discarded whole.

package core

// AddNode inserts n into the graph, preserving insertion order.
// A node whose ID is already present is left untouched and the call
// reports false (no overwrite, by contract).
// Complexity: O(1) amortized.
func (g *Graph) AddNode(n Node) bool {
	if _, exists := g.nodes[n.ID]; exists {
		return false
	}
	stored := n
	g.nodes[n.ID] = &stored
	g.nodeOrder = append(g.nodeOrder, n.ID)

	// Materialize index buckets so lookups on isolated nodes stay O(1).
	g.incident[n.ID] = nil
	g.outgoing[n.ID] = nil
	g.incoming[n.ID] = nil

	return true
}

// AddEdge inserts e into the graph, preserving insertion order, and
// reports whether the insertion happened. An edge equal to an existing
// one — same (Source, Target, Kind) triple — is rejected as a duplicate;
// a reversed pair or a different kind still inserts, which is exactly how
// multi-edges arise in this model.
//
// Endpoints absent from the graph are implicitly created as unweighted
// nodes (forward-reference tolerance; Build offers validation on top).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(e Edge) bool {
	key := edgeKey{source: e.Source, target: e.Target, kind: e.Kind}
	if _, dup := g.edgeSet[key]; dup {
		return false
	}

	// Create-if-absent endpoint policy.
	g.AddNode(Node{ID: e.Source})
	g.AddNode(Node{ID: e.Target})

	pos := len(g.edges)
	g.edges = append(g.edges, e)
	g.edgeSet[key] = struct{}{}

	// Incident index: every edge registers at its source; undirected
	// edges also register at their target, so an undirected self-loop
	// is counted twice by raw degree math downstream.
	g.incident[e.Source] = append(g.incident[e.Source], pos)
	if e.Kind == Directed {
		g.outgoing[e.Source] = append(g.outgoing[e.Source], pos)
		g.incoming[e.Target] = append(g.incoming[e.Target], pos)
	} else {
		g.incident[e.Target] = append(g.incident[e.Target], pos)
	}

	return true
}
