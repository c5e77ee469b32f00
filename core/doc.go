// Package core defines the central Graph, Node, and Edge types and the
// record-based construction entry point used by parsers and importers.
//
// The model is deliberately permissive: multi-edges (several edges with the
// same endpoints) and self-loops are accepted, edges may mix directed and
// undirected kinds inside one graph, and node/edge weights are optional.
// Directedness and weightedness are graph-global observations: a graph is
// "directed" as soon as a single directed edge is present, and "weighted"
// as soon as a single edge carries a weight.
//
// Ordering is part of the contract. Nodes iterate in insertion order and
// edges in insertion order; every derived representation (degree tables,
// matrices, adjacency lists) is defined relative to these orders.
//
// A Graph is mutable only while it is being built. Once handed to the
// neighborhood, properties, or matrix packages it is treated as frozen:
// all query APIs return freshly allocated values, never views that allow
// mutation of the underlying structure.
//
// Errors:
//
//	ErrUndefinedNode — an edge record references a node outside the
//	                   validated record set (construction-fatal).
package core
