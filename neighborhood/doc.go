// Package neighborhood provides stateless degree and neighborhood queries
// over a core.Graph: successors U+, predecessors U-, the combined
// neighborhood U, edge surroundings H+/H-/H, and the degree triple
// d+/d-/d.
//
// Degrees are raw incident-edge counts — a self-loop or a multi-edge
// counts once per registration, so an undirected self-loop contributes
// two to d. All bulk results preserve the graph's node iteration order.
package neighborhood
