// Package properties evaluates the ten structural invariants of a graph,
// conventionally lettered a–j: weighted, directed, weak/strong
// connectivity (both share letter c), simplicity with and without
// loops, planarity (heuristic), finiteness, completeness, regularity,
// and bipartiteness.
//
// Connectivity and coloring run over the undirected view of the graph —
// every edge treated as bidirectional — while strong connectivity follows
// successor edges only.
//
// The planarity check is a necessary-condition filter, NOT a complete
// planarity test: it rejects graphs containing a K5 or K3,3 subgraph and
// graphs violating the e ≤ 3v−6 bound per connected component, but it can
// still classify some non-planar graphs as planar (Kuratowski's theorem
// speaks about minors; only subgraphs are searched here). The subset
// search is combinatorial — O(V⁵) for K5, O(V⁶) for K3,3 — and is gated
// behind a configurable node ceiling (WithPlanarityLimit).
package properties
