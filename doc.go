// Package grafy computes structural invariants and matrix representations
// of finite graphs — directed or undirected, weighted or unweighted, with
// self-loops and multi-edges allowed.
//
// 🧭 What is grafy?
//
//	An in-memory graph analysis toolkit that brings together:
//		• Core model: ordered nodes & edges with derived adjacency indices
//		• Neighborhoods: successors, predecessors, degrees (U±, H±, d±)
//		• Properties: ten structural invariants (connectivity, planarity
//		  heuristic, completeness, regularity, bipartiteness, …)
//		• Matrices: adjacency, sign, incidence, distance (Floyd–Warshall),
//		  predecessor, adjacency powers & adjacency lists
//		• I/O: .tg text format parser, CSV/YAML export & import
//		• CLI: cobra commands plus an interactive matrix explorer
//
// Everything is organized under flat, single-concern packages:
//
//	core/         — Node, Edge, Graph, record-based construction
//	neighborhood/ — degree & neighborhood calculator
//	properties/   — property detector (invariants a–j)
//	matrix/       — matrix generator & row/column/element selector
//	tg/           — textual graph format (.tg) parser
//	export/       — CSV and YAML exporters/importers
//	render/       — terminal rendering of matrices & property tables
//	cmd/grafy/    — command-line interface and interactive explorer
//
// Quick ASCII example:
//
//	    A──▶B
//	    │   │
//	    C◀──D
//
//	a mixed graph: some edges directed, some not — grafy treats the graph
//	as directed as a whole once a single directed edge is present.
//
//	go get github.com/mkadlec/grafy
package grafy
