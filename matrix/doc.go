// Package matrix builds matrix representations of a graph: adjacency,
// sign, adjacency powers, incidence, distance (Floyd–Warshall),
// predecessor, and an adjacency-list view.
//
// A Generator is bound to one graph. Node index (position in node
// iteration order) and edge order are computed once at construction and
// reused across every build, so row/column positions stay stable between
// matrices of the same Generator. Every builder allocates and returns a
// fresh matrix; returned matrices are never mutated afterwards and may be
// shared across readers freely.
//
// Conventions:
//   - Adjacency entries accumulate weight-or-1 per edge; undirected edges
//     mirror. Multi-edges sum.
//   - Incidence records a directed edge as +1 in the source row and −1 in
//     the target row, an undirected edge as +1 in both.
//   - Distance uses +Inf for "no path" and 0 on the diagonal. Negative
//     cycles are NOT validated; results are silently wrong if one exists.
//   - Predecessor entries are node indices, NoPredecessor (−1) when no
//     path is known.
package matrix
