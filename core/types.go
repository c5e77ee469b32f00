// Package core: type declarations for Node, Edge, EdgeKind, and Graph,
// plus the sentinel errors and the NewGraph constructor.

package core

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrUndefinedNode indicates an edge record referenced a node that is
	// not part of the validated node record set.
	ErrUndefinedNode = errors.New("core: edge references undefined node")

	// ErrUnknownEdgeKind indicates an edge kind tag outside {directed, undirected}.
	ErrUnknownEdgeKind = errors.New("core: unknown edge kind")
)

// EdgeKind classifies a single edge as directed or undirected.
// The zero value is Undirected, matching the model default.
type EdgeKind uint8

const (
	// Undirected marks a bidirectional edge.
	Undirected EdgeKind = iota

	// Directed marks a one-way edge from Source to Target.
	Directed
)

// String returns the canonical lower-case tag for the kind.
func (k EdgeKind) String() string {
	if k == Directed {
		return "directed"
	}

	return "undirected"
}

// ParseEdgeKind maps a textual tag onto an EdgeKind.
// Returns ErrUnknownEdgeKind for anything outside {directed, undirected}.
func ParseEdgeKind(tag string) (EdgeKind, error) {
	switch tag {
	case "directed":
		return Directed, nil
	case "undirected":
		return Undirected, nil
	default:
		return Undirected, fmt.Errorf("%w: %q", ErrUnknownEdgeKind, tag)
	}
}

// Node is a graph vertex. Identity and equality are defined solely by ID;
// the weight is optional payload and never participates in identity.
type Node struct {
	// ID uniquely identifies this node within its Graph.
	ID string

	// Weight is the optional numeric weight; meaningful only when HasWeight.
	Weight float64

	// HasWeight reports whether Weight was explicitly provided.
	HasWeight bool
}

// Edge connects two nodes of the same graph. Edges are multiset members:
// a graph may hold several edges between identical endpoints and edges
// whose source equals target. Edge identity, used for duplicate detection
// in AddEdge, is the triple (Source, Target, Kind) — weight and label are
// payload, not identity.
type Edge struct {
	// Source is the source node ID.
	Source string

	// Target is the target node ID.
	Target string

	// Weight is the optional numeric weight; meaningful only when HasWeight.
	Weight float64

	// HasWeight reports whether Weight was explicitly provided.
	HasWeight bool

	// Label is an optional human-readable edge label.
	Label string

	// Kind marks this edge as directed or undirected.
	Kind EdgeKind
}

// WeightOr returns the edge weight, or fallback when the edge is unweighted.
// Matrix builders use WeightOr(1) so unweighted edges count as unit entries.
func (e Edge) WeightOr(fallback float64) float64 {
	if e.HasWeight {
		return e.Weight
	}

	return fallback
}

// Connects reports whether id is one of the edge's endpoints.
func (e Edge) Connects(id string) bool {
	return e.Source == id || e.Target == id
}

// Other returns the endpoint opposite to id, treating the edge as a plain
// node pair. For a self-loop it returns id itself. The second return is
// false when id is not an endpoint of this edge.
func (e Edge) Other(id string) (string, bool) {
	switch id {
	case e.Source:
		return e.Target, true
	case e.Target:
		return e.Source, true
	default:
		return "", false
	}
}

// DefaultLabel returns the explicit label when present, otherwise the
// conventional "source-target" form used by incidence matrix columns.
func (e Edge) DefaultLabel() string {
	if e.Label != "" {
		return e.Label
	}

	return e.Source + "-" + e.Target
}

// String renders the edge as "A->B" (directed) or "A-B" (undirected).
func (e Edge) String() string {
	if e.Kind == Directed {
		return e.Source + "->" + e.Target
	}

	return e.Source + "-" + e.Target
}

// FormatWeight renders w without a trailing ".0" for whole values, so
// unweighted-looking integers print the way the input format wrote them.
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// edgeKey is the identity triple used for duplicate-edge detection.
type edgeKey struct {
	source string
	target string
	kind   EdgeKind
}

// Graph is the in-memory graph model: an ordered node collection, an
// ordered edge list, and derived per-node edge indices.
//
// Index semantics (inherited from the construction rules and relied upon
// by degree math downstream):
//   - incident[n] holds every edge added with Source==n, plus undirected
//     edges with Target==n. A directed edge is therefore incident only to
//     its source; an undirected self-loop appears twice.
//   - outgoing/incoming track directed edges only.
//
// The slices in the indices store positions into edges, keeping Edge a
// pure value type.
type Graph struct {
	nodeOrder []string         // insertion order of node IDs
	nodes     map[string]*Node // node ID → node
	edges     []Edge           // insertion-ordered edge list
	edgeSet   map[edgeKey]struct{}

	incident map[string][]int // node ID → incident edge positions
	outgoing map[string][]int // node ID → outgoing directed edge positions
	incoming map[string][]int // node ID → incoming directed edge positions
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		edgeSet:  make(map[edgeKey]struct{}),
		incident: make(map[string][]int),
		outgoing: make(map[string][]int),
		incoming: make(map[string][]int),
	}
}

// String summarises the graph as "Graph(4 nodes, 7 edges)".
func (g *Graph) String() string {
	return fmt.Sprintf("Graph(%d nodes, %d edges)", len(g.nodeOrder), len(g.edges))
}
