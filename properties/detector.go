// Package properties: the Detector and the per-property checks that
// delegate to the graph model or to degree math. Traversal-based checks
// live in connectivity.go, the planarity heuristic in planarity.go.

package properties

import (
	"github.com/mkadlec/grafy/core"
	"github.com/mkadlec/grafy/neighborhood"
)

// DefaultPlanarityLimit is the node ceiling above which the combinatorial
// K5/K3,3 subset search is skipped (the e ≤ 3v−6 bound still applies).
// The search is O(V⁶) in the worst case; twelve nodes keeps it well under
// a million subsets.
const DefaultPlanarityLimit = 12

// Option configures a Detector.
type Option func(*Detector)

// WithPlanarityLimit overrides the node ceiling for the K5/K3,3 subset
// search. Non-positive limits disable the search entirely.
func WithPlanarityLimit(limit int) Option {
	return func(d *Detector) { d.planarityLimit = limit }
}

// Detector evaluates structural invariants of one graph. It is stateless
// apart from configuration; every check re-derives its answer from the
// graph model, so a Detector stays valid for any number of calls.
type Detector struct {
	g              *core.Graph
	planarityLimit int
}

// NewDetector binds a Detector to g.
func NewDetector(g *core.Graph, opts ...Option) *Detector {
	d := &Detector{g: g, planarityLimit: DefaultPlanarityLimit}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// IsWeighted reports invariant a: any edge carries a weight.
func (d *Detector) IsWeighted() bool { return d.g.IsWeighted() }

// IsDirected reports invariant b: any edge is directed.
func (d *Detector) IsDirected() bool { return d.g.IsDirected() }

// IsSimpleNoMultiEdges reports invariant d: no multiple edges.
func (d *Detector) IsSimpleNoMultiEdges() bool { return !d.g.HasMultipleEdges() }

// IsSimple reports invariant e: no self-loops and no multiple edges.
func (d *Detector) IsSimple() bool {
	return !d.g.HasSelfLoops() && !d.g.HasMultipleEdges()
}

// IsFinite reports invariant g. Always true: the model holds finite
// node and edge collections by construction.
func (d *Detector) IsFinite() bool { return true }

// IsComplete reports invariant h, judged purely by edge count against
// the closed formula: n(n−1)/2 for undirected graphs, n(n−1) for
// directed ones. Graphs with at most one node are trivially complete.
// Complexity: O(E) (the directedness scan).
func (d *Detector) IsComplete() bool {
	n := d.g.NodeCount()
	if n <= 1 {
		return true
	}

	expected := n * (n - 1) / 2
	if d.g.IsDirected() {
		expected = n * (n - 1)
	}

	return d.g.EdgeCount() == expected
}

// IsRegular reports invariant i: all nodes share the same raw incident
// degree. Graphs with at most one node are trivially regular.
// Complexity: O(V + E).
func (d *Detector) IsRegular() bool {
	ids := d.g.NodeIDs()
	if len(ids) <= 1 {
		return true
	}

	calc := neighborhood.NewCalculator(d.g)
	want := calc.Degree(ids[0])
	for _, id := range ids[1:] {
		if calc.Degree(id) != want {
			return false
		}
	}

	return true
}

// Evaluate computes a single property. The switch is exhaustive over the
// enum, so an unknown tag can only enter through ParseProperty, which
// already rejects it.
func (d *Detector) Evaluate(p Property) (bool, error) {
	switch p {
	case Weighted:
		return d.IsWeighted(), nil
	case Directed:
		return d.IsDirected(), nil
	case WeaklyConnected:
		return d.IsWeaklyConnected(), nil
	case StronglyConnected:
		return d.IsStronglyConnected(), nil
	case SimpleNoMultiEdges:
		return d.IsSimpleNoMultiEdges(), nil
	case Simple:
		return d.IsSimple(), nil
	case Planar:
		return d.IsPlanar(), nil
	case Finite:
		return d.IsFinite(), nil
	case Complete:
		return d.IsComplete(), nil
	case Regular:
		return d.IsRegular(), nil
	case Bipartite:
		return d.IsBipartite(), nil
	default:
		return false, ErrUnknownProperty
	}
}

// DetectAll evaluates every property in canonical order and returns the
// ordered results. Detector state stays reusable afterwards.
func (d *Detector) DetectAll() []Result {
	all := All()
	out := make([]Result, 0, len(all))
	for _, p := range all {
		v, _ := d.Evaluate(p) // enum iteration cannot produce unknown tags
		out = append(out, Result{Property: p, Value: v})
	}

	return out
}
