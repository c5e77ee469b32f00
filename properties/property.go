// Package properties: the Property enum, its fixed evaluation order, and
// the string tags used by CLI/export surfaces.

package properties

import (
	"errors"
	"fmt"
)

// ErrUnknownProperty indicates a property tag outside the fixed set.
var ErrUnknownProperty = errors.New("properties: unknown property")

// Property enumerates the fixed invariant set. The declaration order is
// the canonical evaluation/reporting order used by DetectAll.
type Property uint8

const (
	// Weighted — any edge carries an explicit weight (letter a).
	Weighted Property = iota

	// Directed — any edge is directed (letter b).
	Directed

	// WeaklyConnected — connected when every edge is treated as
	// bidirectional (letter c).
	WeaklyConnected

	// StronglyConnected — every node reaches every other following edge
	// direction; equals WeaklyConnected for undirected graphs (letter c).
	StronglyConnected

	// SimpleNoMultiEdges — no multiple edges between the same endpoint
	// pair (letter d).
	SimpleNoMultiEdges

	// Simple — no self-loops and no multiple edges (letter e).
	Simple

	// Planar — passes the necessary-condition planarity heuristic
	// (letter f).
	Planar

	// Finite — always true; unbounded graphs are unsupported (letter g).
	Finite

	// Complete — every node pair is joined by an edge, judged by edge
	// count: n(n−1)/2 undirected, n(n−1) directed (letter h).
	Complete

	// Regular — all nodes share the same raw incident degree (letter i).
	Regular

	// Bipartite — 2-colorable with no same-color edge (letter j).
	Bipartite

	propertyCount // sentinel, keep last
)

// All returns every property in canonical order.
func All() []Property {
	out := make([]Property, 0, int(propertyCount))
	for p := Property(0); p < propertyCount; p++ {
		out = append(out, p)
	}

	return out
}

// String returns the canonical tag of the property.
func (p Property) String() string {
	switch p {
	case Weighted:
		return "weighted"
	case Directed:
		return "directed"
	case WeaklyConnected:
		return "weakly-connected"
	case StronglyConnected:
		return "strongly-connected"
	case SimpleNoMultiEdges:
		return "no-multi-edges"
	case Simple:
		return "simple"
	case Planar:
		return "planar"
	case Finite:
		return "finite"
	case Complete:
		return "complete"
	case Regular:
		return "regular"
	case Bipartite:
		return "bipartite"
	default:
		return fmt.Sprintf("property(%d)", uint8(p))
	}
}

// Letter returns the conventional letter a–j. Both connectivity variants
// share "c", which is why eleven entries carry ten letters.
func (p Property) Letter() string {
	switch p {
	case Weighted:
		return "a"
	case Directed:
		return "b"
	case WeaklyConnected, StronglyConnected:
		return "c"
	case SimpleNoMultiEdges:
		return "d"
	case Simple:
		return "e"
	case Planar:
		return "f"
	case Finite:
		return "g"
	case Complete:
		return "h"
	case Regular:
		return "i"
	case Bipartite:
		return "j"
	default:
		return "?"
	}
}

// Description returns a short human-readable description.
func (p Property) Description() string {
	switch p {
	case Weighted:
		return "has weighted edges"
	case Directed:
		return "has directed edges"
	case WeaklyConnected:
		return "connected ignoring edge direction"
	case StronglyConnected:
		return "every node reaches every other along edge direction"
	case SimpleNoMultiEdges:
		return "no multiple edges between the same nodes"
	case Simple:
		return "no self-loops and no multiple edges"
	case Planar:
		return "passes the planarity heuristic (necessary conditions only)"
	case Finite:
		return "finite node and edge sets"
	case Complete:
		return "every node pair is joined"
	case Regular:
		return "all nodes have equal degree"
	case Bipartite:
		return "2-colorable without same-color edges"
	default:
		return ""
	}
}

// ParseProperty maps a tag onto its Property.
// Returns ErrUnknownProperty for tags outside the fixed set; no partial
// result accompanies the error.
func ParseProperty(tag string) (Property, error) {
	for p := Property(0); p < propertyCount; p++ {
		if p.String() == tag {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownProperty, tag)
}

// Result pairs a property with its evaluated value.
type Result struct {
	Property Property
	Value    bool
}
