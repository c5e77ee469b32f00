// Package matrix: the Kind enum, its tags, and the sentinel error set.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownKind indicates a matrix-kind tag outside the supported set.
	ErrUnknownKind = errors.New("matrix: unknown matrix kind")

	// ErrNodeNotFound indicates a row/column/element query naming an
	// identifier absent from the matrix labels. No partial slice
	// accompanies the error.
	ErrNodeNotFound = errors.New("matrix: node not found")

	// ErrNegativePower rejects adjacency powers below zero.
	ErrNegativePower = errors.New("matrix: negative power")
)

// NoPredecessor marks a predecessor-matrix entry with no known path.
const NoPredecessor = -1

// Kind enumerates the matrix representations a Generator can build.
type Kind uint8

const (
	// Adjacency — n×n weighted/summed edge counts.
	Adjacency Kind = iota

	// Sign — elementwise sign of the adjacency matrix.
	Sign

	// Incidence — n×m node-to-edge incidence.
	Incidence

	// Distance — all-pairs shortest-path lengths.
	Distance

	// Predecessor — per-pair shortest-path predecessors.
	Predecessor

	// AdjacencyPower — the adjacency matrix raised to a power.
	AdjacencyPower

	kindCount // sentinel, keep last
)

// Kinds returns every matrix kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, int(kindCount))
	for k := Kind(0); k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}

// String returns the canonical tag of the kind.
func (k Kind) String() string {
	switch k {
	case Adjacency:
		return "adjacency"
	case Sign:
		return "sign"
	case Incidence:
		return "incidence"
	case Distance:
		return "distance"
	case Predecessor:
		return "predecessor"
	case AdjacencyPower:
		return "adjacency_power"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind maps a tag onto its Kind.
// Returns ErrUnknownKind for tags outside the supported set.
func ParseKind(tag string) (Kind, error) {
	for k := Kind(0); k < kindCount; k++ {
		if k.String() == tag {
			return k, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, tag)
}
