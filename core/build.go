// Package core: record-based graph construction.
//
// Parsers and importers hand over plain record values; Build turns them
// into a Graph. Construction is all-or-nothing: when validation fails no
// partially built graph escapes.

package core

import "fmt"

// NodeRecord is the parser-facing shape of a node definition.
type NodeRecord struct {
	ID        string
	Weight    float64
	HasWeight bool
}

// EdgeRecord is the parser-facing shape of an edge definition.
type EdgeRecord struct {
	Source    string
	Target    string
	Weight    float64
	HasWeight bool
	Label     string
	Kind      EdgeKind
}

// BuildOption configures Build behavior.
type BuildOption func(*buildConfig)

type buildConfig struct {
	validateEndpoints bool
}

// WithEndpointValidation makes Build fail with ErrUndefinedNode when an
// edge record names a node absent from the node record set. Without it,
// forward references are tolerated and missing endpoints are implicitly
// created as unweighted nodes.
func WithEndpointValidation() BuildOption {
	return func(c *buildConfig) { c.validateEndpoints = true }
}

// Build constructs a Graph from ordered node and edge records.
//
// Nodes insert first, in record order (duplicates are no-ops); edges
// insert second, in record order, with the usual duplicate and
// create-if-absent rules of AddEdge.
//
// Returns ErrUndefinedNode when endpoint validation is requested and an
// edge references an unknown node; in that case no graph is returned.
// Complexity: O(V + E).
func Build(nodes []NodeRecord, edges []EdgeRecord, opts ...BuildOption) (*Graph, error) {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.validateEndpoints {
		if err := ValidateRecords(nodes, edges); err != nil {
			return nil, err
		}
	}

	g := NewGraph()
	for _, nr := range nodes {
		g.AddNode(Node{ID: nr.ID, Weight: nr.Weight, HasWeight: nr.HasWeight})
	}
	for _, er := range edges {
		g.AddEdge(Edge{
			Source:    er.Source,
			Target:    er.Target,
			Weight:    er.Weight,
			HasWeight: er.HasWeight,
			Label:     er.Label,
			Kind:      er.Kind,
		})
	}

	return g, nil
}

// ValidateRecords checks that every edge record's endpoints resolve to
// the node record set. The first offending edge aborts the check.
// Complexity: O(V + E).
func ValidateRecords(nodes []NodeRecord, edges []EdgeRecord) error {
	ids := make(map[string]struct{}, len(nodes))
	for _, nr := range nodes {
		ids[nr.ID] = struct{}{}
	}
	for i, er := range edges {
		if _, ok := ids[er.Source]; !ok {
			return fmt.Errorf("edge %d (%s%s%s): source %q: %w",
				i+1, er.Source, arrow(er.Kind), er.Target, er.Source, ErrUndefinedNode)
		}
		if _, ok := ids[er.Target]; !ok {
			return fmt.Errorf("edge %d (%s%s%s): target %q: %w",
				i+1, er.Source, arrow(er.Kind), er.Target, er.Target, ErrUndefinedNode)
		}
	}

	return nil
}

// arrow renders the connective used in validation messages.
func arrow(k EdgeKind) string {
	if k == Directed {
		return "->"
	}

	return "-"
}
