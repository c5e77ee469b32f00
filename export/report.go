// Package export: the aggregated YAML report.

package export

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mkadlec/grafy/core"
	"github.com/mkadlec/grafy/matrix"
	"github.com/mkadlec/grafy/neighborhood"
	"github.com/mkadlec/grafy/properties"
)

// PropertyEntry is one detected property in the report.
type PropertyEntry struct {
	Name   string `yaml:"name"`
	Letter string `yaml:"letter"`
	Value  bool   `yaml:"value"`
}

// DegreeEntry is one node's degree triple in the report.
type DegreeEntry struct {
	Node  string `yaml:"node"`
	Out   int    `yaml:"out"`
	In    int    `yaml:"in"`
	Total int    `yaml:"total"`
}

// ListEntry is one adjacency-list row in the report.
type ListEntry struct {
	Node      string   `yaml:"node"`
	Neighbors []string `yaml:"neighbors"`
}

// Report aggregates one analysis session: counts, properties, degrees,
// and every matrix representation. The predecessor matrix is stored as
// node identifiers ("" where no predecessor exists), matching the CSV
// convention.
type Report struct {
	Nodes         int             `yaml:"nodes"`
	Edges         int             `yaml:"edges"`
	NodeLabels    []string        `yaml:"node_labels"`
	EdgeLabels    []string        `yaml:"edge_labels"`
	Properties    []PropertyEntry `yaml:"properties"`
	Degrees       []DegreeEntry   `yaml:"degrees"`
	Adjacency     [][]float64     `yaml:"adjacency"`
	Sign          [][]float64     `yaml:"sign"`
	Incidence     [][]float64     `yaml:"incidence"`
	Distance      [][]float64     `yaml:"distance"`
	Predecessor   [][]string      `yaml:"predecessor"`
	AdjacencyList []ListEntry     `yaml:"adjacency_list"`
}

// NewReport runs the full analysis over g and assembles the report.
func NewReport(g *core.Graph, opts ...properties.Option) Report {
	gen := matrix.NewGenerator(g)
	labels := gen.NodeLabels()

	rep := Report{
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		NodeLabels: labels,
		EdgeLabels: gen.EdgeLabels(),
		Adjacency:  gen.Adjacency(),
		Sign:       gen.SignMatrix(),
		Incidence:  gen.Incidence().Data,
		Distance:   gen.Distances(),
	}

	for _, r := range properties.NewDetector(g, opts...).DetectAll() {
		rep.Properties = append(rep.Properties, PropertyEntry{
			Name:   r.Property.String(),
			Letter: r.Property.Letter(),
			Value:  r.Value,
		})
	}

	for _, d := range neighborhood.NewCalculator(g).AllDegrees() {
		rep.Degrees = append(rep.Degrees, DegreeEntry{
			Node: d.ID, Out: d.Out, In: d.In, Total: d.Total,
		})
	}

	pred := gen.Predecessors()
	rep.Predecessor = make([][]string, len(pred))
	for i, row := range pred {
		rep.Predecessor[i] = make([]string, len(row))
		for j, p := range row {
			if p != matrix.NoPredecessor {
				rep.Predecessor[i][j] = labels[p]
			}
		}
	}

	for _, entry := range gen.AdjacencyList() {
		rep.AdjacencyList = append(rep.AdjacencyList, ListEntry{
			Node: entry.ID, Neighbors: entry.Neighbors,
		})
	}

	return rep
}

// WriteYAML marshals the report to w.
func WriteYAML(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("export: encode yaml: %w", err)
	}

	return enc.Close()
}

// ReadYAML unmarshals a report previously written by WriteYAML.
func ReadYAML(r io.Reader) (Report, error) {
	var rep Report
	if err := yaml.NewDecoder(r).Decode(&rep); err != nil {
		return Report{}, fmt.Errorf("export: decode yaml: %w", err)
	}

	return rep, nil
}
