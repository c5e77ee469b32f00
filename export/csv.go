// Package export: CSV writers.

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkadlec/grafy/core"
	"github.com/mkadlec/grafy/matrix"
	"github.com/mkadlec/grafy/neighborhood"
	"github.com/mkadlec/grafy/properties"
)

// formatCell renders one numeric matrix cell.
func formatCell(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	default:
		return core.FormatWeight(v)
	}
}

// writeFrame emits the label-framed layout: header row with an empty
// corner cell, then one row per data row with its label first.
func writeFrame(w io.Writer, rows, cols []string, cell func(i, j int) string) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, len(cols)+1)
	header = append(header, "")
	header = append(header, cols...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for i, label := range rows {
		record := make([]string, 0, len(cols)+1)
		record = append(record, label)
		for j := range cols {
			record = append(record, cell(i, j))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write row %q: %w", label, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteMatrixCSV writes a numeric matrix in the label-framed layout.
func WriteMatrixCSV(w io.Writer, data [][]float64, rows, cols []string) error {
	return writeFrame(w, rows, cols, func(i, j int) string {
		return formatCell(data[i][j])
	})
}

// WritePredecessorCSV writes the predecessor matrix with entries
// converted to node identifiers; NoPredecessor becomes an empty cell.
func WritePredecessorCSV(w io.Writer, pred [][]int, labels []string) error {
	return writeFrame(w, labels, labels, func(i, j int) string {
		p := pred[i][j]
		if p == matrix.NoPredecessor {
			return ""
		}

		return labels[p]
	})
}

// WriteKindCSV writes any matrix kind of gen to w. Predecessor output
// uses node identifiers; power is consulted only for AdjacencyPower.
func WriteKindCSV(w io.Writer, gen *matrix.Generator, kind matrix.Kind, power int) error {
	if kind == matrix.Predecessor {
		return WritePredecessorCSV(w, gen.Predecessors(), gen.NodeLabels())
	}

	data, rows, cols, err := gen.Table(kind, power)
	if err != nil {
		return err
	}

	return WriteMatrixCSV(w, data, rows, cols)
}

// WriteAdjacencyListCSV writes one row per node with each neighbor in
// its own column ("Node,Neighbor_1,...,Neighbor_N"), rows padded with
// empty cells to the widest neighbor count. Directed descriptors
// ("B (weight: 2) ->") collapse to the bare identifier; undirected
// descriptors keep their weight annotation.
func WriteAdjacencyListCSV(w io.Writer, entries []matrix.ListEntry) error {
	maxNeighbors := 0
	for _, e := range entries {
		if len(e.Neighbors) > maxNeighbors {
			maxNeighbors = len(e.Neighbors)
		}
	}

	cw := csv.NewWriter(w)
	header := make([]string, 0, maxNeighbors+1)
	header = append(header, "Node")
	for i := 0; i < maxNeighbors; i++ {
		header = append(header, fmt.Sprintf("Neighbor_%d", i+1))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}

	for _, e := range entries {
		record := make([]string, 0, maxNeighbors+1)
		record = append(record, e.ID)
		for _, n := range e.Neighbors {
			if cut := strings.Index(n, " "); cut >= 0 && strings.HasSuffix(n, "->") {
				n = n[:cut]
			}
			record = append(record, n)
		}
		for i := len(e.Neighbors); i < maxNeighbors; i++ {
			record = append(record, "")
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write adjacency list for %q: %w", e.ID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WritePropertiesCSV writes a Property,Value table with YES/NO values.
func WritePropertiesCSV(w io.Writer, results []properties.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Property", "Value"}); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, r := range results {
		value := "NO"
		if r.Value {
			value = "YES"
		}
		if err := cw.Write([]string{r.Property.String(), value}); err != nil {
			return fmt.Errorf("export: write property %s: %w", r.Property, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteDegreesCSV writes the per-node degree table.
func WriteDegreesCSV(w io.Writer, degrees []neighborhood.Degrees) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Node", "Out-degree", "In-degree", "Total degree"}); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, d := range degrees {
		record := []string{d.ID, fmt.Sprint(d.Out), fmt.Sprint(d.In), fmt.Sprint(d.Total)}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("export: write degrees for %q: %w", d.ID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteAll exports every matrix kind plus the property and degree tables
// of g into dir, one file per artifact named "<prefix>_<name>.csv".
// Returns the written paths in write order.
func WriteAll(g *core.Graph, dir, prefix string) ([]string, error) {
	gen := matrix.NewGenerator(g)

	var paths []string
	write := func(name string, fn func(io.Writer) error) error {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.csv", prefix, name))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("export: create %s: %w", path, err)
		}
		if err := fn(f); err != nil {
			f.Close()

			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("export: close %s: %w", path, err)
		}
		paths = append(paths, path)

		return nil
	}

	for _, kind := range matrix.Kinds() {
		if kind == matrix.AdjacencyPower {
			continue // parameterized, exported on demand only
		}
		kind := kind
		if err := write(kind.String()+"_matrix", func(w io.Writer) error {
			return WriteKindCSV(w, gen, kind, 0)
		}); err != nil {
			return paths, err
		}
	}

	if err := write("adjacency_list", func(w io.Writer) error {
		return WriteAdjacencyListCSV(w, gen.AdjacencyList())
	}); err != nil {
		return paths, err
	}
	if err := write("properties", func(w io.Writer) error {
		return WritePropertiesCSV(w, properties.NewDetector(g).DetectAll())
	}); err != nil {
		return paths, err
	}
	if err := write("degrees", func(w io.Writer) error {
		return WriteDegreesCSV(w, neighborhood.NewCalculator(g).AllDegrees())
	}); err != nil {
		return paths, err
	}

	return paths, nil
}
