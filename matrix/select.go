// Package matrix: the tag-selectable retrieval surface used by the CLI
// and the exporters — whole matrix, single element, whole row, whole
// column.

package matrix

import "fmt"

// Table materializes any matrix kind as a numeric table with row and
// column labels. Power is consulted only for AdjacencyPower. Predecessor
// entries are node indices widened to float64, NoPredecessor as −1.
// Incidence columns are labelled by edge, every other kind by node on
// both axes.
func (gen *Generator) Table(kind Kind, power int) (data [][]float64, rows, cols []string, err error) {
	switch kind {
	case Adjacency:
		data = gen.Adjacency()
	case Sign:
		data = gen.SignMatrix()
	case Incidence:
		inc := gen.Incidence()

		return inc.Data, inc.NodeLabels, inc.EdgeLabels, nil
	case Distance:
		data = gen.Distances()
	case Predecessor:
		pred := gen.Predecessors()
		data = make([][]float64, len(pred))
		for i, row := range pred {
			data[i] = make([]float64, len(row))
			for j, p := range row {
				data[i][j] = float64(p)
			}
		}
	case AdjacencyPower:
		data, err = gen.Power(power)
		if err != nil {
			return nil, nil, nil, err
		}
	default:
		return nil, nil, nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}

	labels := gen.NodeLabels()

	return data, labels, labels, nil
}

// labelIndex resolves a label inside labels.
func labelIndex(labels []string, label string) (int, error) {
	for i, l := range labels {
		if l == label {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, label)
}

// Element returns the single entry addressed by row and column label.
func (gen *Generator) Element(kind Kind, power int, row, col string) (float64, error) {
	data, rows, cols, err := gen.Table(kind, power)
	if err != nil {
		return 0, err
	}
	i, err := labelIndex(rows, row)
	if err != nil {
		return 0, err
	}
	j, err := labelIndex(cols, col)
	if err != nil {
		return 0, err
	}

	return data[i][j], nil
}

// Row returns the full row addressed by its label.
func (gen *Generator) Row(kind Kind, power int, row string) ([]float64, error) {
	data, rows, _, err := gen.Table(kind, power)
	if err != nil {
		return nil, err
	}
	i, err := labelIndex(rows, row)
	if err != nil {
		return nil, err
	}

	return data[i], nil
}

// Column returns the full column addressed by its label.
func (gen *Generator) Column(kind Kind, power int, col string) ([]float64, error) {
	data, _, cols, err := gen.Table(kind, power)
	if err != nil {
		return nil, err
	}
	j, err := labelIndex(cols, col)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(data))
	for i := range data {
		out[i] = data[i][j]
	}

	return out, nil
}
