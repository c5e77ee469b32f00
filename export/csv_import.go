// Package export: CSV readers.

package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/mkadlec/grafy/matrix"
)

// ErrBadFormat indicates CSV content that does not fit the expected
// matrix layout.
var ErrBadFormat = errors.New("export: bad csv format")

// readFrame reads the label-framed layout back into string cells.
func readFrame(r io.Reader) (cells [][]string, rows, cols []string, err error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // validated below with a package error
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("export: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, nil, fmt.Errorf("empty file: %w", ErrBadFormat)
	}

	cols = records[0][1:]
	for _, record := range records[1:] {
		if len(record) != len(cols)+1 {
			return nil, nil, nil, fmt.Errorf("row %q has %d cells, want %d: %w",
				record[0], len(record)-1, len(cols), ErrBadFormat)
		}
		rows = append(rows, record[0])
		cells = append(cells, record[1:])
	}

	return cells, rows, cols, nil
}

// ReadMatrixCSV reads a numeric label-framed matrix. "inf" and "-inf"
// parse to the infinities; any other non-numeric cell is ErrBadFormat.
func ReadMatrixCSV(r io.Reader) (data [][]float64, rows, cols []string, err error) {
	cells, rows, cols, err := readFrame(r)
	if err != nil {
		return nil, nil, nil, err
	}

	data = make([][]float64, len(cells))
	for i, row := range cells {
		data[i] = make([]float64, len(row))
		for j, cell := range row {
			switch strings.ToLower(cell) {
			case "inf":
				data[i][j] = math.Inf(1)
			case "-inf":
				data[i][j] = math.Inf(-1)
			default:
				v, perr := strconv.ParseFloat(cell, 64)
				if perr != nil {
					return nil, nil, nil, fmt.Errorf("cell [%s][%s] = %q: %w", rows[i], cols[j], cell, ErrBadFormat)
				}
				data[i][j] = v
			}
		}
	}

	return data, rows, cols, nil
}

// ReadSquareMatrixCSV reads a numeric matrix and additionally requires a
// square shape with matching row and column labels. Used for adjacency,
// sign, and distance imports.
func ReadSquareMatrixCSV(r io.Reader) ([][]float64, []string, error) {
	data, rows, cols, err := ReadMatrixCSV(r)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) != len(cols) {
		return nil, nil, fmt.Errorf("%dx%d is not square: %w", len(rows), len(cols), ErrBadFormat)
	}
	for i := range rows {
		if rows[i] != cols[i] {
			return nil, nil, fmt.Errorf("row label %q vs column label %q: %w", rows[i], cols[i], ErrBadFormat)
		}
	}

	return data, rows, nil
}

// ReadAdjacencyListCSV reads the adjacency-list layout back into
// entries, in row order. Empty cells are padding and are dropped; the
// header must start with "Node".
func ReadAdjacencyListCSV(r io.Reader) ([]matrix.ListEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows are padded, not ragged
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("export: read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty file: %w", ErrBadFormat)
	}
	if !strings.EqualFold(records[0][0], "Node") {
		return nil, fmt.Errorf("header starts with %q, want \"Node\": %w", records[0][0], ErrBadFormat)
	}

	entries := make([]matrix.ListEntry, 0, len(records)-1)
	for _, record := range records[1:] {
		entry := matrix.ListEntry{ID: record[0]}
		for _, cell := range record[1:] {
			if cell = strings.TrimSpace(cell); cell != "" {
				entry.Neighbors = append(entry.Neighbors, cell)
			}
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// ReadPredecessorCSV reads a predecessor matrix stored as node
// identifiers, resolving them back to indices. Empty cells become
// NoPredecessor; an identifier outside the label set is ErrBadFormat.
func ReadPredecessorCSV(r io.Reader) ([][]int, []string, error) {
	cells, rows, cols, err := readFrame(r)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) != len(cols) {
		return nil, nil, fmt.Errorf("%dx%d is not square: %w", len(rows), len(cols), ErrBadFormat)
	}

	index := make(map[string]int, len(rows))
	for i, label := range rows {
		index[label] = i
	}

	pred := make([][]int, len(cells))
	for i, row := range cells {
		pred[i] = make([]int, len(row))
		for j, cell := range row {
			if cell == "" {
				pred[i][j] = matrix.NoPredecessor
				continue
			}
			p, ok := index[cell]
			if !ok {
				return nil, nil, fmt.Errorf("cell [%s][%s]: unknown node %q: %w", rows[i], cols[j], cell, ErrBadFormat)
			}
			pred[i][j] = p
		}
	}

	return pred, rows, nil
}
