// Package export writes analysis results to CSV and YAML and reads
// matrices back from CSV.
//
// The CSV matrix layout is label-framed: an empty corner cell, column
// labels across the header row, the row label first in every data row.
// +Inf serializes as "inf" (−Inf as "-inf"). The predecessor matrix is
// stored as node identifiers, not indices, with an empty cell where no
// predecessor exists.
//
// The YAML report aggregates the properties, degree table, and matrices
// of one analysis session into a single document.
package export
