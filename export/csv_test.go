package export_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkadlec/grafy/core"
	"github.com/mkadlec/grafy/export"
	"github.com/mkadlec/grafy/matrix"
	"github.com/mkadlec/grafy/neighborhood"
	"github.com/mkadlec/grafy/properties"
)

// chain builds A->B->C with unit weights.
func chain() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Directed, Weight: 1, HasWeight: true})
	g.AddEdge(core.Edge{Source: "B", Target: "C", Kind: core.Directed, Weight: 1, HasWeight: true})

	return g
}

func TestWriteMatrixCSV_Layout(t *testing.T) {
	gen := matrix.NewGenerator(chain())
	data, rows, cols, err := gen.Table(matrix.Distance, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteMatrixCSV(&buf, data, rows, cols))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, ",A,B,C", lines[0])
	require.Equal(t, "A,0,1,2", lines[1])
	require.Equal(t, "B,inf,0,1", lines[2])
	require.Equal(t, "C,inf,inf,0", lines[3])
}

func TestWritePredecessorCSV_Identifiers(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	var buf bytes.Buffer
	require.NoError(t, export.WritePredecessorCSV(&buf, gen.Predecessors(), gen.NodeLabels()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "A,A,A,B", lines[1])
	require.Equal(t, "B,,B,B", lines[2])
}

func TestCSV_RoundTrip(t *testing.T) {
	gen := matrix.NewGenerator(chain())
	data, rows, cols, err := gen.Table(matrix.Distance, 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, export.WriteMatrixCSV(&buf, data, rows, cols))

	back, labels, err := export.ReadSquareMatrixCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, rows, labels)
	require.Equal(t, data, back)
	require.True(t, math.IsInf(back[2][0], 1))
}

func TestPredecessorCSV_RoundTrip(t *testing.T) {
	gen := matrix.NewGenerator(chain())
	pred := gen.Predecessors()

	var buf bytes.Buffer
	require.NoError(t, export.WritePredecessorCSV(&buf, pred, gen.NodeLabels()))

	back, labels, err := export.ReadPredecessorCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, gen.NodeLabels(), labels)
	require.Equal(t, pred, back)
}

func TestReadMatrixCSV_BadCells(t *testing.T) {
	_, _, _, err := export.ReadMatrixCSV(strings.NewReader(",A\nA,abc\n"))
	require.ErrorIs(t, err, export.ErrBadFormat)

	_, _, _, err = export.ReadMatrixCSV(strings.NewReader(""))
	require.ErrorIs(t, err, export.ErrBadFormat)

	// Ragged row.
	_, _, _, err = export.ReadMatrixCSV(strings.NewReader(",A,B\nA,1\n"))
	require.ErrorIs(t, err, export.ErrBadFormat)
}

func TestReadSquareMatrixCSV_RejectsMismatch(t *testing.T) {
	_, _, err := export.ReadSquareMatrixCSV(strings.NewReader(",A,B\nA,1,2\n"))
	require.ErrorIs(t, err, export.ErrBadFormat)

	_, _, err = export.ReadSquareMatrixCSV(strings.NewReader(",A,B\nA,1,2\nX,3,4\n"))
	require.ErrorIs(t, err, export.ErrBadFormat)
}

func TestReadPredecessorCSV_UnknownIdentifier(t *testing.T) {
	_, _, err := export.ReadPredecessorCSV(strings.NewReader(",A\nA,Z\n"))
	require.ErrorIs(t, err, export.ErrBadFormat)
}

func TestWriteKindCSV_AdjacencyPower(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	var buf bytes.Buffer
	require.NoError(t, export.WriteKindCSV(&buf, gen, matrix.AdjacencyPower, 2))

	// A^2 of the chain has a single walk of length two, A to C.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, ",A,B,C", lines[0])
	require.Equal(t, "A,0,0,1", lines[1])
	require.Equal(t, "B,0,0,0", lines[2])
}

func TestWriteAdjacencyListCSV_Layout(t *testing.T) {
	g := chain()
	g.AddEdge(core.Edge{Source: "C", Target: "D", Kind: core.Undirected, Weight: 2, HasWeight: true})
	gen := matrix.NewGenerator(g)

	var buf bytes.Buffer
	require.NoError(t, export.WriteAdjacencyListCSV(&buf, gen.AdjacencyList()))

	// Directed descriptors collapse to the bare identifier; undirected
	// weighted ones keep their annotation.
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "Node,Neighbor_1", lines[0])
	require.Equal(t, "A,B", lines[1])
	require.Equal(t, "B,C", lines[2])
	require.Equal(t, "C,D (weight: 2)", lines[3])
	require.Equal(t, "D,C (weight: 2)", lines[4])
}

func TestAdjacencyListCSV_RoundTrip(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Undirected})
	g.AddEdge(core.Edge{Source: "A", Target: "C", Kind: core.Undirected})
	g.AddNode(core.Node{ID: "D"})
	gen := matrix.NewGenerator(g)

	var buf bytes.Buffer
	require.NoError(t, export.WriteAdjacencyListCSV(&buf, gen.AdjacencyList()))

	back, err := export.ReadAdjacencyListCSV(&buf)
	require.NoError(t, err)
	require.Equal(t, gen.AdjacencyList(), back)
	require.Empty(t, back[3].Neighbors, "padding cells must not survive the import")
}

func TestReadAdjacencyListCSV_BadHeader(t *testing.T) {
	_, err := export.ReadAdjacencyListCSV(strings.NewReader("Vertex,Neighbor_1\nA,B\n"))
	require.ErrorIs(t, err, export.ErrBadFormat)

	_, err = export.ReadAdjacencyListCSV(strings.NewReader(""))
	require.ErrorIs(t, err, export.ErrBadFormat)
}

func TestWritePropertiesCSV(t *testing.T) {
	var buf bytes.Buffer
	results := properties.NewDetector(chain()).DetectAll()
	require.NoError(t, export.WritePropertiesCSV(&buf, results))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "Property,Value\n"))
	require.Contains(t, out, "directed,YES")
	require.Contains(t, out, "strongly-connected,NO")
}

func TestWriteDegreesCSV(t *testing.T) {
	var buf bytes.Buffer
	degrees := neighborhood.NewCalculator(chain()).AllDegrees()
	require.NoError(t, export.WriteDegreesCSV(&buf, degrees))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Equal(t, "Node,Out-degree,In-degree,Total degree", lines[0])
	require.Equal(t, "B,1,1,1", lines[2])
}

func TestWriteAll(t *testing.T) {
	dir := t.TempDir()
	paths, err := export.WriteAll(chain(), dir, "test")
	require.NoError(t, err)

	// Five matrix kinds (adjacency_power is on-demand) plus the
	// adjacency list and the property and degree tables.
	require.Len(t, paths, 8)
	for _, p := range paths {
		require.Equal(t, dir, filepath.Dir(p))
		info, err := os.Stat(p)
		require.NoError(t, err)
		require.NotZero(t, info.Size())
	}
	require.Contains(t, paths, filepath.Join(dir, "test_distance_matrix.csv"))
	require.Contains(t, paths, filepath.Join(dir, "test_adjacency_list.csv"))
	require.Contains(t, paths, filepath.Join(dir, "test_properties.csv"))
}
