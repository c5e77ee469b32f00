package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkadlec/grafy/matrix"
)

func TestParseKind(t *testing.T) {
	k, err := matrix.ParseKind("adjacency_power")
	require.NoError(t, err)
	require.Equal(t, matrix.AdjacencyPower, k)

	_, err = matrix.ParseKind("laplacian")
	require.ErrorIs(t, err, matrix.ErrUnknownKind)
}

func TestKinds_TagsRoundTrip(t *testing.T) {
	for _, k := range matrix.Kinds() {
		got, err := matrix.ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}
}

func TestTable_AllKinds(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	for _, k := range matrix.Kinds() {
		data, rows, cols, err := gen.Table(k, 2)
		require.NoError(t, err, k.String())
		require.Len(t, data, 3)
		require.Equal(t, []string{"A", "B", "C"}, rows)
		if k == matrix.Incidence {
			require.Equal(t, []string{"A-B", "B-C"}, cols)
		} else {
			require.Equal(t, rows, cols)
		}
	}
}

func TestTable_PredecessorWidened(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	data, _, _, err := gen.Table(matrix.Predecessor, 0)
	require.NoError(t, err)
	require.Equal(t, -1.0, data[2][0])
	require.Equal(t, 1.0, data[0][2])
}

func TestTable_PowerErrorPropagates(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	_, _, _, err := gen.Table(matrix.AdjacencyPower, -3)
	require.ErrorIs(t, err, matrix.ErrNegativePower)
}

func TestElementRowColumn(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	v, err := gen.Element(matrix.Adjacency, 0, "A", "B")
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	row, err := gen.Row(matrix.Distance, 0, "A")
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, 2}, row)

	col, err := gen.Column(matrix.Adjacency, 0, "B")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 0}, col)
}

func TestSelector_IncidenceColumnByEdgeLabel(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	col, err := gen.Column(matrix.Incidence, 0, "B-C")
	require.NoError(t, err)
	require.Equal(t, []float64{0, 1, -1}, col)
}

func TestSelector_UnknownLabel(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	_, err := gen.Element(matrix.Adjacency, 0, "A", "Z")
	require.ErrorIs(t, err, matrix.ErrNodeNotFound)
	_, err = gen.Row(matrix.Sign, 0, "Z")
	require.ErrorIs(t, err, matrix.ErrNodeNotFound)
	_, err = gen.Column(matrix.Distance, 0, "Z")
	require.ErrorIs(t, err, matrix.ErrNodeNotFound)
}
