package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkadlec/grafy/export"
)

func TestNewReport(t *testing.T) {
	rep := export.NewReport(chain())

	require.Equal(t, 3, rep.Nodes)
	require.Equal(t, 2, rep.Edges)
	require.Equal(t, []string{"A", "B", "C"}, rep.NodeLabels)
	require.Equal(t, []string{"A-B", "B-C"}, rep.EdgeLabels)
	require.Len(t, rep.Properties, 11)
	require.Len(t, rep.Degrees, 3)

	require.Equal(t, [][]string{
		{"A", "A", "B"},
		{"", "B", "B"},
		{"", "", "C"},
	}, rep.Predecessor)

	require.Equal(t, "A", rep.AdjacencyList[0].Node)
	require.Equal(t, []string{"B (weight: 1) ->"}, rep.AdjacencyList[0].Neighbors)
}

func TestYAML_RoundTrip(t *testing.T) {
	rep := export.NewReport(chain())

	var buf bytes.Buffer
	require.NoError(t, export.WriteYAML(&buf, rep))

	back, err := export.ReadYAML(&buf)
	require.NoError(t, err)
	require.Equal(t, rep.Nodes, back.Nodes)
	require.Equal(t, rep.NodeLabels, back.NodeLabels)
	require.Equal(t, rep.Properties, back.Properties)
	require.Equal(t, rep.Predecessor, back.Predecessor)
	require.Equal(t, rep.Adjacency, back.Adjacency)
}

func TestYAML_BadInput(t *testing.T) {
	_, err := export.ReadYAML(bytes.NewReader([]byte("{not yaml")))
	require.Error(t, err)
}
