package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkadlec/grafy/core"
	"github.com/mkadlec/grafy/matrix"
)

func TestDistances_DirectedChain(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	inf := math.Inf(1)
	require.Equal(t, [][]float64{
		{0, 1, 2},
		{inf, 0, 1},
		{inf, inf, 0},
	}, gen.Distances())
}

func TestDistances_UndirectedSymmetric(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Undirected, Weight: 3, HasWeight: true})
	g.AddEdge(core.Edge{Source: "B", Target: "C", Kind: core.Undirected, Weight: 4, HasWeight: true})
	gen := matrix.NewGenerator(g)

	dist := gen.Distances()
	for i := range dist {
		require.Zero(t, dist[i][i])
		for j := range dist[i] {
			require.Equal(t, dist[j][i], dist[i][j])
		}
	}
	require.Equal(t, 7.0, dist[0][2])
}

func TestDistances_ShortcutWins(t *testing.T) {
	// Direct A->C costs 10, the detour through B costs 3.
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "C", Kind: core.Directed, Weight: 10, HasWeight: true})
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Directed, Weight: 1, HasWeight: true})
	g.AddEdge(core.Edge{Source: "B", Target: "C", Kind: core.Directed, Weight: 2, HasWeight: true})
	gen := matrix.NewGenerator(g)

	require.Equal(t, 3.0, gen.Distances()[0][2])
}

func TestPredecessors_DirectedChain(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	pred := gen.Predecessors()
	no := matrix.NoPredecessor
	require.Equal(t, [][]int{
		{0, 0, 1},
		{no, 1, 1},
		{no, no, 2},
	}, pred)
}

func TestShortestPath_Reconstruction(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	path, err := gen.ShortestPath("A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, path)

	self, err := gen.ShortestPath("B", "B")
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, self)
}

func TestShortestPath_Unreachable(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	path, err := gen.ShortestPath("C", "A")
	require.NoError(t, err)
	require.Nil(t, path)
}

func TestShortestPath_UnknownEndpoint(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	_, err := gen.ShortestPath("A", "Z")
	require.ErrorIs(t, err, matrix.ErrNodeNotFound)
	_, err = gen.ShortestPath("Z", "A")
	require.ErrorIs(t, err, matrix.ErrNodeNotFound)
}

func TestShortestPath_PrefersDetour(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "C", Kind: core.Directed, Weight: 10, HasWeight: true})
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Directed, Weight: 1, HasWeight: true})
	g.AddEdge(core.Edge{Source: "B", Target: "C", Kind: core.Directed, Weight: 2, HasWeight: true})
	gen := matrix.NewGenerator(g)

	path, err := gen.ShortestPath("A", "C")
	require.NoError(t, err)
	require.Equal(t, []string{"A", "B", "C"}, path)
}
