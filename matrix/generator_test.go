package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkadlec/grafy/core"
	"github.com/mkadlec/grafy/matrix"
)

// chain builds A->B->C with unit weights.
func chain() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Directed, Weight: 1, HasWeight: true})
	g.AddEdge(core.Edge{Source: "B", Target: "C", Kind: core.Directed, Weight: 1, HasWeight: true})

	return g
}

func TestAdjacency_DirectedChain(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	require.Equal(t, [][]float64{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	}, gen.Adjacency())
	require.Equal(t, []string{"A", "B", "C"}, gen.NodeLabels())
}

func TestAdjacency_UndirectedMirrors(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Undirected, Weight: 2.5, HasWeight: true})
	gen := matrix.NewGenerator(g)

	adj := gen.Adjacency()
	require.Equal(t, 2.5, adj[0][1])
	require.Equal(t, 2.5, adj[1][0])
}

func TestAdjacency_MultiEdgesAccumulate(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Directed, Weight: 2, HasWeight: true})
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Undirected, Weight: 3, HasWeight: true})
	gen := matrix.NewGenerator(g)

	adj := gen.Adjacency()
	require.Equal(t, 5.0, adj[0][1])
	require.Equal(t, 3.0, adj[1][0])
}

func TestAdjacency_UndirectedSelfLoopCountsTwice(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "A", Kind: core.Undirected})
	gen := matrix.NewGenerator(g)

	require.Equal(t, 2.0, gen.Adjacency()[0][0])
}

func TestSignMatrix(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Directed, Weight: -4, HasWeight: true})
	g.AddEdge(core.Edge{Source: "B", Target: "C", Kind: core.Directed, Weight: 7, HasWeight: true})
	gen := matrix.NewGenerator(g)

	require.Equal(t, [][]float64{
		{0, -1, 0},
		{0, 0, 1},
		{0, 0, 0},
	}, gen.SignMatrix())
}

func TestPower_Laws(t *testing.T) {
	gen := matrix.NewGenerator(chain())

	p0, err := gen.Power(0)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, p0)

	p1, err := gen.Power(1)
	require.NoError(t, err)
	require.Equal(t, gen.Adjacency(), p1)

	// power(a+b) == power(a) * power(b): check entrywise for a=1, b=1.
	p2, err := gen.Power(2)
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{0, 0, 1},
		{0, 0, 0},
		{0, 0, 0},
	}, p2)

	p3, err := gen.Power(3)
	require.NoError(t, err)
	require.Equal(t, [][]float64{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, p3)
}

func TestPower_CountsWalks(t *testing.T) {
	// Undirected triangle: the number of closed length-3 walks from each
	// node is 2 (one per direction).
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Undirected})
	g.AddEdge(core.Edge{Source: "B", Target: "C", Kind: core.Undirected})
	g.AddEdge(core.Edge{Source: "C", Target: "A", Kind: core.Undirected})
	gen := matrix.NewGenerator(g)

	p3, err := gen.Power(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		require.Equal(t, 2.0, p3[i][i])
	}
}

func TestPower_NegativeRejected(t *testing.T) {
	gen := matrix.NewGenerator(chain())
	_, err := gen.Power(-1)
	require.ErrorIs(t, err, matrix.ErrNegativePower)
}

func TestIncidence(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Directed})
	g.AddEdge(core.Edge{Source: "B", Target: "C", Kind: core.Undirected, Label: "bridge"})
	gen := matrix.NewGenerator(g)

	inc := gen.Incidence()
	require.Equal(t, []string{"A", "B", "C"}, inc.NodeLabels)
	require.Equal(t, []string{"A-B", "bridge"}, inc.EdgeLabels)
	require.Equal(t, [][]float64{
		{1, 0},
		{-1, 1},
		{0, 1},
	}, inc.Data)
}

func TestIncidence_DirectedSelfLoopReadsMinusOne(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "A", Kind: core.Directed})
	gen := matrix.NewGenerator(g)

	require.Equal(t, -1.0, gen.Incidence().Data[0][0])
}

func TestAdjacencyList(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Directed, Weight: 2, HasWeight: true})
	g.AddEdge(core.Edge{Source: "B", Target: "C", Kind: core.Undirected})
	gen := matrix.NewGenerator(g)

	list := gen.AdjacencyList()
	require.Len(t, list, 3)
	require.Equal(t, "A", list[0].ID)
	require.Equal(t, []string{"B (weight: 2) ->"}, list[0].Neighbors)
	// B sees only its own incident edges: the undirected one; the directed
	// A->B edge is registered at A.
	require.Equal(t, []string{"C"}, list[1].Neighbors)
	require.Equal(t, []string{"B"}, list[2].Neighbors)
}

func TestGenerator_SnapshotIsStable(t *testing.T) {
	g := chain()
	gen := matrix.NewGenerator(g)
	g.AddEdge(core.Edge{Source: "C", Target: "D", Kind: core.Directed})

	// Nodes and edges added after construction stay invisible.
	require.Equal(t, []string{"A", "B", "C"}, gen.NodeLabels())
	require.Len(t, gen.Adjacency(), 3)
}
