package neighborhood_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mkadlec/grafy/core"
	"github.com/mkadlec/grafy/neighborhood"
)

// mixedGraph builds:
//
//	A ──▶ B ──▶ C
//	▲     │
//	└─────┘ (B->A)
//	D ─ B (undirected)
func mixedGraph() *core.Graph {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Directed})
	g.AddEdge(core.Edge{Source: "B", Target: "C", Kind: core.Directed})
	g.AddEdge(core.Edge{Source: "B", Target: "A", Kind: core.Directed})
	g.AddEdge(core.Edge{Source: "D", Target: "B", Kind: core.Undirected})

	return g
}

func ids(nodes []core.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.ID)
	}

	return out
}

func TestSuccessorsPredecessorsNeighbors(t *testing.T) {
	c := neighborhood.NewCalculator(mixedGraph())

	require.Equal(t, []string{"C", "A"}, ids(c.Successors("B")))
	require.Equal(t, []string{"A"}, ids(c.Predecessors("B")))

	// Union: predecessors first, successors that are new afterwards.
	require.Equal(t, []string{"A", "C"}, ids(c.Neighbors("B")))
}

func TestDegrees(t *testing.T) {
	c := neighborhood.NewCalculator(mixedGraph())

	require.Equal(t, 2, c.OutDegree("B"))
	require.Equal(t, 1, c.InDegree("B"))
	// Incident: B->C, B->A (registered at source B) and D-B (undirected,
	// registered at both ends); the directed A->B edge is not incident to B.
	require.Equal(t, 3, c.Degree("B"))
}

func TestDegree_SelfLoopAndMultiEdge(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(core.Edge{Source: "A", Target: "A", Kind: core.Undirected})
	g.AddEdge(core.Edge{Source: "A", Target: "B", Kind: core.Undirected})
	g.AddEdge(core.Edge{Source: "B", Target: "A", Kind: core.Undirected})
	c := neighborhood.NewCalculator(g)

	// Self-loop counts twice, each parallel edge counts once more.
	require.Equal(t, 4, c.Degree("A"))
}

func TestAllDegrees_OrderPreserved(t *testing.T) {
	c := neighborhood.NewCalculator(mixedGraph())

	all := c.AllDegrees()
	order := make([]string, 0, len(all))
	for _, d := range all {
		order = append(order, d.ID)
	}
	require.Equal(t, []string{"A", "B", "C", "D"}, order)

	require.Equal(t, neighborhood.Degrees{ID: "C", Out: 0, In: 1, Total: 0}, all[2])
}

func TestSummarize(t *testing.T) {
	c := neighborhood.NewCalculator(mixedGraph())

	s := c.Summarize("B")
	require.Len(t, s.OutgoingEdges, 2)
	require.Len(t, s.IncomingEdges, 1)
	require.Len(t, s.IncidentEdges, 3)
	require.Equal(t, 3, s.Degrees.Total)

	empty := c.Summarize("missing")
	require.Empty(t, empty.IncidentEdges)
	require.Zero(t, empty.Degrees.Total)
}
