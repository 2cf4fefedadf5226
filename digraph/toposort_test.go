package digraph_test

import (
	"testing"

	"github.com/javhar/condorank/digraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertTopological checks the defining property: every edge points forward
// in the reported order.
func assertTopological(t *testing.T, g *digraph.DiGraph[string], order []string) {
	t.Helper()
	pos := make(map[string]int, len(order))
	for i, node := range order {
		pos[node] = i
	}
	require.Len(t, order, g.Order())
	for _, u := range g.Nodes() {
		nbs, err := g.Neighbours(u)
		require.NoError(t, err)
		for _, v := range nbs {
			assert.Less(t, pos[u], pos[v], "edge %s->%s violates order %v", u, v, order)
		}
	}
}

func TestSortOf_EmptyGraph(t *testing.T) {
	t.Parallel()

	ts := digraph.SortOf(digraph.NewBuilder[string]().Build())
	require.True(t, ts.IsDAG())
	order, err := ts.Order()
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestSortOf_Chain(t *testing.T) {
	t.Parallel()

	g := digraph.NewBuilder[string]().
		AddEdge("A", "B").
		AddEdge("B", "C").
		AddEdge("C", "D").
		Build()
	ts := digraph.SortOf(g)
	require.True(t, ts.Exists())
	order, err := ts.Order()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, order)
}

func TestSortOf_Diamond(t *testing.T) {
	t.Parallel()

	g := digraph.NewBuilder[string]().
		AddEdge("A", "B").
		AddEdge("A", "C").
		AddEdge("B", "D").
		AddEdge("C", "D").
		Build()
	ts := digraph.SortOf(g)
	require.True(t, ts.IsDAG())
	order, err := ts.Order()
	require.NoError(t, err)
	assertTopological(t, g, order)
}

func TestSortOf_Cycle(t *testing.T) {
	t.Parallel()

	g := digraph.NewBuilder[string]().
		AddEdge("A", "B").
		AddEdge("B", "C").
		AddEdge("C", "A").
		Build()
	ts := digraph.SortOf(g)
	assert.False(t, ts.IsDAG())
	assert.False(t, ts.Exists())
	_, err := ts.Order()
	require.ErrorIs(t, err, digraph.ErrGraphIsCyclic)
}

func TestSortOf_CycleWithTail(t *testing.T) {
	t.Parallel()

	// D hangs off a 3-cycle; the whole graph is still cyclic.
	g := digraph.NewBuilder[string]().
		AddEdge("A", "B").
		AddEdge("B", "C").
		AddEdge("C", "A").
		AddEdge("C", "D").
		Build()
	assert.False(t, digraph.SortOf(g).IsDAG())
}

func TestSortOf_IsolatedNodes(t *testing.T) {
	t.Parallel()

	g := digraph.NewBuilder[string]().
		AddNode("X").
		AddEdge("A", "B").
		AddNode("Y").
		Build()
	order, err := digraph.SortOf(g).Order()
	require.NoError(t, err)
	assertTopological(t, g, order)
	assert.Len(t, order, 4)
}
