package triangulate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mintri/builder"
	"github.com/katalvlaran/mintri/graph"
	"github.com/katalvlaran/mintri/triangulate"
)

func TestSubstars_Cycle4(t *testing.T) {
	g := cycle4(t)
	require.Equal(t, []graph.NodeSet{{1, 3}}, triangulate.Substars(g, g, 0))
	require.Equal(t, []graph.NodeSet{{0, 2}}, triangulate.Substars(g, g, 1))
}

func TestSubstars_Star(t *testing.T) {
	g := build(t, nil, builder.Star(6))
	require.Empty(t, triangulate.Substars(g, g, 0), "closed hub neighborhood covers the graph")

	// every other leaf is its own component separated by the hub
	require.Equal(t, []graph.NodeSet{{0}}, triangulate.Substars(g, g, 3))
}

// TestSubstars_WorkingNeighborhood: separators are taken around the closed
// neighborhood in the working graph, but measured in the original.
func TestSubstars_WorkingNeighborhood(t *testing.T) {
	g := build(t, nil, builder.Cycle(5))
	working := g.Clone()
	require.NoError(t, working.AddEdge(0, 2))

	// N_working[0] = {0,1,2,4}, leaving {3} whose g-neighbors are {2,4}.
	require.Equal(t, []graph.NodeSet{{2, 4}}, triangulate.Substars(g, working, 0))
	// g alone leaves {2,3} with separator {1,4}.
	require.Equal(t, []graph.NodeSet{{1, 4}}, triangulate.Substars(g, g, 0))
}

func TestSubstars_IsolatedComponentsSkipped(t *testing.T) {
	g := build(t, nil, builder.Path(3), builder.Path(2))
	require.Empty(t, triangulate.Substars(g, g, 1))
}

func TestSubstars_Deduplicated(t *testing.T) {
	// K_{2,3}: removing N[0] = {0,2,3,4} leaves {1}, separator {2,3,4};
	// removing N[2] = {0,1,2} leaves the isolated parts 3 and 4, both with
	// separator {0,1}.
	g := build(t, nil, builder.CompleteBipartite(2, 3))
	require.Equal(t, []graph.NodeSet{{2, 3, 4}}, triangulate.Substars(g, g, 0))
	require.Equal(t, []graph.NodeSet{{0, 1}}, triangulate.Substars(g, g, 2))
}

func TestMakeVertexLBSimplicial(t *testing.T) {
	g := cycle4(t)
	working := g.Clone()

	added := triangulate.MakeVertexLBSimplicial(g, working, 0)
	require.Equal(t, []graph.Edge{{U: 1, V: 3}}, added)
	require.True(t, working.HasEdge(1, 3))
	require.False(t, g.HasEdge(1, 3), "original is never mutated")

	require.Empty(t, triangulate.MakeVertexLBSimplicial(g, working, 0), "second call adds nothing")
	for _, sep := range triangulate.Substars(g, working, 0) {
		require.True(t, working.IsClique(sep))
	}
}
