package triangulate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mintri/builder"
	"github.com/katalvlaran/mintri/graph"
)

type namedGraph struct {
	name string
	g    *graph.Graph
}

// build wraps builder.BuildGraph and fails the test on error.
func build(t testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *graph.Graph {
	t.Helper()
	g, err := builder.BuildGraph(bopts, cons...)
	require.NoError(t, err)

	return g
}

// cycle4 is the chordless 4-cycle 0–1–2–3–0.
func cycle4(t testing.TB) *graph.Graph {
	return build(t, nil, builder.Cycle(4))
}

// corpus returns the shared property-test inputs: classic families plus
// seeded G(n,p) samples.
func corpus(t testing.TB) []namedGraph {
	t.Helper()
	out := []namedGraph{
		{"empty", graph.New(0)},
		{"single", graph.New(1)},
		{"edgeless5", graph.New(5)},
		{"cycle4", build(t, nil, builder.Cycle(4))},
		{"cycle7", build(t, nil, builder.Cycle(7))},
		{"path6", build(t, nil, builder.Path(6))},
		{"star6", build(t, nil, builder.Star(6))},
		{"wheel7", build(t, nil, builder.Wheel(7))},
		{"complete5", build(t, nil, builder.Complete(5))},
		{"bipartite3x3", build(t, nil, builder.CompleteBipartite(3, 3))},
		{"grid3x3", build(t, nil, builder.Grid(3, 3))},
		{"grid3x4", build(t, nil, builder.Grid(3, 4))},
		{"two-cycles", build(t, nil, builder.Cycle(4), builder.Cycle(5))},
	}
	for seed := int64(1); seed <= 12; seed++ {
		for _, p := range []float64{0.2, 0.35, 0.5} {
			n := 6 + int(seed%6)
			g := build(t, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
			out = append(out, namedGraph{fmt.Sprintf("gnp-n%d-p%.2f-s%d", n, p, seed), g})
		}
	}

	return out
}

// chordalByElimination is an independent chordality check: repeatedly
// delete a simplicial vertex; the graph is chordal iff this empties it.
func chordalByElimination(g *graph.Graph) bool {
	n := g.NodeCount()
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	for left := n; left > 0; left-- {
		found := false
		for v := 0; v < n && !found; v++ {
			if !alive[v] {
				continue
			}
			var nbrs []graph.Node
			for _, u := range g.Neighbors(graph.Node(v)) {
				if alive[u] {
					nbrs = append(nbrs, u)
				}
			}
			if g.IsClique(graph.NewNodeSet(nbrs...)) {
				alive[v] = false
				found = true
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// bruteFillCost counts non-adjacent pairs of N(v) directly.
func bruteFillCost(g *graph.Graph, v graph.Node) int {
	nbrs := g.Neighbors(v)
	missing := 0
	for i := 0; i < len(nbrs); i++ {
		for j := i + 1; j < len(nbrs); j++ {
			if !g.HasEdge(nbrs[i], nbrs[j]) {
				missing++
			}
		}
	}

	return missing
}
