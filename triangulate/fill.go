// SPDX-License-Identifier: MIT
// Package: mintri/triangulate
//
// fill.go - fill-in estimation and the min-degree / min-fill ordering selectors.

package triangulate

import (
	"github.com/katalvlaran/mintri/graph"
)

// FillCost returns the number of edges missing from N(v) for it to be a
// clique: for each neighbor u, count the neighbors of v that are neither u
// nor adjacent to u, sum, and halve (each missing pair is seen from both ends).
// Neighborhoods of size 0 or 1 cost 0.
//
// Complexity: O(d²) for d = deg(v).
func FillCost(g *graph.Graph, v graph.Node) int {
	nbrs := g.Neighbors(v)
	if len(nbrs) < 2 {
		return 0
	}

	twice := 0
	for _, u := range nbrs {
		for _, w := range nbrs {
			if w != u && !g.HasEdge(u, w) {
				twice++
			}
		}
	}

	return twice / 2
}

// PickMinDegree returns the candidate with the fewest neighbors in g.
// Ties go to the first candidate in ascending id order.
// Returns ErrNoCandidates if candidates is empty.
func PickMinDegree(g *graph.Graph, candidates graph.NodeSet) (graph.Node, error) {
	return pickMin(candidates, g.Degree)
}

// PickMinFill returns the candidate with the smallest FillCost in g.
// Ties go to the first candidate in ascending id order.
// Returns ErrNoCandidates if candidates is empty.
func PickMinFill(g *graph.Graph, candidates graph.NodeSet) (graph.Node, error) {
	return pickMin(candidates, func(v graph.Node) int { return FillCost(g, v) })
}

// pickMin returns the first candidate minimizing score.
func pickMin(candidates graph.NodeSet, score func(graph.Node) int) (graph.Node, error) {
	if len(candidates) == 0 {
		return 0, ErrNoCandidates
	}
	best, bestScore := candidates[0], score(candidates[0])
	for _, v := range candidates[1:] {
		if s := score(v); s < bestScore {
			best, bestScore = v, s
		}
	}

	return best, nil
}
