// SPDX-License-Identifier: MIT
// Package: mintri/triangulate
//
// separators.go - minimal separators included in a vertex neighborhood
// ("substars") and their saturation.
//
// Contract:
//   - g is the original graph and is never mutated.
//   - working is the partially triangulated graph; only Saturate touches it.

package triangulate

import (
	"github.com/katalvlaran/mintri/graph"
)

// Substars returns the minimal separators of g contained in the neighborhood
// of v: remove v and its neighbors in working from g, and collect N_g(C) for
// every remaining component C. Equal separators are reported once, in order
// of first discovery. Empty neighborhoods (components not attached to the
// removed set) are skipped; saturating them is a no-op.
//
// Complexity: O(V + E) for the component search plus O(Σ deg) per component.
func Substars(g, working *graph.Graph, v graph.Node) []graph.NodeSet {
	removed := graph.NewNodeSet(append(working.Neighbors(v), v)...)

	var seps []graph.NodeSet
	seen := make(map[string]struct{})
	for _, comp := range g.ComponentsExcluding(removed) {
		sep := g.NeighborsOfSet(comp)
		if len(sep) == 0 {
			continue
		}
		key := sep.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		seps = append(seps, sep)
	}

	return seps
}

// MakeVertexLBSimplicial saturates every substar of v into a clique of
// working and returns the edges that were added. Calling it again for the
// same v adds nothing.
func MakeVertexLBSimplicial(g, working *graph.Graph, v graph.Node) []graph.Edge {
	return working.Saturate(Substars(g, working, v))
}
