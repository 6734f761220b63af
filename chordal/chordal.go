// SPDX-License-Identifier: MIT
// Package: mintri/chordal
//
// chordal.go - Maximum Cardinality Search, perfect elimination orderings and
// maximal cliques of chordal graphs.
//
// Contract:
//   - MCSOrder visits the unvisited node with the most visited neighbors,
//     ties to the smallest id (nodequeue).
//   - The reverse of an MCS visit order is a perfect elimination ordering iff
//     the graph is chordal (Tarjan–Yannakakis).
//
// Complexity:
//   - MCSOrder: O((V + E)·log V).
//   - PerfectEliminationOrder, IsChordal: O((V + E)·log V).
//   - MaximalCliques: O(V + Σ_{edges} |F|) where F is the follower set.

package chordal

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/mintri/graph"
	"github.com/katalvlaran/mintri/nodequeue"
)

// ErrNotChordal is returned when a graph has a chordless cycle of length ≥ 4.
var ErrNotChordal = errors.New("chordal: graph is not chordal")

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("chordal: graph is nil")

// MCSOrder returns the Maximum Cardinality Search visit order of g.
// A nil graph yields nil.
func MCSOrder(g *graph.Graph) []graph.Node {
	if g == nil {
		return nil
	}
	n := g.NodeCount()
	q := nodequeue.New(n)
	order := make([]graph.Node, 0, n)
	for !q.IsEmpty() {
		v, err := q.Pop()
		if err != nil {
			break // unreachable: guarded by IsEmpty
		}
		order = append(order, v)
		for _, u := range g.Neighbors(v) {
			if !q.Removed(u) {
				_ = q.IncreaseWeight(u) // u is in range and unpopped
			}
		}
	}

	return order
}

// PerfectEliminationOrder returns a perfect elimination ordering of g: every
// node's neighbors that appear later in the ordering form a clique.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrNotChordal when no such ordering exists.
func PerfectEliminationOrder(g *graph.Graph) ([]graph.Node, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	peo := MCSOrder(g)
	slices.Reverse(peo)

	pos := positions(peo, g.NodeCount())
	for _, v := range peo {
		followers := followersOf(g, v, pos)
		if len(followers) < 2 {
			continue
		}
		// parent is the earliest follower; the rest must be its neighbors.
		parent := followers[0]
		for _, u := range followers[1:] {
			if !g.HasEdge(parent, u) {
				return nil, fmt.Errorf("%w: %d and %d are non-adjacent followers of %d",
					ErrNotChordal, parent, u, v)
			}
		}
	}

	return peo, nil
}

// IsChordal reports whether g has no chordless cycle of length ≥ 4.
// A nil graph reports false.
func IsChordal(g *graph.Graph) bool {
	_, err := PerfectEliminationOrder(g)

	return err == nil
}

// MaximalCliques returns the maximal cliques of a chordal graph, one per
// ordering position that starts a maximal clique, each sorted ascending.
// A chordal graph on n nodes has at most n maximal cliques.
//
// Errors:
//   - ErrGraphNil for a nil graph.
//   - ErrNotChordal for a non-chordal graph.
func MaximalCliques(g *graph.Graph) ([]graph.NodeSet, error) {
	peo, err := PerfectEliminationOrder(g)
	if err != nil {
		return nil, err
	}
	pos := positions(peo, g.NodeCount())

	// candidate[v] = {v} ∪ followers(v); every maximal clique is a candidate.
	candidate := make([]graph.NodeSet, g.NodeCount())
	for _, v := range peo {
		candidate[v] = graph.NewNodeSet(append(followersOf(g, v, pos), v)...)
	}

	var cliques []graph.NodeSet
	for _, v := range peo {
		if !dominated(g, v, candidate, pos) {
			cliques = append(cliques, candidate[v])
		}
	}

	return cliques, nil
}

// dominated reports whether candidate[v] is contained in candidate[w] for some
// neighbor w eliminated before v. Any clique strictly containing candidate[v]
// is contained in the candidate of its earliest member, which is such a w.
func dominated(g *graph.Graph, v graph.Node, candidate []graph.NodeSet, pos []int) bool {
	for _, w := range g.Neighbors(v) {
		if pos[w] > pos[v] {
			continue
		}
		if isSubset(candidate[v], candidate[w]) {
			return true
		}
	}

	return false
}

// followersOf returns v's neighbors that appear after v, in ordering position order.
func followersOf(g *graph.Graph, v graph.Node, pos []int) []graph.Node {
	var out []graph.Node
	for _, u := range g.Neighbors(v) {
		if pos[u] > pos[v] {
			out = append(out, u)
		}
	}
	slices.SortFunc(out, func(a, b graph.Node) int { return pos[a] - pos[b] })

	return out
}

func positions(order []graph.Node, n int) []int {
	pos := make([]int, n)
	for i, v := range order {
		pos[v] = i
	}

	return pos
}

func isSubset(a, b graph.NodeSet) bool {
	for _, x := range a {
		if !b.Contains(x) {
			return false
		}
	}

	return true
}
