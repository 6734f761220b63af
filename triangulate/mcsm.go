// SPDX-License-Identifier: MIT
// Package: mintri/triangulate
//
// mcsm.go - MCS-M minimal triangulation.
//
// Algorithm:
//   - Pop the unhandled vertex v of maximum weight (ties: smallest id).
//   - From v's unhandled neighbors, search the unhandled part of the graph in
//     weight-indexed buckets processed in increasing order: a vertex u reached
//     at level L is a new neighbor of v iff weight(u) > L, i.e. there is a path
//     v..u whose interior weights are all below weight(u).
//   - Increase the weight of every such u and add the edge {u, v}.
//
// Complexity: O(V·(V + E)) time, O(V) auxiliary space per step.
//
// Determinism:
//   - The priority queue breaks ties by smallest id; neighbors are scanned in
//     ascending order. Equal inputs give identical fill.

package triangulate

import (
	"fmt"

	"github.com/katalvlaran/mintri/graph"
	"github.com/katalvlaran/mintri/nodequeue"
)

// MCSM returns a minimal triangulation of g: a chordal supergraph from which
// no single added edge can be removed without losing chordality. The input is
// not modified. Reversing the visit order (ChordalGraph.Order) yields a
// minimal elimination ordering.
//
// Errors: ErrGraphNil, ErrOptionViolation, or a hook error wrapped in ErrHook.
func MCSM(g *graph.Graph, opts ...Option) (*ChordalGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return runMCSM(g, o)
}

func runMCSM(g *graph.Graph, o Options) (*ChordalGraph, error) {
	r := newRunner(g, HeuristicMCSM, o)
	n := g.NodeCount()
	q := nodequeue.New(n)
	handled := make([]bool, n)
	reached := make([]bool, n)
	// Weights stay below n, so n buckets cover every level.
	buckets := make([][]graph.Node, n)

	for !q.IsEmpty() {
		v, err := q.Pop()
		if err != nil {
			return nil, fmt.Errorf("triangulate: MCS-M: %w", err)
		}
		handled[v] = true
		r.visit(v)

		clear(reached)
		var toUpdate []graph.Node
		for _, u := range g.Neighbors(v) {
			if handled[u] {
				continue
			}
			toUpdate = append(toUpdate, u)
			reached[u] = true
			w := q.Weight(u)
			buckets[w] = append(buckets[w], u)
		}

		for level := 0; level < n; level++ {
			for len(buckets[level]) > 0 {
				last := len(buckets[level]) - 1
				w := buckets[level][last]
				buckets[level] = buckets[level][:last]

				for _, u := range g.Neighbors(w) {
					if handled[u] || reached[u] {
						continue
					}
					wu := q.Weight(u)
					if wu > level {
						toUpdate = append(toUpdate, u)
					}
					reached[u] = true
					next := max(wu, level)
					buckets[next] = append(buckets[next], u)
				}
			}
		}

		filled := 0
		for _, u := range toUpdate {
			if err = q.IncreaseWeight(u); err != nil {
				return nil, fmt.Errorf("triangulate: MCS-M: %w", err)
			}
			if !r.res.HasEdge(u, v) {
				filled++
			}
			if err = r.addEdge(u, v); err != nil {
				return nil, err
			}
		}
		if filled > 0 {
			o.Logger.Debug("fill edges added", "vertex", v, "count", filled)
		}
	}

	return r.finish(), nil
}
