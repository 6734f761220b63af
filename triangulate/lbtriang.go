// SPDX-License-Identifier: MIT
// Package: mintri/triangulate
//
// lbtriang.go - LB-Triang: saturate the minimal separators included in each
// vertex neighborhood, one vertex at a time.
//
// Ordering:
//   - OrderNatural visits 0..n-1 and ignores the unhandled set.
//   - OrderMinDegree / OrderMinFill re-score every unhandled vertex on the
//     working graph at each step, so earlier saturations steer later choices.
//     Scores are recomputed from scratch each iteration.
//
// Complexity: O(V·(V + E)) for the separator searches, plus O(V²·Δ²) for
// min-fill scoring.

package triangulate

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/mintri/graph"
)

// LBTriang triangulates g with the LB-Triang engine under the given vertex
// ordering. The input is not modified.
//
// Errors: ErrGraphNil, ErrUnknownOrdering, ErrOptionViolation, or a hook
// error wrapped in ErrHook.
func LBTriang(g *graph.Graph, order Ordering, opts ...Option) (*ChordalGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	h, err := order.heuristic()
	if err != nil {
		return nil, err
	}
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	return runLBTriang(g, h, o)
}

// heuristic maps an ordering to its LB-Triang heuristic.
func (o Ordering) heuristic() (Heuristic, error) {
	switch o {
	case OrderNatural:
		return HeuristicLBTriang, nil
	case OrderMinDegree:
		return HeuristicMinDegreeLBTriang, nil
	case OrderMinFill:
		return HeuristicMinFillLBTriang, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrUnknownOrdering, o)
	}
}

func runLBTriang(g *graph.Graph, h Heuristic, o Options) (*ChordalGraph, error) {
	r := newRunner(g, h, o)
	n := g.NodeCount()
	order := h.ordering()

	if order == OrderNatural {
		for v := graph.Node(0); int(v) < n; v++ {
			if err := r.saturate(g, v); err != nil {
				return nil, err
			}
		}

		return r.finish(), nil
	}

	pick := PickMinDegree
	if order == OrderMinFill {
		pick = PickMinFill
	}
	unhandled := g.Nodes()
	for i := 0; i < n; i++ {
		v, err := pick(r.res, unhandled)
		if err != nil {
			return nil, fmt.Errorf("triangulate: %v LB-Triang step %d: %w", order, i, err)
		}
		if err = r.saturate(g, v); err != nil {
			return nil, err
		}
		idx, _ := slices.BinarySearch(unhandled, v)
		unhandled = slices.Delete(unhandled, idx, idx+1)
	}

	return r.finish(), nil
}

// saturate makes v LB-simplicial in the result graph.
func (r *runner) saturate(g *graph.Graph, v graph.Node) error {
	r.visit(v)
	added := MakeVertexLBSimplicial(g, r.res, v)
	if len(added) > 0 {
		r.opts.Logger.Debug("fill edges added", "vertex", v, "count", len(added))
	}

	return r.recordFill(added...)
}
