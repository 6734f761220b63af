package triangulate_test

import (
	"fmt"

	"github.com/katalvlaran/mintri/builder"
	"github.com/katalvlaran/mintri/graph"
	"github.com/katalvlaran/mintri/triangulate"
)

// ExampleMCSM triangulates the chordless 5-cycle 0–1–2–3–4–0.
func ExampleMCSM() {
	g, _ := builder.BuildGraph(nil, builder.Cycle(5))

	h, err := triangulate.MCSM(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("fill:", h.Fill())
	fmt.Println("edges:", h.EdgeCount(), "minimal:", h.IsMinimal())
	// Output:
	// fill: [{1 4} {2 4}]
	// edges: 7 minimal: true
}

// ExampleLBTriang shows how the ordering changes the chords of a 5-cycle.
func ExampleLBTriang() {
	g, _ := builder.BuildGraph(nil, builder.Cycle(5))

	for _, o := range []triangulate.Ordering{triangulate.OrderNatural, triangulate.OrderMinDegree} {
		h, err := triangulate.LBTriang(g, o)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(o, h.Fill())
	}
	// Output:
	// natural [{1 4} {2 4}]
	// min-degree [{1 3} {1 4}]
}

// ExampleTriangulator_Triangulate runs every heuristic on a 4-cycle.
func ExampleTriangulator_Triangulate() {
	g := graph.New(4)
	for _, e := range []graph.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 0, V: 3}} {
		_ = g.AddEdge(e.U, e.V)
	}

	for _, h := range triangulate.Heuristics() {
		t, err := triangulate.New(h)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		res, err := t.Triangulate(g)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-20s %v\n", h, res.Fill())
	}
	// Output:
	// mcs-m                [{1 3}]
	// lb-triang            [{1 3}]
	// min-degree-lb-triang [{1 3}]
	// min-fill-lb-triang   [{1 3}]
}

func ExampleParseHeuristic() {
	h, err := triangulate.ParseHeuristic("MIN_DEGREE_LB_TRIANG")
	fmt.Println(h, err)
	// Output:
	// min-degree-lb-triang <nil>
}

// ExampleSubstars lists the separators around a vertex of a 4-cycle.
func ExampleSubstars() {
	g, _ := builder.BuildGraph(nil, builder.Cycle(4))

	fmt.Println(triangulate.Substars(g, g, 0))
	fmt.Println(triangulate.FillCost(g, 0))
	// Output:
	// [[1 3]]
	// 1
}

func ExampleWithOnFill() {
	g, _ := builder.BuildGraph(nil, builder.Cycle(4), builder.Cycle(4))

	_, err := triangulate.MCSM(g, triangulate.WithOnFill(func(e graph.Edge) error {
		fmt.Println("added", e.U, e.V)
		return nil
	}))
	fmt.Println(err)
	// Output:
	// added 1 3
	// added 5 7
	// <nil>
}
