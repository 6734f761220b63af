// Package mintri computes minimal and near-minimal triangulations of
// undirected graphs: chordal supergraphs obtained by adding fill edges.
//
// What is mintri?
//
//	A small, deterministic library that brings together:
//		• graph: dense integer-node undirected graphs with component and
//		  saturation primitives
//		• nodequeue: indexed max-priority queue over node ids
//		• chordal: MCS orderings, perfect elimination orders, maximal cliques
//		• triangulate: MCS-M and LB-Triang (natural, min-degree, min-fill)
//		• builder: deterministic generators (cycles, grids, wheels, G(n,p))
//
// Why mintri?
//
//   - Reproducible: every tie is broken by smallest node id
//   - Observable: charmbracelet/log Debug records plus OnVisit / OnFill hooks
//   - Verifiable: results report chordality, maximal cliques and minimality
//
// Quick ASCII example:
//
//	    0───1          0───1
//	    │   │   ==>    │ ╱ │
//	    3───2          3───2
//
//	the chordless 4-cycle gains the single fill edge {1,3}.
//
//	go get github.com/katalvlaran/mintri
package mintri
