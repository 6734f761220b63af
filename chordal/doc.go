// Package chordal recognizes chordal graphs and extracts their structure.
//
// A graph is chordal when every cycle of length ≥ 4 has a chord. Equivalently,
// it admits a perfect elimination ordering: an ordering in which each node's
// later neighbors form a clique. Maximum Cardinality Search finds such an
// ordering whenever one exists.
//
// Provided:
//
//   - MCSOrder(g)                 - visit order of Maximum Cardinality Search
//   - PerfectEliminationOrder(g)  - reverse MCS order, verified; ErrNotChordal otherwise
//   - IsChordal(g)                - convenience predicate
//   - MaximalCliques(g)           - at most n maximal cliques of a chordal graph
//
// The triangulate package uses these to validate and decompose its results.
package chordal
