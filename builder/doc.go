// Package builder provides deterministic graph fixtures for the triangulation
// engines: classic topologies that are chordal (paths, stars, complete graphs)
// or not (cycles, wheels, grids, complete bipartite graphs), plus seeded
// random graphs.
//
// The package offers:
//
//   - BuildGraph(bopts, cons...): one orchestrator that applies Constructors in order.
//   - Constructors: Cycle, Path, Star, Wheel, Complete, CompleteBipartite, Grid, RandomSparse.
//   - Options: WithSeed, WithRand.
//
// Guarantees:
//
//   - Every constructor appends its own fresh nodes, so
//     BuildGraph(nil, Cycle(4), Cycle(4)) is the disjoint union C4 ⊎ C4 on nodes 0..7.
//   - Deterministic node numbering and edge emission; RandomSparse is
//     reproducible for a fixed seed.
//   - Invalid parameters return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource); constructors never panic.
//
// See individual constructor documentation for node layout and complexity.
package builder
