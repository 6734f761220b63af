package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mintri/graph"
)

// GraphSuite covers construction, edge lifecycle and queries.
type GraphSuite struct {
	suite.Suite
	g *graph.Graph
}

// SetupTest builds the path 0–1–2–3 plus an isolated node 4.
func (s *GraphSuite) SetupTest() {
	s.g = graph.New(5)
	require.NoError(s.T(), s.g.AddEdge(0, 1))
	require.NoError(s.T(), s.g.AddEdge(1, 2))
	require.NoError(s.T(), s.g.AddEdge(2, 3))
}

func (s *GraphSuite) TestCounts() {
	require := require.New(s.T())
	require.Equal(5, s.g.NodeCount())
	require.Equal(3, s.g.EdgeCount())
	require.Equal(graph.NodeSet{0, 1, 2, 3, 4}, s.g.Nodes())
	require.Equal(2, s.g.Degree(1))
	require.Equal(0, s.g.Degree(4))
	require.Equal(0, s.g.Degree(99), "out-of-range degree is zero")
}

func (s *GraphSuite) TestAddEdgeIdempotentAndSymmetric() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 0))
	require.Equal(3, s.g.EdgeCount(), "re-adding an edge must not change the count")
	require.True(s.g.HasEdge(0, 1))
	require.True(s.g.HasEdge(1, 0))
	require.False(s.g.HasEdge(0, 2))
}

func (s *GraphSuite) TestAddEdgeErrors() {
	require := require.New(s.T())
	require.True(errors.Is(s.g.AddEdge(0, 5), graph.ErrNodeOutOfRange))
	require.True(errors.Is(s.g.AddEdge(-1, 2), graph.ErrNodeOutOfRange))
	require.True(errors.Is(s.g.AddEdge(2, 2), graph.ErrLoopNotAllowed))
	require.Equal(3, s.g.EdgeCount())
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	require.NoError(s.g.RemoveEdge(2, 1))
	require.False(s.g.HasEdge(1, 2))
	require.Equal(2, s.g.EdgeCount())
	require.ErrorIs(s.g.RemoveEdge(1, 2), graph.ErrEdgeNotFound)
	require.ErrorIs(s.g.RemoveEdge(1, 7), graph.ErrNodeOutOfRange)
}

func (s *GraphSuite) TestNeighborsSorted() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 4))
	require.Equal(graph.NodeSet{0, 2, 4}, s.g.Neighbors(1))
	require.Empty(s.g.Neighbors(4 + 10))
}

func (s *GraphSuite) TestEdgesSorted() {
	require.Equal(s.T(), []graph.Edge{{0, 1}, {1, 2}, {2, 3}}, s.g.Edges())
}

func (s *GraphSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	c := s.g.Clone()
	require.True(c.Equal(s.g))
	require.NoError(c.AddEdge(0, 3))
	require.False(s.g.HasEdge(0, 3), "mutating the clone must not touch the source")
	require.False(c.Equal(s.g))
	require.True(c.Contains(s.g))
	require.False(s.g.Contains(c))
}

func (s *GraphSuite) TestAddNode() {
	require := require.New(s.T())
	v := s.g.AddNode()
	require.Equal(graph.Node(5), v)
	require.Equal(6, s.g.NodeCount())
	require.NoError(s.g.AddEdge(v, 0))
}

func (s *GraphSuite) TestComponentsExcluding() {
	require := require.New(s.T())
	require.Equal([]graph.NodeSet{{0, 1, 2, 3}, {4}}, s.g.Components())
	require.Equal([]graph.NodeSet{{0}, {2, 3}, {4}}, s.g.ComponentsExcluding(graph.NewNodeSet(1)))
	require.Empty(s.g.ComponentsExcluding(s.g.Nodes()))
}

func (s *GraphSuite) TestNeighborsOfSet() {
	require := require.New(s.T())
	require.Equal(graph.NodeSet{0, 3}, s.g.NeighborsOfSet(graph.NewNodeSet(1, 2)))
	require.Empty(s.g.NeighborsOfSet(graph.NewNodeSet(4)))
}

func (s *GraphSuite) TestSaturate() {
	require := require.New(s.T())
	set := graph.NewNodeSet(0, 1, 2, 3)
	require.False(s.g.IsClique(set))
	require.Equal([]graph.Edge{{0, 2}, {0, 3}, {1, 3}}, s.g.MissingEdges(set))

	added := s.g.Saturate([]graph.NodeSet{set, graph.NewNodeSet(0, 2)})
	require.Equal([]graph.Edge{{0, 2}, {0, 3}, {1, 3}}, added)
	require.True(s.g.IsClique(set))
	require.Equal(6, s.g.EdgeCount())

	// Saturating cliques is a no-op.
	require.Empty(s.g.Saturate([]graph.NodeSet{set}))
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestNodeSet verifies normalization and the canonical key.
func TestNodeSet(t *testing.T) {
	raw := []graph.Node{3, 1, 3, 2}
	s := graph.NewNodeSet(raw...)
	require.Equal(t, graph.NodeSet{1, 2, 3}, s)
	require.Equal(t, []graph.Node{3, 1, 3, 2}, raw, "input must not be modified")
	require.True(t, s.Contains(2))
	require.False(t, s.Contains(4))
	require.Equal(t, "1,2,3", s.Key())
	require.Equal(t, graph.NewNodeSet(2, 3, 1).Key(), s.Key())
	require.Equal(t, "", graph.NewNodeSet().Key())
	require.True(t, s.Equal(graph.NodeSet{1, 2, 3}))
}

// TestNewEdge checks endpoint normalization.
func TestNewEdge(t *testing.T) {
	require.Equal(t, graph.Edge{U: 1, V: 4}, graph.NewEdge(4, 1))
	require.Equal(t, graph.Edge{U: 1, V: 4}, graph.NewEdge(1, 4))
}

// TestNewNegative ensures a negative size degrades to an empty graph.
func TestNewNegative(t *testing.T) {
	g := graph.New(-3)
	require.Equal(t, 0, g.NodeCount())
	require.Empty(t, g.Components())
}
