package coupling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankedEdges_HeaviestFirst(t *testing.T) {
	t.Parallel()

	g := NewGraph()
	Accumulate(g, []string{"x.rb", "y.rb"})
	Accumulate(g, []string{"x.rb", "y.rb"})
	Accumulate(g, []string{"a.rb", "b.rb"})

	edges := RankedEdges(g)

	require.Len(t, edges, 2)
	assert.Equal(t, WeightedEdge{From: "x.rb", To: "y.rb", Weight: 2}, edges[0])
	assert.Equal(t, WeightedEdge{From: "a.rb", To: "b.rb", Weight: 1}, edges[1])
}

func TestRankedEdges_TiesBrokenByPath(t *testing.T) {
	t.Parallel()

	g := NewGraph()
	g.Add("b.rb", []string{"c.rb"})
	g.Add("a.rb", []string{"c.rb"})
	g.Add("a.rb", []string{"b.rb"})

	edges := RankedEdges(g)

	require.Len(t, edges, 3)
	assert.Equal(t, WeightedEdge{From: "a.rb", To: "b.rb", Weight: 1}, edges[0])
	assert.Equal(t, WeightedEdge{From: "a.rb", To: "c.rb", Weight: 1}, edges[1])
	assert.Equal(t, WeightedEdge{From: "b.rb", To: "c.rb", Weight: 1}, edges[2])
}

func TestRankedEdges_EmptyGraph(t *testing.T) {
	t.Parallel()

	assert.Empty(t, RankedEdges(NewGraph()))
}
