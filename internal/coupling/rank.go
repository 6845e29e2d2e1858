package coupling

import "sort"

// WeightedEdge is a directed (source, target) pair with its accumulated
// co-change weight. Used by reporting surfaces that need the strongest
// couples first; not one of the graph's tabular projections.
type WeightedEdge struct {
	From   string
	To     string
	Weight int
}

// RankedEdges flattens the graph into weighted pairs, heaviest first, ties
// broken lexicographically so the ranking is stable across runs.
func RankedEdges(g *Graph) []WeightedEdge {
	var edges []WeightedEdge

	for _, node := range g.nodes {
		for _, target := range node.targetOrder {
			edges = append(edges, WeightedEdge{
				From:   node.Path,
				To:     target,
				Weight: node.edges[target],
			})
		}
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight > edges[j].Weight
		}

		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}

		return edges[i].To < edges[j].To
	})

	return edges
}
