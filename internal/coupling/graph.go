// Package coupling builds a weighted, directed co-change graph from the
// changed-file sequences of commit transitions.
package coupling

import "sort"

// FileNode accumulates outgoing co-change weights for a single file path.
// Edge weights live in an explicit map with zero-default lookup; targetOrder
// remembers the order targets were first recorded so edge listings stay
// stable without relying on map iteration.
type FileNode struct {
	Path string

	edges       map[string]int
	targetOrder []string
}

func newFileNode(path string) *FileNode {
	return &FileNode{Path: path, edges: map[string]int{}}
}

// Weight returns the accumulated co-change count toward target. Absent
// targets report zero.
func (n *FileNode) Weight(target string) int {
	return n.edges[target]
}

// Targets returns the recorded target paths in first-recorded order.
func (n *FileNode) Targets() []string {
	out := make([]string, len(n.targetOrder))
	copy(out, n.targetOrder)

	return out
}

func (n *FileNode) bump(target string) {
	if _, seen := n.edges[target]; !seen {
		n.targetOrder = append(n.targetOrder, target)
	}

	n.edges[target]++
}

// Graph is an ordered, deduplicated collection of FileNodes keyed by path.
// Nodes stay in insertion order until Sort is called. A target path may be
// recorded on a node before (or without ever) appearing as a node itself.
type Graph struct {
	nodes []*FileNode
	index map[string]*FileNode
}

// NewGraph returns an empty coupling graph.
func NewGraph() *Graph {
	return &Graph{index: map[string]*FileNode{}}
}

// Len returns the number of distinct source paths in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns the node for path, if present.
func (g *Graph) Node(path string) (*FileNode, bool) {
	node, ok := g.index[path]

	return node, ok
}

// Add locates or creates the node for path and increments its weight toward
// every element of targets by one. Duplicate targets compound within a single
// call; repeated calls for the same path accumulate onto the same node.
// Self-references are never recorded.
func (g *Graph) Add(path string, targets []string) {
	node, ok := g.index[path]
	if !ok {
		node = newFileNode(path)
		g.index[path] = node
		g.nodes = append(g.nodes, node)
	}

	for _, target := range targets {
		if target == path {
			continue
		}

		node.bump(target)
	}
}

// Sort reorders the nodes by path, ascending. Idempotent; weights and
// membership are untouched.
func (g *Graph) Sort() {
	sort.Slice(g.nodes, func(i, j int) bool {
		return g.nodes[i].Path < g.nodes[j].Path
	})
}

// Nodes returns the node paths in graph order.
func (g *Graph) Nodes() []string {
	paths := make([]string, len(g.nodes))
	for i, node := range g.nodes {
		paths[i] = node.Path
	}

	return paths
}

// Edge is a directed (source, target) pair. Weights are not part of this
// projection; presence alone records that source co-changed with target.
type Edge struct {
	From string
	To   string
}

// Edges returns every recorded (source, target) pair, nodes in graph order,
// targets in each node's first-recorded order.
func (g *Graph) Edges() []Edge {
	var edges []Edge

	for _, node := range g.nodes {
		for _, target := range node.targetOrder {
			edges = append(edges, Edge{From: node.Path, To: target})
		}
	}

	return edges
}

// Matrix returns the adjacency matrix projection: the header holds node
// paths in graph order, rows[i][j] holds node i's accumulated weight toward
// the path at header[j], zero when that pair was never recorded. Row and
// column order are identical.
func (g *Graph) Matrix() (header []string, rows [][]int) {
	header = g.Nodes()

	rows = make([][]int, len(g.nodes))
	for i, node := range g.nodes {
		row := make([]int, len(header))
		for j, target := range header {
			row[j] = node.Weight(target)
		}

		rows[i] = row
	}

	return header, rows
}
