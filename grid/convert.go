package grid

import "github.com/katalvlaran/pathlab/graph"

// ToGraph converts the grid into a node-link graph. Cell p becomes node
// Index(p); every pair of passable 4-neighbors is joined by unit-cost edges
// in both directions. Blocked cells stay as isolated nodes so node IDs keep
// matching row-major indices.
// Complexity: O(R×C) edges, O((R×C)²) memory for the dense cost matrix.
func (g *Grid) ToGraph() *graph.Graph {
	out, _ := graph.New(g.Size())
	var nbrs []Position
	for i, cell := range g.cells {
		if cell == Blocked {
			continue
		}
		nbrs = g.AppendNeighbors(nbrs[:0], g.Position(i))
		for _, n := range nbrs {
			_ = out.AddEdge(i, g.Index(n), 1)
		}
	}

	return out
}
