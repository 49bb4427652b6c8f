package graph

import (
	"fmt"
	"math"
)

// New returns a graph with n nodes and no edges.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeNodeCount, n)
	}
	g := &Graph{nodeCount: n, cost: make([][]float64, n)}
	for i := range g.cost {
		row := make([]float64, n)
		for j := range row {
			row[j] = Inf
		}
		g.cost[i] = row
	}

	return g, nil
}

// FromMatrix builds a graph from a square cost matrix, deep-copying it.
// Inf entries mean "no edge"; diagonal entries are ignored.
func FromMatrix(cost [][]float64) (*Graph, error) {
	n := len(cost)
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for i, row := range cost {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrNonSquare, i, len(row), n)
		}
		for j, c := range row {
			if i == j {
				continue
			}
			if err = validateCost(i, j, c); err != nil {
				return nil, err
			}
			g.cost[i][j] = c
		}
	}

	return g, nil
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.nodeCount }

// AddNode appends a node with no edges and returns its ID.
func (g *Graph) AddNode() int {
	id := g.nodeCount
	g.nodeCount++
	for i := range g.cost {
		g.cost[i] = append(g.cost[i], Inf)
	}
	row := make([]float64, g.nodeCount)
	for j := range row {
		row[j] = Inf
	}
	g.cost = append(g.cost, row)

	return id
}

// AddEdge sets the directed edge u→v to cost c, replacing any previous cost.
// Passing Inf removes the edge.
func (g *Graph) AddEdge(u, v int, c float64) error {
	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}
	if err := validateCost(u, v, c); err != nil {
		return err
	}
	g.cost[u][v] = c

	return nil
}

// AddUndirectedEdge sets both u→v and v→u to cost c.
func (g *Graph) AddUndirectedEdge(u, v int, c float64) error {
	if err := g.AddEdge(u, v, c); err != nil {
		return err
	}

	return g.AddEdge(v, u, c)
}

// Cost returns the cost of u→v, or Inf when there is no such edge, the
// endpoints are out of range, or u == v.
func (g *Graph) Cost(u, v int) float64 {
	if u == v || u < 0 || v < 0 || u >= g.nodeCount || v >= g.nodeCount {
		return Inf
	}

	return g.cost[u][v]
}

// HasEdge reports whether u→v exists.
func (g *Graph) HasEdge(u, v int) bool {
	return !math.IsInf(g.Cost(u, v), 1)
}

// Neighbors returns the targets of u's outgoing edges in ascending ID order.
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.nodeCount {
		return nil
	}
	var out []int
	for v := 0; v < g.nodeCount; v++ {
		if g.HasEdge(u, v) {
			out = append(out, v)
		}
	}

	return out
}

// Edges lists every directed edge ordered by (From, To).
func (g *Graph) Edges() []Edge {
	var out []Edge
	for u := 0; u < g.nodeCount; u++ {
		for v := 0; v < g.nodeCount; v++ {
			if g.HasEdge(u, v) {
				out = append(out, Edge{From: u, To: v, Cost: g.cost[u][v]})
			}
		}
	}

	return out
}

// Matrix returns a deep copy of the cost matrix.
func (g *Graph) Matrix() [][]float64 {
	out := make([][]float64, g.nodeCount)
	for i := range out {
		out[i] = make([]float64, g.nodeCount)
		copy(out[i], g.cost[i])
	}

	return out
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	return &Graph{nodeCount: g.nodeCount, cost: g.Matrix()}
}

func (g *Graph) checkNode(u int) error {
	if u < 0 || u >= g.nodeCount {
		return fmt.Errorf("%w: %d (node count %d)", ErrNodeOutOfRange, u, g.nodeCount)
	}

	return nil
}

func validateCost(u, v int, c float64) error {
	switch {
	case math.IsNaN(c):
		return fmt.Errorf("%w: edge %d→%d", ErrNaNCost, u, v)
	case c < 0:
		return fmt.Errorf("%w: edge %d→%d cost=%g", ErrNegativeCost, u, v, c)
	}

	return nil
}
