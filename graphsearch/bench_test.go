package graphsearch_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pathlab/graphsearch"
	"github.com/katalvlaran/pathlab/grid"
)

// BenchmarkDijkstra_GridGraph measures Dijkstra on the dense graph of a
// seeded 30×30 grid.
func BenchmarkDijkstra_GridGraph(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	cells := make([][]grid.Cell, 30)
	for r := range cells {
		cells[r] = make([]grid.Cell, 30)
		for c := range cells[r] {
			if rng.Float64() < 0.2 {
				cells[r][c] = grid.Blocked
			}
		}
	}
	cells[0][0] = grid.Passable
	g, err := grid.New(cells)
	if err != nil {
		b.Fatalf("setup grid.New failed: %v", err)
	}
	gg := g.ToGraph()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = graphsearch.Dijkstra(gg, 0)
	}
}
