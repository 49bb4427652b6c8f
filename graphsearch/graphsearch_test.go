package graphsearch_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/graph"
	"github.com/katalvlaran/pathlab/graphsearch"
	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/gridsearch"
)

var inf = graph.Inf

// diamond builds an undirected graph where the cheap route to 1 and 3 goes
// through 2, and node 4 is isolated:
//
//	0 -4- 1 -1- 3
//	 \    |    /
//	  1   2   5
//	   \  |  /
//	     2
func diamond(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(5)
	require.NoError(t, err)
	for _, e := range []graph.Edge{
		{From: 0, To: 1, Cost: 4},
		{From: 0, To: 2, Cost: 1},
		{From: 2, To: 1, Cost: 2},
		{From: 1, To: 3, Cost: 1},
		{From: 2, To: 3, Cost: 5},
	} {
		require.NoError(t, g.AddUndirectedEdge(e.From, e.To, e.Cost))
	}

	return g
}

//----------------------------------------------------------------------------//
// All destinations
//----------------------------------------------------------------------------//

func TestDijkstra_AllDestinations(t *testing.T) {
	res, err := graphsearch.Dijkstra(diamond(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, res.Order)
	assert.Equal(t, []float64{0, 3, 1, 4, inf}, res.Cost)
	assert.Equal(t, []int{-1, 2, 0, 1, -1}, res.Parent)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 1, 3}, path)

	path, err = res.PathTo(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, path)

	_, err = res.PathTo(4)
	assert.ErrorIs(t, err, graphsearch.ErrNoPath)
	_, err = res.PathTo(9)
	assert.ErrorIs(t, err, graph.ErrNodeOutOfRange)
	assert.False(t, res.Reached(4))
	assert.True(t, res.Reached(3))
}

// TestBFS_FewestHops shows BFS costs follow the hop-minimal tree, which
// here is more expensive than Dijkstra's answer.
func TestBFS_FewestHops(t *testing.T) {
	res, err := graphsearch.BFS(diamond(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []int{-1, 0, 0, 1, -1}, res.Parent)
	assert.Equal(t, []float64{0, 4, 1, 5, inf}, res.Cost)
}

// TestDFS_CostTracking checks DFS records the cost of the branch it took.
func TestDFS_CostTracking(t *testing.T) {
	res, err := graphsearch.DFS(diamond(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []int{-1, 0, 1, 2, -1}, res.Parent)
	assert.Equal(t, []float64{0, 4, 6, 11, inf}, res.Cost)

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, path)
}

//----------------------------------------------------------------------------//
// Targets
//----------------------------------------------------------------------------//

func TestTargetStopsEarly(t *testing.T) {
	g := diamond(t)
	cases := []struct {
		alg    gridsearch.Algorithm
		target int
		order  []int
		path   []int
		cost   float64
	}{
		{gridsearch.AlgBFS, 2, []int{0, 1, 2}, []int{0, 2}, 1},
		{gridsearch.AlgDFS, 2, []int{0, 1, 2}, []int{0, 1, 2}, 6},
		{gridsearch.AlgDijkstra, 1, []int{0, 2, 1}, []int{0, 2, 1}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.alg.String(), func(t *testing.T) {
			res, err := graphsearch.Run(tc.alg, g, 0, graphsearch.WithTarget(tc.target))
			require.NoError(t, err)
			assert.Equal(t, tc.target, res.Target)
			assert.Equal(t, tc.order, res.Order)
			path, err := res.PathTo(tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.path, path)
			assert.Equal(t, tc.cost, res.Cost[tc.target])
		})
	}
}

func TestUnreachableTarget(t *testing.T) {
	for _, alg := range []gridsearch.Algorithm{gridsearch.AlgBFS, gridsearch.AlgDFS, gridsearch.AlgDijkstra} {
		res, err := graphsearch.Run(alg, diamond(t), 0, graphsearch.WithTarget(4))
		require.NoError(t, err, alg.String())
		assert.Len(t, res.Order, 4, "whole component explored")
		_, err = res.PathTo(4)
		assert.ErrorIs(t, err, graphsearch.ErrNoPath)
	}
}

func TestDirectedEdges(t *testing.T) {
	g, err := graph.FromMatrix([][]float64{
		{0, 2, inf},
		{inf, 0, 3},
		{inf, inf, 0},
	})
	require.NoError(t, err)

	res, err := graphsearch.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2, 5}, res.Cost)

	back, err := graphsearch.Dijkstra(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, back.Order)
	assert.False(t, back.Reached(0))
}

// TestDijkstra_TieLowestID checks equal costs settle the lower node first,
// even when the higher one was queued earlier.
func TestDijkstra_TieLowestID(t *testing.T) {
	g, err := graph.New(4)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 3, 2))
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))

	res, err := graphsearch.Dijkstra(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
}

//----------------------------------------------------------------------------//
// Errors and options
//----------------------------------------------------------------------------//

func TestErrors(t *testing.T) {
	g := diamond(t)
	for _, alg := range []gridsearch.Algorithm{gridsearch.AlgBFS, gridsearch.AlgDFS, gridsearch.AlgDijkstra} {
		t.Run(alg.String(), func(t *testing.T) {
			_, err := graphsearch.Run(alg, nil, 0)
			assert.ErrorIs(t, err, graphsearch.ErrGraphNil)
			_, err = graphsearch.Run(alg, g, 5)
			assert.ErrorIs(t, err, graphsearch.ErrSourceOutOfRange)
			_, err = graphsearch.Run(alg, g, -1)
			assert.ErrorIs(t, err, graphsearch.ErrSourceOutOfRange)
			_, err = graphsearch.Run(alg, g, 0, graphsearch.WithTarget(7))
			assert.ErrorIs(t, err, graphsearch.ErrTargetOutOfRange)
		})
	}
	_, err := graphsearch.Run(gridsearch.AlgAStar, g, 0)
	assert.ErrorIs(t, err, graphsearch.ErrUnsupportedAlgorithm)

	empty, err := graph.New(0)
	require.NoError(t, err)
	_, err = graphsearch.Dijkstra(empty, 0)
	assert.ErrorIs(t, err, graphsearch.ErrSourceOutOfRange)
}

func TestOnVisitAndCancel(t *testing.T) {
	g := diamond(t)
	boom := errors.New("boom")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, alg := range []gridsearch.Algorithm{gridsearch.AlgBFS, gridsearch.AlgDFS, gridsearch.AlgDijkstra} {
		t.Run(alg.String(), func(t *testing.T) {
			var seen []int
			res, err := graphsearch.Run(alg, g, 0, graphsearch.WithOnVisit(func(node, i int) error {
				seen = append(seen, node)
				if i == 1 {
					return boom
				}
				return nil
			}))
			require.ErrorIs(t, err, boom)
			assert.Equal(t, res.Order, seen)
			assert.Len(t, seen, 2)

			_, err = graphsearch.Run(alg, g, 0, graphsearch.WithContext(ctx))
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

// TestOnVisitChain checks that hooks run in registration order and that the
// first error stops the chain.
func TestOnVisitChain(t *testing.T) {
	g := diamond(t)
	boom := errors.New("boom")
	var calls []string
	first := graphsearch.WithOnVisit(func(node, i int) error {
		calls = append(calls, "first")
		if i == 1 {
			return boom
		}
		return nil
	})
	second := graphsearch.WithOnVisit(func(node, i int) error {
		calls = append(calls, "second")
		return nil
	})

	_, err := graphsearch.Dijkstra(g, 0, first, second, graphsearch.WithOnVisit(nil))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"first", "second", "first"}, calls)

	var a, b []int
	res, err := graphsearch.BFS(g, 0,
		graphsearch.WithOnVisit(func(node, _ int) error { a = append(a, node); return nil }),
		graphsearch.WithOnVisit(func(node, _ int) error { b = append(b, node); return nil }))
	require.NoError(t, err)
	assert.Equal(t, res.Order, a)
	assert.Equal(t, res.Order, b)
}

//----------------------------------------------------------------------------//
// Grid cross-checks
//----------------------------------------------------------------------------//

// TestGridGraphAgreement runs the graph algorithms on grid.ToGraph and
// compares the costs with the grid searches.
func TestGridGraphAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 40; trial++ {
		rows, cols := 3+rng.Intn(6), 3+rng.Intn(6)
		cells := make([][]grid.Cell, rows)
		for r := range cells {
			cells[r] = make([]grid.Cell, cols)
			for c := range cells[r] {
				if rng.Float64() < 0.3 {
					cells[r][c] = grid.Blocked
				}
			}
		}
		cells[0][0], cells[rows-1][cols-1] = grid.Passable, grid.Passable
		g, err := grid.New(cells)
		require.NoError(t, err)
		start, end := grid.Pos(0, 0), grid.Pos(rows-1, cols-1)
		gg := g.ToGraph()

		dij, err := graphsearch.Dijkstra(gg, g.Index(start))
		require.NoError(t, err)
		bfs, err := graphsearch.BFS(gg, g.Index(start))
		require.NoError(t, err)
		dfs, err := graphsearch.DFS(gg, g.Index(start))
		require.NoError(t, err)
		assert.Equal(t, dij.Cost, bfs.Cost, "trial %d: unit costs make BFS optimal", trial)
		for i := range dij.Cost {
			assert.Equal(t, dij.Reached(i), dfs.Reached(i), "trial %d node %d", trial, i)
			if dij.Reached(i) {
				assert.GreaterOrEqual(t, dfs.Cost[i], dij.Cost[i], "trial %d node %d", trial, i)
			}
		}

		gridRes, err := gridsearch.BFS(g, start, end)
		require.NoError(t, err)
		if gridRes.Found() {
			assert.Equal(t, float64(gridRes.Cost()), dij.Cost[g.Index(end)], "trial %d", trial)
		} else {
			assert.False(t, dij.Reached(g.Index(end)), "trial %d", trial)
		}
	}
}
