package compare_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/compare"
	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/gridsearch"
)

// stepClock returns a clock whose n-th pair of readings is durations[n]
// apart, so each algorithm run "takes" the matching duration.
func stepClock(durations ...time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	calls := 0

	return func() time.Time {
		if calls%2 == 1 && calls/2 < len(durations) {
			now = now.Add(durations[calls/2])
		}
		calls++

		return now
	}
}

func TestRun_Open3x3(t *testing.T) {
	g := grid.MustParse("...", "...", "...")
	rep, err := compare.Run(context.Background(), g, grid.Pos(0, 0), grid.Pos(2, 2),
		compare.WithClock(stepClock(4*time.Millisecond, 3*time.Millisecond, 3*time.Millisecond, 5*time.Millisecond)))
	require.NoError(t, err)
	require.Len(t, rep.Entries, 4)

	wantVisited := []int{9, 5, 9, 9}
	for i, alg := range gridsearch.Algorithms() {
		e := rep.Entries[i]
		assert.Equal(t, alg, e.Algorithm)
		assert.Equal(t, wantVisited[i], e.Visited, alg.String())
		assert.Equal(t, 5, e.PathLength, alg.String())
		assert.True(t, e.Found)
		require.NotNil(t, e.Result)
	}
	assert.Equal(t, 4*time.Millisecond, rep.Entries[0].Elapsed)

	assert.Equal(t, gridsearch.AlgDFS, rep.Fastest, "first of the tied 3ms runs")
	assert.Equal(t, gridsearch.AlgDFS, rep.MostEfficient)
	assert.True(t, rep.HasShortest)
	assert.Equal(t, gridsearch.AlgBFS, rep.Shortest, "all tie; first in order wins")
}

// TestRun_ShortestIgnoresDFS uses a grid where DFS takes a long detour.
func TestRun_ShortestIgnoresDFS(t *testing.T) {
	g := grid.MustParse("...", "...", "...")
	rep, err := compare.Run(context.Background(), g, grid.Pos(2, 0), grid.Pos(2, 1),
		compare.WithClock(stepClock(time.Second, time.Millisecond, time.Second, time.Second)))
	require.NoError(t, err)

	dfs, ok := rep.Get(gridsearch.AlgDFS)
	require.True(t, ok)
	assert.Equal(t, 8, dfs.PathLength)
	assert.Equal(t, gridsearch.AlgDFS, rep.Fastest)
	assert.Equal(t, gridsearch.AlgBFS, rep.Shortest)

	m := rep.Metrics()
	assert.Len(t, m, 4)
	assert.Equal(t, 2, m[gridsearch.AlgAStar].PathLength)
}

func TestRun_NoPath(t *testing.T) {
	g := grid.MustParse("...", "###", "...")
	rep, err := compare.Run(context.Background(), g, grid.Pos(0, 0), grid.Pos(2, 2))
	require.NoError(t, err)
	assert.False(t, rep.HasShortest)
	for _, e := range rep.Entries {
		assert.False(t, e.Found)
		assert.Equal(t, 3, e.Visited)
		assert.Equal(t, 0, e.PathLength)
	}
	assert.Equal(t, gridsearch.AlgBFS, rep.MostEfficient)
}

func TestRun_Errors(t *testing.T) {
	g := grid.MustParse("..", "#.")
	_, err := compare.Run(context.Background(), nil, grid.Pos(0, 0), grid.Pos(1, 1))
	assert.ErrorIs(t, err, compare.ErrGridNil)

	calls := 0
	_, err = compare.Run(context.Background(), g, grid.Pos(1, 0), grid.Pos(1, 1),
		compare.WithSearchOptions(gridsearch.WithOnVisit(func(grid.Position, int) error {
			calls++
			return nil
		})))
	assert.ErrorIs(t, err, grid.ErrInvalidRequest)
	assert.Zero(t, calls, "invalid request fails before any run")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = compare.Run(ctx, g, grid.Pos(0, 0), grid.Pos(1, 1))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = compare.Run(context.Background(), g, grid.Pos(0, 0), grid.Pos(1, 1),
		compare.WithSearchOptions(gridsearch.WithMaxExpansions(1)))
	assert.ErrorIs(t, err, gridsearch.ErrExpansionLimit)
}

func TestRun_Subset(t *testing.T) {
	g := grid.MustParse("....")
	rep, err := compare.Run(context.Background(), g, grid.Pos(0, 0), grid.Pos(0, 3),
		compare.WithAlgorithms(gridsearch.AlgAStar, gridsearch.AlgBFS))
	require.NoError(t, err)
	require.Len(t, rep.Entries, 2)
	assert.Equal(t, gridsearch.AlgAStar, rep.Entries[0].Algorithm)
	_, ok := rep.Get(gridsearch.AlgDFS)
	assert.False(t, ok)
}

// TestRun_Independent checks that results equal standalone runs, so nothing
// carries over between algorithms.
func TestRun_Independent(t *testing.T) {
	g := grid.MustParse(
		"..#...",
		"..#.#.",
		"....#.",
		"#.#...",
	)
	start, end := grid.Pos(0, 0), grid.Pos(0, 5)
	rep, err := compare.Run(context.Background(), g, start, end)
	require.NoError(t, err)
	for _, e := range rep.Entries {
		alone, err := gridsearch.Run(e.Algorithm, g, start, end)
		require.NoError(t, err)
		assert.Equal(t, alone, e.Result, e.Algorithm.String())
	}
}
