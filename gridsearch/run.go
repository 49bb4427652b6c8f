package gridsearch

import (
	"fmt"

	"github.com/katalvlaran/pathlab/grid"
)

// Lookup returns the search function for alg.
func Lookup(alg Algorithm) (Func, error) {
	switch alg {
	case AlgBFS:
		return BFS, nil
	case AlgDFS:
		return DFS, nil
	case AlgDijkstra:
		return Dijkstra, nil
	case AlgAStar:
		return AStar, nil
	}

	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
}

// Run dispatches to the algorithm named by alg.
func Run(alg Algorithm, g *grid.Grid, start, end grid.Position, opts ...Option) (*Result, error) {
	fn, err := Lookup(alg)
	if err != nil {
		return nil, err
	}

	return fn(g, start, end, opts...)
}
