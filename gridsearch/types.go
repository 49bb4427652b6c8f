package gridsearch

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathlab/grid"
)

// Sentinel errors for grid searches.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("gridsearch: grid is nil")

	// ErrInvalidRequest is returned when start or end is out of bounds or
	// blocked. It is the grid package's sentinel so either can be matched.
	ErrInvalidRequest = grid.ErrInvalidRequest

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("gridsearch: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("gridsearch: expansion limit reached")

	// ErrUnknownAlgorithm is returned for an unrecognised Algorithm.
	ErrUnknownAlgorithm = errors.New("gridsearch: unknown algorithm")

	// ErrInvalidPath is returned by ValidatePath.
	ErrInvalidPath = errors.New("gridsearch: invalid path")
)

// Algorithm names one of the four grid strategies.
type Algorithm int

const (
	AlgBFS Algorithm = iota
	AlgDFS
	AlgDijkstra
	AlgAStar
)

var algorithmNames = [...]string{"bfs", "dfs", "dijkstra", "astar"}

var algorithmTitles = [...]string{
	"Breadth First Search",
	"Depth First Search",
	"Dijkstra's Algorithm",
	"A* Search",
}

// Algorithms returns all algorithms in canonical order: BFS, DFS, Dijkstra, A*.
func Algorithms() []Algorithm {
	return []Algorithm{AlgBFS, AlgDFS, AlgDijkstra, AlgAStar}
}

// String returns the short lower-case name ("bfs", "astar", ...).
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Title returns the human-readable name used in reports.
func (a Algorithm) Title() string {
	if a < 0 || int(a) >= len(algorithmTitles) {
		return a.String()
	}

	return algorithmTitles[a]
}

// ParseAlgorithm maps a name such as "bfs", "Dijkstra" or "a*" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bfs", "breadth", "breadth-first":
		return AlgBFS, nil
	case "dfs", "depth", "depth-first":
		return AlgDFS, nil
	case "dijkstra":
		return AlgDijkstra, nil
	case "astar", "a*", "a-star":
		return AlgAStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Option configures a search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one search call.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for every entry appended to Result.Visited with
	// its index. Returning an error aborts the search.
	OnVisit func(p grid.Position, index int) error

	// MaxExpansions, if > 0, caps the number of visited positions.
	MaxExpansions int

	err error
}

// DefaultOptions returns background context, no hook and no cap.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(grid.Position, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visit hook. Multiple hooks run in registration
// order; the first error stops the chain.
func WithOnVisit(fn func(p grid.Position, index int) error) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnVisit
		o.OnVisit = func(p grid.Position, i int) error {
			if err := prev(p, i); err != nil {
				return err
			}

			return fn(p, i)
		}
	}
}

// WithMaxExpansions caps the number of visited positions.
//
//	n > 0:  limit to n
//	n == 0: no limit
//	n < 0:  invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxExpansions = n
	}
}

// Result is the outcome of one grid search.
type Result struct {
	// Algorithm that produced the result.
	Algorithm Algorithm
	// Visited lists positions in the order the algorithm examined them.
	Visited []grid.Position
	// Path runs from start to end inclusive; empty when there is none.
	Path []grid.Position
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return len(r.Path) > 0 }

// PathLength returns the number of positions on the path (0 when none).
func (r *Result) PathLength() int { return len(r.Path) }

// Cost returns the number of edges on the path, or -1 when none was found.
func (r *Result) Cost() int {
	if len(r.Path) == 0 {
		return -1
	}

	return len(r.Path) - 1
}

// Func is the common signature shared by BFS, DFS, Dijkstra and AStar.
type Func func(g *grid.Grid, start, end grid.Position, opts ...Option) (*Result, error)
