package graphsearch

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/pathlab/graph"
	"github.com/katalvlaran/pathlab/gridsearch"
)

const (
	// NoParent marks a node without predecessor (the source, or unreached).
	NoParent = -1
	// NoTarget marks an all-destinations search.
	NoTarget = -1
)

// Sentinel errors for graph searches.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("graphsearch: graph is nil")

	// ErrSourceOutOfRange is returned when source is not a node of the graph.
	ErrSourceOutOfRange = errors.New("graphsearch: source node out of range")

	// ErrTargetOutOfRange is returned when the target is not a node of the graph.
	ErrTargetOutOfRange = errors.New("graphsearch: target node out of range")

	// ErrNoPath is returned by PathTo for a node that was not reached.
	ErrNoPath = errors.New("graphsearch: no path")

	// ErrUnsupportedAlgorithm is returned by Run for algorithms without a graph variant.
	ErrUnsupportedAlgorithm = errors.New("graphsearch: algorithm has no graph variant")
)

// Option configures a graph search.
type Option func(*Options)

// Options holds the parameters of one graph search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// Target, when not NoTarget, lets the search stop once it is reached.
	Target int

	// OnVisit is called for every node appended to Result.Order.
	OnVisit func(node, index int) error
}

// DefaultOptions returns background context, no target and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Target:  NoTarget,
		OnVisit: func(int, int) error { return nil },
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

// WithTarget stops the search once node t is reached.
// NoTarget restores the all-destinations behaviour.
func WithTarget(t int) Option {
	return func(o *Options) {
		o.Target = t
	}
}

// WithOnVisit registers a hook run for each node appended to Order.
// Multiple hooks run in registration order; the first error stops the chain.
func WithOnVisit(fn func(node, index int) error) Option {
	return func(o *Options) {
		if fn == nil {
			return
		}
		prev := o.OnVisit
		o.OnVisit = func(node, i int) error {
			if err := prev(node, i); err != nil {
				return err
			}

			return fn(node, i)
		}
	}
}

// Result is the outcome of one graph search.
type Result struct {
	// Algorithm that produced the result.
	Algorithm gridsearch.Algorithm
	// Source node of the search.
	Source int
	// Target node, or NoTarget.
	Target int
	// Parent[i] is the predecessor of i, or NoParent.
	Parent []int
	// Cost[i] is the recorded cost from Source to i, or graph.Inf if unreached.
	Cost []float64
	// Order lists nodes in expansion order.
	Order []int
}

// Reached reports whether node i received a finite cost.
func (r *Result) Reached(i int) bool {
	return i >= 0 && i < len(r.Cost) && !math.IsInf(r.Cost[i], 1)
}

// PathTo reconstructs the node sequence from Source to dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if dest < 0 || dest >= len(r.Cost) {
		return nil, fmt.Errorf("%w: %d", graph.ErrNodeOutOfRange, dest)
	}
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, r.Source, dest)
	}
	path := []int{}
	for cur := dest; cur != NoParent; cur = r.Parent[cur] {
		path = append(path, cur)
		if cur == r.Source {
			break
		}
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
