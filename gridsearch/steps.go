package gridsearch

import (
	"errors"
	"iter"
	"sync"

	"github.com/katalvlaran/pathlab/grid"
)

// StepKind distinguishes visit events from path events.
type StepKind int

const (
	// StepVisit reports one entry of Result.Visited.
	StepVisit StepKind = iota
	// StepPath reports one entry of Result.Path.
	StepPath
)

// String returns "visit" or "path".
func (k StepKind) String() string {
	if k == StepPath {
		return "path"
	}

	return "visit"
}

// Step is one visitation event. Index is the position's index within
// Visited or Path respectively.
type Step struct {
	Kind     StepKind
	Index    int
	Position grid.Position
}

// errStopped aborts a search when the consumer stops ranging.
var errStopped = errors.New("gridsearch: iteration stopped")

// StepsErr runs alg lazily: visit events are yielded while the search
// runs, followed by the path events once it finishes. Breaking out of the
// loop aborts the search. The returned func reports the search error, if
// any, of the most recently finished ranging; stopping early is not an
// error. Each ranging runs its own search, so the sequence may be ranged
// again or from several goroutines, but the error then belongs to
// whichever ranging finished last.
func StepsErr(alg Algorithm, g *grid.Grid, start, end grid.Position, opts ...Option) (iter.Seq[Step], func() error) {
	var (
		mu     sync.Mutex
		runErr error
	)
	seq := func(yield func(Step) bool) {
		var err error
		defer func() {
			mu.Lock()
			runErr = err
			mu.Unlock()
		}()

		hook := WithOnVisit(func(p grid.Position, i int) error {
			if !yield(Step{Kind: StepVisit, Index: i, Position: p}) {
				return errStopped
			}

			return nil
		})
		all := make([]Option, 0, len(opts)+1)
		all = append(all, opts...)
		all = append(all, hook)
		res, rerr := Run(alg, g, start, end, all...)
		if rerr != nil {
			if !errors.Is(rerr, errStopped) {
				err = rerr
			}

			return
		}
		for i, p := range res.Path {
			if !yield(Step{Kind: StepPath, Index: i, Position: p}) {
				return
			}
		}
	}

	return seq, func() error {
		mu.Lock()
		defer mu.Unlock()

		return runErr
	}
}

// Steps is StepsErr without the error accessor. An invalid request yields
// nothing.
func Steps(alg Algorithm, g *grid.Grid, start, end grid.Position, opts ...Option) iter.Seq[Step] {
	seq, _ := StepsErr(alg, g, start, end, opts...)

	return seq
}
