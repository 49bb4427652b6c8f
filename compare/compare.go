package compare

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/gridsearch"
)

// ErrGridNil is returned if a nil grid pointer is passed.
var ErrGridNil = errors.New("compare: grid is nil")

// Entry holds the metrics of one algorithm run.
type Entry struct {
	Algorithm  gridsearch.Algorithm
	Elapsed    time.Duration
	Visited    int
	PathLength int
	Found      bool
	Result     *gridsearch.Result
}

// Report aggregates one comparison.
type Report struct {
	// Entries are in canonical algorithm order.
	Entries []Entry

	Fastest       gridsearch.Algorithm
	MostEfficient gridsearch.Algorithm
	Shortest      gridsearch.Algorithm
	// HasShortest is false when no algorithm found a path.
	HasShortest bool
}

// Get returns the entry for alg.
func (r *Report) Get(alg gridsearch.Algorithm) (Entry, bool) {
	for _, e := range r.Entries {
		if e.Algorithm == alg {
			return e, true
		}
	}

	return Entry{}, false
}

// Metrics returns the entries keyed by algorithm.
func (r *Report) Metrics() map[gridsearch.Algorithm]Entry {
	out := make(map[gridsearch.Algorithm]Entry, len(r.Entries))
	for _, e := range r.Entries {
		out[e.Algorithm] = e
	}

	return out
}

// Option configures Run.
type Option func(*options)

type options struct {
	now        func() time.Time
	algorithms []gridsearch.Algorithm
	search     []gridsearch.Option
}

// WithClock replaces time.Now for measuring elapsed time.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithAlgorithms restricts the comparison to the given algorithms, kept in
// the given order. An empty list keeps the default set.
func WithAlgorithms(algs ...gridsearch.Algorithm) Option {
	return func(o *options) {
		if len(algs) > 0 {
			o.algorithms = append([]gridsearch.Algorithm(nil), algs...)
		}
	}
}

// WithSearchOptions forwards options to every algorithm run.
func WithSearchOptions(opts ...gridsearch.Option) Option {
	return func(o *options) {
		o.search = append(o.search, opts...)
	}
}

// Run compares the algorithms on g from start to end. An invalid request
// fails once, before any algorithm runs. ctx is checked between runs and
// forwarded to each search.
func Run(ctx context.Context, g *grid.Grid, start, end grid.Position, opts ...Option) (*Report, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	o := options{now: time.Now, algorithms: gridsearch.Algorithms()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := g.ValidateRequest(start, end); err != nil {
		return nil, fmt.Errorf("compare: %w", err)
	}

	searchOpts := make([]gridsearch.Option, 0, len(o.search)+1)
	searchOpts = append(searchOpts, o.search...)
	searchOpts = append(searchOpts, gridsearch.WithContext(ctx))

	report := &Report{Entries: make([]Entry, 0, len(o.algorithms))}
	for _, alg := range o.algorithms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		t0 := o.now()
		res, err := gridsearch.Run(alg, g, start, end, searchOpts...)
		elapsed := o.now().Sub(t0)
		if err != nil {
			return nil, fmt.Errorf("compare: %s: %w", alg, err)
		}
		report.Entries = append(report.Entries, Entry{
			Algorithm:  alg,
			Elapsed:    elapsed,
			Visited:    len(res.Visited),
			PathLength: res.PathLength(),
			Found:      res.Found(),
			Result:     res,
		})
	}
	report.summarize()

	return report, nil
}

// summarize picks the recommendations with strict comparisons so the first
// algorithm in order wins ties.
func (r *Report) summarize() {
	if len(r.Entries) == 0 {
		return
	}
	fastest, efficient := r.Entries[0], r.Entries[0]
	var shortest *Entry
	for i := range r.Entries {
		e := &r.Entries[i]
		if e.Elapsed < fastest.Elapsed {
			fastest = *e
		}
		if e.Visited < efficient.Visited {
			efficient = *e
		}
		if e.Found && (shortest == nil || e.PathLength < shortest.PathLength) {
			shortest = e
		}
	}
	r.Fastest = fastest.Algorithm
	r.MostEfficient = efficient.Algorithm
	if shortest != nil {
		r.Shortest = shortest.Algorithm
		r.HasShortest = true
	}
}
