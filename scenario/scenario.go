package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pathlab/graph"
	"github.com/katalvlaran/pathlab/graphsearch"
	"github.com/katalvlaran/pathlab/grid"
)

// Load reads and decodes the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	s, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return s, nil
}

// Decode reads one scenario document from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrBadScenario)
		}

		return nil, fmt.Errorf("%w: %w", ErrBadScenario, err)
	}
	if s.GridSpec == nil && s.GraphSpec == nil {
		return nil, fmt.Errorf("%w: neither grid nor graph given", ErrBadScenario)
	}

	return &s, nil
}

// Encode writes s to w as YAML.
func Encode(w io.Writer, s *Scenario) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}

	return enc.Close()
}

// FromGrid builds a scenario whose grid section is the textual layout of g
// with start and end marked. A layout cell holds one marker, so when start
// and end coincide both are also written as explicit keys.
func FromGrid(name string, g *grid.Grid, start, end grid.Position) *Scenario {
	rows := strings.Split(strings.TrimSuffix(g.String(), "\n"), "\n")
	mark := func(p grid.Position, ch byte) {
		if !g.InBounds(p) {
			return
		}
		b := []byte(rows[p.Row])
		b[p.Col] = ch
		rows[p.Row] = string(b)
	}
	mark(start, grid.CharStart)
	mark(end, grid.CharEnd)

	sc := &Scenario{Name: name, GridSpec: &GridSection{Rows: rows}}
	if start == end {
		sc.Start = []int{start.Row, start.Col}
		sc.End = []int{end.Row, end.Col}
	}

	return sc
}

// Grid builds the obstacle grid and resolves start and end. Explicit start
// and end keys override S and E markers in the layout.
func (s *Scenario) Grid() (*grid.Grid, grid.Position, grid.Position, error) {
	var zero grid.Position
	sec := s.GridSpec
	if sec == nil {
		return nil, zero, zero, ErrNoGrid
	}

	var (
		g       *grid.Grid
		markers grid.Markers
		err     error
	)
	switch {
	case len(sec.Rows) > 0:
		g, markers, err = grid.Parse(sec.Rows)
		if err == nil && sec.Size != nil && (sec.Size.Rows != g.Rows() || sec.Size.Cols != g.Cols()) {
			err = fmt.Errorf("%w: size %dx%d does not match layout %dx%d",
				ErrBadScenario, sec.Size.Rows, sec.Size.Cols, g.Rows(), g.Cols())
		}
	case sec.Size != nil:
		g, err = grid.Open(sec.Size.Rows, sec.Size.Cols)
	default:
		err = fmt.Errorf("%w: grid needs rows or size", ErrBadScenario)
	}
	if err != nil {
		return nil, zero, zero, err
	}

	if len(sec.Walls) > 0 {
		bounds := make([]orb.Bound, 0, len(sec.Walls))
		for i, w := range sec.Walls {
			b, err := w.bound()
			if err != nil {
				return nil, zero, zero, fmt.Errorf("wall %d: %w", i, err)
			}
			bounds = append(bounds, b)
		}
		if g, err = Rasterize(g, bounds); err != nil {
			return nil, zero, zero, err
		}
	}

	start, err := endpoint("start", s.Start, markers.Start, markers.HasStart)
	if err != nil {
		return nil, zero, zero, err
	}
	end, err := endpoint("end", s.End, markers.End, markers.HasEnd)
	if err != nil {
		return nil, zero, zero, err
	}

	return g, start, end, nil
}

// Graph builds the node-link graph and returns it with the source and the
// target, which is graphsearch.NoTarget when none is given.
func (s *Scenario) Graph() (*graph.Graph, int, int, error) {
	sec := s.GraphSpec
	if sec == nil {
		return nil, 0, graphsearch.NoTarget, ErrNoGraph
	}

	n := sec.Nodes
	if len(sec.Points) > 0 {
		if n != 0 && n != len(sec.Points) {
			return nil, 0, graphsearch.NoTarget, fmt.Errorf("%w: nodes=%d but %d points",
				ErrBadScenario, n, len(sec.Points))
		}
		n = len(sec.Points)
		for i, p := range sec.Points {
			if len(p) != 2 {
				return nil, 0, graphsearch.NoTarget, fmt.Errorf("%w: point %d needs [x, y]", ErrBadScenario, i)
			}
		}
	}
	g, err := graph.New(n)
	if err != nil {
		return nil, 0, graphsearch.NoTarget, err
	}

	for i, e := range sec.Edges {
		cost, err := sec.edgeCost(e)
		if err != nil {
			return nil, 0, graphsearch.NoTarget, fmt.Errorf("edge %d: %w", i, err)
		}
		if e.Directed {
			err = g.AddEdge(e.From, e.To, cost)
		} else {
			err = g.AddUndirectedEdge(e.From, e.To, cost)
		}
		if err != nil {
			return nil, 0, graphsearch.NoTarget, fmt.Errorf("edge %d: %w", i, err)
		}
	}

	target := graphsearch.NoTarget
	if sec.Target != nil {
		target = *sec.Target
	}

	return g, sec.Source, target, nil
}

func (sec *GraphSection) edgeCost(e EdgeSpec) (float64, error) {
	if e.Cost != nil {
		return *e.Cost, nil
	}
	if e.From < 0 || e.From >= len(sec.Points) || e.To < 0 || e.To >= len(sec.Points) {
		return 0, fmt.Errorf("%w: cost omitted and no points for %d-%d", ErrBadScenario, e.From, e.To)
	}

	return PlanarCost(sec.Points[e.From], sec.Points[e.To]), nil
}

// PlanarCost is the Euclidean distance between two [x, y] points rounded to
// two decimals.
func PlanarCost(a, b []float64) float64 {
	d := planar.Distance(orb.Point{a[0], a[1]}, orb.Point{b[0], b[1]})

	return math.Round(d*100) / 100
}

func (w Wall) bound() (orb.Bound, error) {
	if len(w.From) != 2 || len(w.To) != 2 {
		return orb.Bound{}, fmt.Errorf("%w: wall corners need [row, col]", ErrBadScenario)
	}

	return WallBound(grid.Pos(w.From[0], w.From[1]), grid.Pos(w.To[0], w.To[1])), nil
}

func endpoint(name string, explicit []int, marker grid.Position, hasMarker bool) (grid.Position, error) {
	switch {
	case explicit != nil:
		if len(explicit) != 2 {
			return grid.Position{}, fmt.Errorf("%w: %s needs [row, col]", ErrBadScenario, name)
		}

		return grid.Pos(explicit[0], explicit[1]), nil
	case hasMarker:
		return marker, nil
	}

	return grid.Position{}, fmt.Errorf("%w: %s not given", ErrBadScenario, name)
}
