package scenario_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathlab/graph"
	"github.com/katalvlaran/pathlab/graphsearch"
	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/scenario"
)

const fullDoc = `
name: demo
grid:
  rows:
    - "S..#"
    - ".#.."
    - "...E"
start: [2, 0]
graph:
  points: [[0, 0], [3, 4], [6, 0], [1, 1]]
  edges:
    - {from: 0, to: 1}
    - {from: 1, to: 2, cost: 2.5, directed: true}
    - {from: 0, to: 3}
  source: 0
  target: 2
`

func decode(t *testing.T, doc string) *scenario.Scenario {
	t.Helper()
	s, err := scenario.Decode(strings.NewReader(doc))
	require.NoError(t, err)

	return s
}

//----------------------------------------------------------------------------//
// Grid section
//----------------------------------------------------------------------------//

func TestGrid_LayoutAndMarkers(t *testing.T) {
	s := decode(t, fullDoc)
	assert.Equal(t, "demo", s.Name)

	g, start, end, err := s.Grid()
	require.NoError(t, err)
	assert.Equal(t, "...#\n.#..\n....\n", g.String())
	assert.Equal(t, grid.Pos(2, 0), start, "explicit start overrides the S marker")
	assert.Equal(t, grid.Pos(2, 3), end)
}

func TestGrid_SizeAndWalls(t *testing.T) {
	s := decode(t, `
grid:
  size: {rows: 4, cols: 5}
  walls:
    - {from: [1, 1], to: [2, 3]}
    - {from: [3, 4], to: [3, 9]}
start: [0, 0]
end: [3, 0]
`)
	g, start, end, err := s.Grid()
	require.NoError(t, err)
	assert.Equal(t, grid.Pos(0, 0), start)
	assert.Equal(t, grid.Pos(3, 0), end)
	assert.Equal(t, ""+
		".....\n"+
		".###.\n"+
		".###.\n"+
		"....#\n", g.String())
}

func TestGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"NoGridSection", "graph: {nodes: 2, source: 0}\n", scenario.ErrNoGrid},
		{"NoRowsOrSize", "grid: {walls: []}\nstart: [0, 0]\nend: [0, 0]\n", scenario.ErrBadScenario},
		{"SizeMismatch", "grid: {rows: ['..'], size: {rows: 2, cols: 2}}\nstart: [0, 0]\nend: [0, 1]\n", scenario.ErrBadScenario},
		{"MissingEnd", "grid: {rows: ['S.']}\n", scenario.ErrBadScenario},
		{"BadStart", "grid: {rows: ['..']}\nstart: [0]\nend: [0, 1]\n", scenario.ErrBadScenario},
		{"BadWall", "grid: {rows: ['..'], walls: [{from: [0], to: [0, 1]}]}\nstart: [0, 0]\nend: [0, 1]\n", scenario.ErrBadScenario},
		{"BadLayout", "grid: {rows: ['.x']}\nstart: [0, 0]\nend: [0, 1]\n", grid.ErrBadLayout},
		{"EmptySize", "grid: {size: {rows: 0, cols: 3}}\nstart: [0, 0]\nend: [0, 1]\n", grid.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := decode(t, tc.doc)
			_, _, _, err := s.Grid()
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Graph section
//----------------------------------------------------------------------------//

func TestGraph_PlanarCosts(t *testing.T) {
	s := decode(t, fullDoc)
	g, source, target, err := s.Graph()
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 0, source)
	assert.Equal(t, 2, target)

	assert.Equal(t, 5.0, g.Cost(0, 1))
	assert.Equal(t, 5.0, g.Cost(1, 0))
	assert.Equal(t, 2.5, g.Cost(1, 2))
	assert.Equal(t, graph.Inf, g.Cost(2, 1), "directed edge")
	assert.Equal(t, 1.41, g.Cost(0, 3))
}

func TestGraph_NodesOnly(t *testing.T) {
	s := decode(t, `
graph:
  nodes: 3
  edges:
    - {from: 0, to: 2, cost: 7}
  source: 1
`)
	g, source, target, err := s.Graph()
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 1, source)
	assert.Equal(t, graphsearch.NoTarget, target)
	assert.Equal(t, 7.0, g.Cost(2, 0))
}

func TestGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
	}{
		{"NoGraphSection", "grid: {rows: ['.']}\n", scenario.ErrNoGraph},
		{"CountMismatch", "graph: {nodes: 3, points: [[0, 0]], source: 0}\n", scenario.ErrBadScenario},
		{"BadPoint", "graph: {points: [[0]], source: 0}\n", scenario.ErrBadScenario},
		{"CostWithoutPoints", "graph: {nodes: 2, edges: [{from: 0, to: 1}], source: 0}\n", scenario.ErrBadScenario},
		{"EdgeOutOfRange", "graph: {nodes: 2, edges: [{from: 0, to: 5, cost: 1}], source: 0}\n", graph.ErrNodeOutOfRange},
		{"NegativeCost", "graph: {nodes: 2, edges: [{from: 0, to: 1, cost: -1}], source: 0}\n", graph.ErrNegativeCost},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := decode(t, tc.doc)
			_, _, _, err := s.Graph()
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

//----------------------------------------------------------------------------//
// Decoding, encoding and files
//----------------------------------------------------------------------------//

func TestDecode_Errors(t *testing.T) {
	for name, doc := range map[string]string{
		"Empty":      "",
		"UnknownKey": "grid: {rows: ['.']}\nbogus: 1\n",
		"NoSections": "name: nothing\n",
		"NotYAML":    "grid: [\n",
	} {
		_, err := scenario.Decode(strings.NewReader(doc))
		assert.ErrorIs(t, err, scenario.ErrBadScenario, name)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	g := grid.MustParse(
		"..#",
		"#..",
	)
	start, end := grid.Pos(0, 0), grid.Pos(1, 2)

	var buf bytes.Buffer
	require.NoError(t, scenario.Encode(&buf, scenario.FromGrid("round", g, start, end)))
	assert.Contains(t, buf.String(), "S.#")

	s, err := scenario.Decode(&buf)
	require.NoError(t, err)
	back, bs, be, err := s.Grid()
	require.NoError(t, err)
	assert.Equal(t, g, back)
	assert.Equal(t, start, bs)
	assert.Equal(t, end, be)
	assert.Equal(t, "round", s.Name)
}

// TestEncode_RoundTripSameEndpoints covers start == end, where the layout
// can carry only one marker for the shared cell.
func TestEncode_RoundTripSameEndpoints(t *testing.T) {
	g, start, end, err := scenario.RandomRequest(1, 1, 0, 1)
	require.NoError(t, err)
	require.Equal(t, start, end)

	var buf bytes.Buffer
	require.NoError(t, scenario.Encode(&buf, scenario.FromGrid("single", g, start, end)))

	s, err := scenario.Decode(&buf)
	require.NoError(t, err)
	back, bs, be, err := s.Grid()
	require.NoError(t, err)
	assert.Equal(t, g, back)
	assert.Equal(t, start, bs)
	assert.Equal(t, end, be)

	g = grid.MustParse(
		"...",
		".#.",
	)
	p := grid.Pos(1, 2)
	buf.Reset()
	require.NoError(t, scenario.Encode(&buf, scenario.FromGrid("same", g, p, p)))
	s, err = scenario.Decode(&buf)
	require.NoError(t, err)
	back, bs, be, err = s.Grid()
	require.NoError(t, err)
	assert.Equal(t, g, back)
	assert.Equal(t, p, bs)
	assert.Equal(t, p, be)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "s.yaml")
	require.NoError(t, os.WriteFile(path, []byte(fullDoc), 0o644))

	s, err := scenario.Load(path)
	require.NoError(t, err)
	_, _, _, err = s.Grid()
	require.NoError(t, err)

	_, err = scenario.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("nope: 1\n"), 0o644))
	_, err = scenario.Load(bad)
	assert.ErrorIs(t, err, scenario.ErrBadScenario)
}

//----------------------------------------------------------------------------//
// Geometry helpers
//----------------------------------------------------------------------------//

func TestWallBound(t *testing.T) {
	b := scenario.WallBound(grid.Pos(3, 4), grid.Pos(1, 2))
	assert.Equal(t, orb.Bound{Min: orb.Point{2, 1}, Max: orb.Point{5, 4}}, b)
}

func TestRasterize(t *testing.T) {
	g, err := grid.Open(3, 3)
	require.NoError(t, err)

	same, err := scenario.Rasterize(g, nil)
	require.NoError(t, err)
	assert.Same(t, g, same)

	out, err := scenario.Rasterize(g, []orb.Bound{
		scenario.WallBound(grid.Pos(0, 0), grid.Pos(0, 0)),
		{Min: orb.Point{1.6, 1.6}, Max: orb.Point{2.4, 2.4}},
	})
	require.NoError(t, err)
	assert.Equal(t, "#..\n...\n...\n", out.String(), "centre (2.5, 2.5) not covered by the small wall")
	assert.Equal(t, 9, g.PassableCount(), "input untouched")

	out, err = scenario.Rasterize(g, []orb.Bound{{Min: orb.Point{-5, 1}, Max: orb.Point{10, 2}}})
	require.NoError(t, err)
	assert.Equal(t, "...\n###\n...\n", out.String())
}

func TestPlanarCost(t *testing.T) {
	assert.Equal(t, 5.0, scenario.PlanarCost([]float64{0, 0}, []float64{3, 4}))
	assert.Equal(t, 2.24, scenario.PlanarCost([]float64{1, 1}, []float64{2, 3}))
}
