package render

import (
	"bufio"
	"io"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/gridsearch"
)

// Overlay characters.
const (
	CharVisited = 'o'
	CharPath    = '*'
)

// cellKind is the layered state of one cell in an overlay.
type cellKind uint8

const (
	kindFree cellKind = iota
	kindBlocked
	kindVisited
	kindPath
	kindStart
	kindEnd
)

// overlay classifies every cell of g; later layers win.
func overlay(g *grid.Grid, res *gridsearch.Result, start, end grid.Position) []cellKind {
	kinds := make([]cellKind, g.Size())
	for i := range kinds {
		if !g.Passable(g.Position(i)) {
			kinds[i] = kindBlocked
		}
	}
	if res != nil {
		for _, p := range res.Visited {
			if g.InBounds(p) {
				kinds[g.Index(p)] = kindVisited
			}
		}
		for _, p := range res.Path {
			if g.InBounds(p) {
				kinds[g.Index(p)] = kindPath
			}
		}
	}
	if g.InBounds(start) {
		kinds[g.Index(start)] = kindStart
	}
	if g.InBounds(end) {
		kinds[g.Index(end)] = kindEnd
	}

	return kinds
}

var asciiChars = [...]byte{
	kindFree:    grid.CharPassable,
	kindBlocked: grid.CharBlocked,
	kindVisited: CharVisited,
	kindPath:    CharPath,
	kindStart:   grid.CharStart,
	kindEnd:     grid.CharEnd,
}

// ASCII writes g with res overlaid, one line per row.
func ASCII(w io.Writer, g *grid.Grid, res *gridsearch.Result, start, end grid.Position) error {
	kinds := overlay(g, res, start, end)
	bw := bufio.NewWriter(w)
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			bw.WriteByte(asciiChars[kinds[r*g.Cols()+c]])
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
