package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/gridsearch"
)

// ErrCellSize is returned when the requested cell size is not positive.
var ErrCellSize = errors.New("render: cell size must be positive")

// Palette maps overlay layers to colours.
var (
	ColorFree    = color.RGBA{255, 255, 255, 255}
	ColorBlocked = color.RGBA{52, 73, 94, 255}
	ColorVisited = color.RGBA{129, 236, 236, 255}
	ColorPath    = color.RGBA{253, 203, 110, 255}
	ColorStart   = color.RGBA{40, 180, 70, 255}
	ColorEnd     = color.RGBA{214, 48, 49, 255}
)

func kindColor(k cellKind) color.RGBA {
	switch k {
	case kindBlocked:
		return ColorBlocked
	case kindVisited:
		return ColorVisited
	case kindPath:
		return ColorPath
	case kindStart:
		return ColorStart
	case kindEnd:
		return ColorEnd
	}

	return ColorFree
}

// Raster returns the overlay as an image with one pixel per cell:
// pixel (x, y) is cell (row y, col x).
func Raster(g *grid.Grid, res *gridsearch.Result, start, end grid.Position) *image.RGBA {
	kinds := overlay(g, res, start, end)
	img := image.NewRGBA(image.Rect(0, 0, g.Cols(), g.Rows()))
	for i, k := range kinds {
		p := g.Position(i)
		img.SetRGBA(p.Col, p.Row, kindColor(k))
	}

	return img
}

func square(size int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)

	return img
}

// PNG writes the overlay scaled to cellPx pixels per cell. Start and end
// are stamped as solid squares on top of the scaled raster.
func PNG(w io.Writer, g *grid.Grid, res *gridsearch.Result, start, end grid.Position, cellPx int) error {
	if cellPx <= 0 {
		return fmt.Errorf("%w: %d", ErrCellSize, cellPx)
	}

	scaled := image_utils.ResizeImage(Raster(g, res, start, end), g.Cols()*cellPx, g.Rows()*cellPx)
	pic := image_utils.NewCompositeImage()
	if err := pic.AddImage(scaled, image.Pt(0, 0)); err != nil {
		return fmt.Errorf("render: base raster: %w", err)
	}
	for _, m := range []struct {
		p grid.Position
		c color.RGBA
	}{{start, ColorStart}, {end, ColorEnd}} {
		if !g.InBounds(m.p) {
			continue
		}
		if err := pic.AddImage(square(cellPx, m.c), image.Pt(m.p.Col*cellPx, m.p.Row*cellPx)); err != nil {
			return fmt.Errorf("render: marker %s: %w", m.p, err)
		}
	}

	return png.Encode(w, image_utils.ToRGBA(pic))
}
