package scenario

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // register decoders for LoadImage
	_ "image/png"
	"os"

	"github.com/yalue/image_utils"

	"github.com/katalvlaran/pathlab/grid"
)

// DefaultThreshold is the luma below which a pixel becomes a wall.
const DefaultThreshold uint8 = 128

// ImageOption configures FromImage.
type ImageOption func(*imageOptions)

type imageOptions struct {
	rows, cols int
	threshold  uint8
}

// WithSize resamples the image to rows x cols pixels before conversion.
// Non-positive values keep the image size.
func WithSize(rows, cols int) ImageOption {
	return func(o *imageOptions) {
		if rows > 0 && cols > 0 {
			o.rows, o.cols = rows, cols
		}
	}
}

// WithThreshold sets the luma threshold.
func WithThreshold(t uint8) ImageOption {
	return func(o *imageOptions) { o.threshold = t }
}

// FromImage converts img to a grid, one cell per pixel. Pixels darker than
// the threshold are blocked; fully transparent pixels are passable.
func FromImage(img image.Image, opts ...ImageOption) (*grid.Grid, error) {
	o := imageOptions{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rows > 0 {
		img = image_utils.ResizeImage(img, o.cols, o.rows)
	}

	b := img.Bounds()
	cells := make([][]grid.Cell, b.Dy())
	for y := 0; y < b.Dy(); y++ {
		row := make([]grid.Cell, b.Dx())
		for x := 0; x < b.Dx(); x++ {
			px := img.At(b.Min.X+x, b.Min.Y+y)
			if _, _, _, a := px.RGBA(); a == 0 {
				continue
			}
			if color.GrayModel.Convert(px).(color.Gray).Y < o.threshold {
				row[x] = grid.Blocked
			}
		}
		cells[y] = row
	}

	return grid.New(cells)
}

// LoadImage decodes the PNG or JPEG file at path and converts it with FromImage.
func LoadImage(path string, opts ...ImageOption) (*grid.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding %s: %w", ErrBadScenario, path, err)
	}

	return FromImage(img, opts...)
}
