// Adjusts which part of an image is shown, without copying pixels.
package adjustments

import (
	"errors"

	"github.com/anas-shakeel/bmpview/internal/bmp"
)

// region is a rectangular window into another PixelSource.
type region struct {
	src           bmp.PixelSource
	x, y          int
	width, height int
}

func (r *region) Width() int  { return r.width }
func (r *region) Height() int { return r.height }

func (r *region) PixelAt(row, col int) (bmp.Color, error) {
	if row < 0 || row >= r.height || col < 0 || col >= r.width {
		return bmp.Color{}, &bmp.RangeError{Row: row, Col: col, Height: r.height, Width: r.width}
	}
	return r.src.PixelAt(row+r.y, col+r.x)
}

// Crops a region in the image (0,0 is at the top-left of the image)
func Crop(src bmp.PixelSource, x, y, width, height int) (bmp.PixelSource, error) {
	// Validate bounds
	if x < 0 || y < 0 {
		return nil, errors.New("invalid bounds: origin must not be negative")
	} else if width <= 0 || height <= 0 {
		return nil, errors.New("invalid bounds: width and height must be greater than 0")
	} else if width > src.Width()-x {
		return nil, errors.New("invalid bounds: width out of bounds")
	} else if height > src.Height()-y {
		return nil, errors.New("invalid bounds: height out of bounds")
	}

	return &region{src: src, x: x, y: y, width: width, height: height}, nil
}
