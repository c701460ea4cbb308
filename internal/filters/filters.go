// Filters perform per-pixel color manipulation on a read-only view of an
// image. The underlying image is never modified.
package filters

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/anas-shakeel/bmpview/internal/bmp"
	"github.com/anas-shakeel/bmpview/internal/utils"
)

// Filter maps one pixel color to another.
type Filter func(bmp.Color) bmp.Color

// view applies a Filter to every pixel read from src.
type view struct {
	src    bmp.PixelSource
	filter Filter
}

func (v *view) Width() int  { return v.src.Width() }
func (v *view) Height() int { return v.src.Height() }

func (v *view) PixelAt(row, col int) (bmp.Color, error) {
	c, err := v.src.PixelAt(row, col)
	if err != nil {
		return bmp.Color{}, err
	}
	return v.filter(c), nil
}

// Apply returns src seen through filter. A nil filter returns src as is.
func Apply(src bmp.PixelSource, filter Filter) bmp.PixelSource {
	if filter == nil {
		return src
	}
	return &view{src: src, filter: filter}
}

// Inverts (negates) a color
func Invert(c bmp.Color) bmp.Color {
	return bmp.Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Converts a color to gray (average of the channels)
func Grayscale(c bmp.Color) bmp.Color {
	avg := byte(utils.Average(int(c.R), int(c.G), int(c.B)))
	return bmp.Color{R: avg, G: avg, B: avg}
}

// Converts a color to gray (with ITU-R 601-2 Luma Transform)
func GrayscaleLuma(c bmp.Color) bmp.Color {
	L := byte(int(c.R)*299/1000 + int(c.G)*587/1000 + int(c.B)*114/1000)
	return bmp.Color{R: L, G: L, B: L}
}

// Returns a brightness filter.
//
// method can be "add" (adds factor to each channel) or "multiply" (multiplies each channel by factor).
// Channel values are clipped to [0, 255].
func Brightness(factor float64, method string) (Filter, error) {
	var operation func(x float64) float64

	// Select an operation of brightness (additive or multiplicative)
	switch method {
	case "add":
		operation = func(x float64) float64 { return x + factor }
	case "multiply":
		operation = func(x float64) float64 { return x * factor }
	default:
		return nil, errors.New("invalid method: method must be add or multiply")
	}

	return func(c bmp.Color) bmp.Color {
		return bmp.Color{
			R: clip(operation(float64(c.R))),
			G: clip(operation(float64(c.G))),
			B: clip(operation(float64(c.B))),
		}
	}, nil
}

// Returns a contrast filter for src.
// factor > 1.0 increases Contrast, factor < 1.0 decreases it.
func Contrast(src bmp.PixelSource, factor float64) (Filter, error) {
	// Compute mean for each channel
	var sumR, sumG, sumB int
	for row := range src.Height() {
		for col := range src.Width() {
			p, err := src.PixelAt(row, col)
			if err != nil {
				return nil, err
			}
			sumR += int(p.R)
			sumG += int(p.G)
			sumB += int(p.B)
		}
	}
	totalPixels := src.Width() * src.Height()
	if totalPixels == 0 {
		return func(c bmp.Color) bmp.Color { return c }, nil
	}
	meanR := float64(sumR / totalPixels) // Average of all R pixels
	meanG := float64(sumG / totalPixels) // Average of all G pixels
	meanB := float64(sumB / totalPixels) // Average of all B pixels

	return func(p bmp.Color) bmp.Color {
		return bmp.Color{
			R: clip(float64(p.R)*factor + (1-factor)*meanR),
			G: clip(float64(p.G)*factor + (1-factor)*meanG),
			B: clip(float64(p.B)*factor + (1-factor)*meanB),
		}
	}, nil
}

// Names accepted by ByName.
var Names = []string{"none", "invert", "grayscale", "gray", "luma"}

// ByName returns the parameterless filter with the given name; "none" and
// "" return a nil Filter.
func ByName(name string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return nil, nil
	case "invert":
		return Invert, nil
	case "grayscale", "gray":
		return Grayscale, nil
	case "luma":
		return GrayscaleLuma, nil
	default:
		return nil, fmt.Errorf("unknown filter %q (valid: %s)", name, strings.Join(Names, ", "))
	}
}

func clip(v float64) byte {
	return byte(math.Min(math.Max(v, 0), 255))
}
