package bmp

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"math/bits"
)

const bytesPerPixel = BitsPerPixel / 8

// Color is a 24-bit RGB pixel. In the file the bytes are stored as B, G, R.
type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color. Bitmap pixels are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Padding returns the number of bytes appended to each row of the given
// width so the row length is a multiple of 4.
func Padding(width int) int {
	return (4 - (width*bytesPerPixel)%4) % 4
}

// RowStride returns the number of bytes from the start of one row to the
// start of the next, padding included.
func RowStride(width int) int {
	return width*bytesPerPixel + Padding(width)
}

// PixelGrid is a row-major view over the raw, bottom-up pixel array.
// Logical row 0 is the top row of the picture, which is the last row stored
// in the file. The grid owns a single buffer and never copies rows.
type PixelGrid struct {
	raw    []byte
	width  int
	height int
	stride int
}

func (g *PixelGrid) Width() int  { return g.width }
func (g *PixelGrid) Height() int { return g.height }
func (g *PixelGrid) Stride() int { return g.stride }

// offset returns where the pixel at (row, col) starts in the raw buffer.
func (g *PixelGrid) offset(row, col int) int {
	return g.stride*(g.height-1-row) + col*bytesPerPixel
}

// At returns the pixel at (row, col). The caller guarantees the bounds.
func (g *PixelGrid) At(row, col int) Color {
	p := g.raw[g.offset(row, col):]
	return Color{R: p[2], G: p[1], B: p[0]}
}

// Checks the dimensions and returns the stride and the size of the pixel
// array. maxPixels <= 0 means no limit.
func pixelArraySize(dib DibInfo, maxPixels int64) (stride, total int, err error) {
	if dib.Height < 0 {
		// Top-down storage is a valid bitmap, just not one this decoder reads.
		return 0, 0, fmt.Errorf("%w: %w: negative height %d (top-down bitmap)",
			ErrUnsupported, ErrInvalidDimension, dib.Height)
	}
	if dib.Width <= 0 || dib.Height == 0 {
		return 0, 0, dimensionError("%d x %d", dib.Width, dib.Height)
	}

	width, height := uint64(dib.Width), uint64(dib.Height)
	if maxPixels > 0 {
		if hi, n := bits.Mul64(width, height); hi != 0 || n > uint64(maxPixels) {
			return 0, 0, dimensionError("%d x %d exceeds the limit of %d pixels", width, height, maxPixels)
		}
	}

	// width is at most 2^31-1, so the stride always fits in 64 bits
	rowStride := (width*bytesPerPixel + 3) &^ 3
	hi, size := bits.Mul64(rowStride, height)
	if hi != 0 || size > math.MaxInt || rowStride > math.MaxInt {
		return 0, 0, dimensionError("%d x %d pixel array does not fit in memory", width, height)
	}
	return int(rowStride), int(size), nil
}

// Reads the pixel array described by header and dib.
func DecodePixels(r io.ReadSeeker, header FileHeader, dib DibInfo) (*PixelGrid, error) {
	return decodePixels(newSource(r), header, dib, 0)
}

func decodePixels(src *source, header FileHeader, dib DibInfo, maxPixels int64) (*PixelGrid, error) {
	// Support only 24bit uncompressed Bitmaps
	if err := dib.Validate(); err != nil {
		return nil, err
	}

	stride, total, err := pixelArraySize(dib, maxPixels)
	if err != nil {
		return nil, err
	}

	// The pixel array can not overlap the headers
	offset := int64(header.PixelDataOffset)
	if minOffset := int64(FileHeaderSize) + int64(dib.DibSize); offset < minOffset {
		return nil, formatError("pixel data offset %d overlaps the headers (ends at %d)", offset, minOffset)
	}

	// Check what is left of the source before allocating anything
	size, err := src.size()
	if err != nil {
		return nil, err
	}
	if available := size - offset; available < int64(total) {
		return nil, formatError("pixel array needs %d bytes at offset %d, source has %d", total, offset, max(available, 0))
	}

	// Seek to Pixel Array (PixelDataOffset)
	if err := src.seek(offset); err != nil {
		return nil, err
	}
	raw, err := src.readExact(total)
	if err != nil {
		return nil, err
	}

	return &PixelGrid{
		raw:    raw,
		width:  int(dib.Width),
		height: int(dib.Height),
		stride: stride,
	}, nil
}
