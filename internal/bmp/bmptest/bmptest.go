// Package bmptest builds synthetic bitmaps for tests.
package bmptest

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/anas-shakeel/bmpview/internal/bmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// Encode builds a 24-bit uncompressed bitmap. pixels[0] is the top row of
// the picture, so it is written last (bottom-up).
func Encode(t testing.TB, pixels [][]bmp.Color) []byte {
	t.Helper()

	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}
	sizeImage := uint32(bmp.RowStride(width) * height)

	var buf bytes.Buffer
	w := func(v any) {
		require.NoError(t, binary.Write(&buf, binary.LittleEndian, v))
	}

	// File Header
	w([2]byte{'B', 'M'})
	w(uint32(bmp.FileHeaderSize + bmp.InfoHeaderSize + sizeImage))
	w(uint16(0))
	w(uint16(0))
	w(uint32(bmp.FileHeaderSize + bmp.InfoHeaderSize))

	// Info Header
	w(uint32(bmp.InfoHeaderSize))
	w(int32(width))
	w(int32(height))
	w(uint16(1))
	w(uint16(24))
	w(uint32(0))
	w(sizeImage)
	w(int32(2835))
	w(int32(2835))
	w(uint32(0))
	w(uint32(0))

	// Pixels, last display row first
	padding := make([]byte, bmp.Padding(width))
	for row := height - 1; row >= 0; row-- {
		for _, p := range pixels[row] {
			buf.Write([]byte{p.B, p.G, p.R})
		}
		buf.Write(padding)
	}

	return buf.Bytes()
}

// Gradient returns a w x h picture where every pixel is distinct.
func Gradient(w, h int) [][]bmp.Color {
	pixels := make([][]bmp.Color, h)
	for row := range h {
		pixels[row] = make([]bmp.Color, w)
		for col := range w {
			pixels[row][col] = bmp.Color{R: uint8(row * 16), G: uint8(col * 16), B: uint8(row + col)}
		}
	}
	return pixels
}

// Patch returns a copy of data with v written little-endian at offset.
func Patch[T uint16 | uint32 | int32](data []byte, offset int, v T) []byte {
	out := bytes.Clone(data)
	var b bytes.Buffer
	_ = binary.Write(&b, binary.LittleEndian, v)
	copy(out[offset:], b.Bytes())
	return out
}

// Image decodes pixels into an Image stored at path in a fresh in-memory
// filesystem, and returns both.
func Image(t testing.TB, path string, pixels [][]bmp.Color) (*bmp.Image, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, path, Encode(t, pixels), 0644))

	img, err := bmp.LoadFS(fs, path)
	require.NoError(t, err)
	return img, fs
}
