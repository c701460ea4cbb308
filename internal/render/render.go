// Package render paints a PixelSource onto a truecolor terminal.
package render

import (
	"bufio"
	"io"
	"os"

	"github.com/anas-shakeel/bmpview/internal/bmp"
	"github.com/anas-shakeel/bmpview/internal/utils"
	"github.com/mattn/go-isatty"
)

// DefaultBlock is painted once per pixel; two cells make a roughly square pixel.
const DefaultBlock = "  "

// Renderer draws images, one terminal line per pixel row.
type Renderer struct {
	out   io.Writer
	block string
}

// New returns a Renderer writing to out. An empty block uses DefaultBlock.
func New(out io.Writer, block string) *Renderer {
	if block == "" {
		block = DefaultBlock
	}
	return &Renderer{out: out, block: block}
}

// Draw paints every pixel of src, top row first. Use for small images only
func (r *Renderer) Draw(src bmp.PixelSource) error {
	// Create a buffer (to reduce syscalls)
	w := bufio.NewWriter(r.out)

	for row := range src.Height() {
		for col := range src.Width() {
			pixel, err := src.PixelAt(row, col)
			if err != nil {
				return err
			}
			if _, err := w.WriteString(utils.ColoredBlock(r.block, pixel.R, pixel.G, pixel.B)); err != nil {
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}

	return w.Flush()
}

// IsTerminal reports whether w is a terminal that can show the colors.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
