// Package menu implements the interactive bitmap inspector.
package menu

import (
	"fmt"
	"io"

	"github.com/anas-shakeel/bmpview/internal/bmp"
	"github.com/anas-shakeel/bmpview/internal/logger"
	"github.com/anas-shakeel/bmpview/internal/render"
	"github.com/anas-shakeel/bmpview/internal/report"
)

// Menu choices, in display order.
const (
	ChoiceShowData = iota
	ChoiceShowPixel
	ChoiceDraw
	ChoiceExit
)

// Items are the menu entries shown to the user.
var Items = []string{
	ChoiceShowData:  "Display all data of the bitmap file",
	ChoiceShowPixel: "Display RGB information of the pixel at row i and column j",
	ChoiceDraw:      "Display the bitmap image",
	ChoiceExit:      "Exit",
}

// Options tune how the menu presents things.
type Options struct {
	// View is what gets drawn; nil draws the image itself
	View bmp.PixelSource

	// Block is painted per pixel when drawing
	Block string

	// Format of the data and pixel reports
	Format report.Format

	// IndexBase is the number of the first row and column as typed by the user
	IndexBase int
}

// Menu runs the inspect loop for one image.
type Menu struct {
	img      *bmp.Image
	prompter Prompter
	out      io.Writer
	opts     Options
}

// New returns a Menu for img that reads choices from p and writes to out.
func New(img *bmp.Image, p Prompter, out io.Writer, opts Options) *Menu {
	if opts.View == nil {
		opts.View = img
	}
	if opts.Format == "" {
		opts.Format = report.FormatTable
	}
	return &Menu{img: img, prompter: p, out: out, opts: opts}
}

// Run shows the menu until the user exits or aborts. Errors from a single
// action are shown to the user and the loop goes on; only a failing menu
// prompt ends it early.
func (m *Menu) Run() error {
	for {
		choice, err := m.prompter.Select("Menu", Items)
		if err != nil {
			if IsAborted(err) {
				fmt.Fprintln(m.out, "You have exited the program.")
				return nil
			}
			return err
		}
		logger.Debug("menu choice", logger.KeyChoice, choice)

		switch choice {
		case ChoiceShowData:
			err = report.PrintMetadata(m.out, m.opts.Format, report.NewMetadata(m.img))
		case ChoiceShowPixel:
			err = m.showPixel()
		case ChoiceDraw:
			err = render.New(m.out, m.opts.Block).Draw(m.opts.View)
		case ChoiceExit:
			fmt.Fprintln(m.out, "You have exited the program.")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice.")
		}

		if err != nil {
			if IsAborted(err) {
				fmt.Fprintln(m.out, "You have exited the program.")
				return nil
			}
			logger.Warn("menu action failed", logger.KeyChoice, choice, logger.KeyError, err)
			fmt.Fprintln(m.out, report.DescribeError(err, m.opts.IndexBase))
		}
		fmt.Fprintln(m.out)
	}
}

// showPixel asks for a position and prints the color found there.
func (m *Menu) showPixel() error {
	base := m.opts.IndexBase

	row, err := m.prompter.InputInt(fmt.Sprintf("Row (%d-%d)", base, m.img.Height()-1+base))
	if err != nil {
		return err
	}
	col, err := m.prompter.InputInt(fmt.Sprintf("Column (%d-%d)", base, m.img.Width()-1+base))
	if err != nil {
		return err
	}

	pixel, err := m.img.PixelAt(row-base, col-base)
	if err != nil {
		return err
	}
	logger.Debug("pixel lookup", logger.KeyRow, row, logger.KeyCol, col)

	return report.PrintPixel(m.out, m.opts.Format, report.NewPixel(row, col, pixel))
}
