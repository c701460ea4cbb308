// bmp package implements a reader for uncompressed 24-bit bitmaps.
package bmp

import (
	"image"
	"image/color"
	"io"

	"github.com/spf13/afero"
)

// PixelSource is anything with a size that can be asked for the color at a
// position. Row 0 is the top of the picture.
type PixelSource interface {
	Width() int
	Height() int
	PixelAt(row, col int) (Color, error)
}

// Image is a decoded bitmap. It is never modified after decoding, so it can
// be shared between goroutines.
type Image struct {
	path   string
	header FileHeader
	dib    DibInfo
	grid   *PixelGrid
}

var (
	_ PixelSource = (*Image)(nil)
	_ image.Image = (*Image)(nil)
)

func (img *Image) Path() string       { return img.path }
func (img *Image) Header() FileHeader { return img.header }
func (img *Image) Dib() DibInfo       { return img.dib }
func (img *Image) Width() int         { return img.grid.Width() }
func (img *Image) Height() int        { return img.grid.Height() }
func (img *Image) Stride() int        { return img.grid.Stride() }
func (img *Image) Padding() int       { return Padding(img.grid.Width()) }

// PixelAt returns the color at (row, col), both 0-based.
func (img *Image) PixelAt(row, col int) (Color, error) {
	if row < 0 || row >= img.Height() || col < 0 || col >= img.Width() {
		return Color{}, &RangeError{Row: row, Col: col, Height: img.Height(), Width: img.Width()}
	}
	return img.grid.At(row, col), nil
}

// ColorModel implements image.Image.
func (img *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.Width(), img.Height())
}

// At implements image.Image; x is the column and y the row.
func (img *Image) At(x, y int) color.Color {
	c, err := img.PixelAt(y, x)
	if err != nil {
		return color.RGBA{}
	}
	return c
}

// Decoder loads bitmaps from a filesystem.
type Decoder struct {
	// Fs is where Load opens files. Nil means the OS filesystem.
	Fs afero.Fs

	// MaxPixels rejects images with more pixels than this. Zero or less
	// means no limit.
	MaxPixels int64
}

var defaultDecoder = &Decoder{}

// Reads a Bitmap file from the OS filesystem
func Load(path string) (*Image, error) {
	return defaultDecoder.Load(path)
}

// Reads a Bitmap file from fs
func LoadFS(fs afero.Fs, path string) (*Image, error) {
	d := Decoder{Fs: fs}
	return d.Load(path)
}

// Decodes a bitmap from r.
func Decode(r io.ReadSeeker) (*Image, error) {
	return defaultDecoder.Decode(r)
}

// Load opens path, decodes it, and closes the file on every path out.
func (d *Decoder) Load(path string) (*Image, error) {
	fs := d.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	// Open the file
	file, err := fs.Open(path)
	if err != nil {
		return nil, ioError("open", err)
	}
	defer file.Close()

	img, err := d.Decode(file)
	if err != nil {
		return nil, err
	}
	img.path = path
	return img, nil
}

// Decode runs the pipeline: signature, file header, DIB, pixel array.
// Any failure aborts the whole decode and no image is returned.
func (d *Decoder) Decode(r io.ReadSeeker) (*Image, error) {
	ok, err := IsBmp(r)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotBitmap
	}

	header, err := DecodeHeader(r)
	if err != nil {
		return nil, err
	}

	dib, err := DecodeDib(r)
	if err != nil {
		return nil, err
	}

	grid, err := decodePixels(newSource(r), header, dib, d.MaxPixels)
	if err != nil {
		return nil, err
	}

	return &Image{
		header: header,
		dib:    dib,
		grid:   grid,
	}, nil
}
