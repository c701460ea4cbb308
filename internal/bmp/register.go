package bmp

import (
	"bytes"
	"image"
	"image/color"
	"io"
)

func init() {
	image.RegisterFormat("bmp", "BM", decodeImage, decodeConfig)
}

// image.Decode hands over a plain reader, so the whole file is buffered.
func decodeImage(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, ioError("read", err)
	}
	return Decode(bytes.NewReader(data))
}

func decodeConfig(r io.Reader) (image.Config, error) {
	buf := make([]byte, FileHeaderSize+InfoHeaderSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return image.Config{}, ioError("read", err)
	}

	src := bytes.NewReader(buf[:n])
	if ok, _ := IsBmp(src); !ok {
		return image.Config{}, ErrNotBitmap
	}
	dib, err := DecodeDib(src)
	if err != nil {
		return image.Config{}, err
	}
	if err := dib.Validate(); err != nil {
		return image.Config{}, err
	}
	if _, _, err := pixelArraySize(dib, 0); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.RGBAModel,
		Width:      int(dib.Width),
		Height:     int(dib.Height),
	}, nil
}
