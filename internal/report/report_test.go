package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/anas-shakeel/bmpview/internal/bmp"
	"github.com/anas-shakeel/bmpview/internal/bmp/bmptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParseFormat(t *testing.T) {
	tests := map[string]Format{
		"":      FormatTable,
		"table": FormatTable,
		"JSON":  FormatJSON,
		" yml ": FormatYAML,
		"yaml":  FormatYAML,
	}
	for in, want := range tests {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseFormat("csv")
	assert.Error(t, err)
}

func TestNewMetadata(t *testing.T) {
	img, _ := bmptest.Image(t, "/pics/a.bmp", bmptest.Gradient(5, 2))
	m := NewMetadata(img)

	assert.Equal(t, "/pics/a.bmp", m.Path)
	assert.Equal(t, int32(5), m.Dib.Width)
	assert.Equal(t, 16, m.Stride)
	assert.Equal(t, 1, m.Padding)
	assert.Equal(t, 10, m.PixelCount)
}

func TestPrintMetadataTable(t *testing.T) {
	img, _ := bmptest.Image(t, "/pics/a.bmp", bmptest.Gradient(3, 2))

	var buf bytes.Buffer
	require.NoError(t, PrintMetadata(&buf, FormatTable, NewMetadata(img)))

	out := buf.String()
	for _, want := range []string{
		"File: /pics/a.bmp",
		"----- BMP HEADER -----",
		"----- DIB -----",
		"File size",
		"Data offset",
		"54",
		"Image width",
		"Number of important colors",
		"Row stride",
	} {
		assert.Contains(t, out, want)
	}
}

func TestPrintMetadataJSON(t *testing.T) {
	img, _ := bmptest.Image(t, "/pics/a.bmp", bmptest.Gradient(3, 2))

	var buf bytes.Buffer
	require.NoError(t, PrintMetadata(&buf, FormatJSON, NewMetadata(img)))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	header := decoded["header"].(map[string]any)
	dib := decoded["dib"].(map[string]any)
	assert.Equal(t, "BM", header["signature"])
	assert.Equal(t, float64(54), header["pixel_data_offset"])
	assert.Equal(t, float64(3), dib["width"])
	assert.Equal(t, float64(24), dib["bits_per_pixel"])
	assert.Equal(t, float64(12), decoded["stride"])
}

func TestPrintMetadataYAML(t *testing.T) {
	img, _ := bmptest.Image(t, "/pics/a.bmp", bmptest.Gradient(3, 2))

	var buf bytes.Buffer
	require.NoError(t, PrintMetadata(&buf, FormatYAML, NewMetadata(img)))

	var decoded struct {
		Header struct {
			Signature string `yaml:"signature"`
		} `yaml:"header"`
		Dib struct {
			Height int `yaml:"height"`
		} `yaml:"dib"`
		PixelCount int `yaml:"pixel_count"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "BM", decoded.Header.Signature)
	assert.Equal(t, 2, decoded.Dib.Height)
	assert.Equal(t, 6, decoded.PixelCount)
}

func TestPrintPixel(t *testing.T) {
	p := NewPixel(1, 2, bmp.Color{R: 10, G: 20, B: 30})

	var buf bytes.Buffer
	require.NoError(t, PrintPixel(&buf, FormatTable, p))
	assert.Equal(t, "Pixel at position (1, 2):\n- Red: 10\n- Green: 20\n- Blue: 30\n", buf.String())

	buf.Reset()
	require.NoError(t, PrintPixel(&buf, FormatJSON, p))
	assert.JSONEq(t, `{"row":1,"col":2,"red":10,"green":20,"blue":30}`, buf.String())

	buf.Reset()
	require.NoError(t, PrintPixel(&buf, FormatYAML, p))
	assert.Contains(t, buf.String(), "green: 20")

	assert.Error(t, PrintPixel(&buf, Format("xml"), p))
}

func TestDescribeError(t *testing.T) {
	rangeErr := &bmp.RangeError{Row: 4, Col: 0, Height: 4, Width: 3}

	assert.Equal(t, "Position (5, 1) is outside the image: rows go from 1 to 4, columns from 1 to 3.", DescribeError(rangeErr, 1))
	assert.Equal(t, "Position (4, 0) is outside the image: rows go from 0 to 3, columns from 0 to 2.", DescribeError(rangeErr, 0))
	assert.Equal(t, "This file is not a bitmap file.", DescribeError(bmp.ErrNotBitmap, 1))
}
