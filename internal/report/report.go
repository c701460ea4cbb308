// Package report prints bitmap metadata and pixel colors as tables, JSON or
// YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/anas-shakeel/bmpview/internal/bmp"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ParseFormat parses a string into a Format, returning an error if invalid.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "table", "":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format: %q (valid: table, json, yaml)", s)
	}
}

// Metadata is everything known about a bitmap except its pixels.
type Metadata struct {
	Path       string         `json:"path,omitempty" yaml:"path,omitempty"`
	Header     bmp.FileHeader `json:"header" yaml:"header"`
	Dib        bmp.DibInfo    `json:"dib" yaml:"dib"`
	Stride     int            `json:"stride" yaml:"stride"`
	Padding    int            `json:"padding" yaml:"padding"`
	PixelCount int            `json:"pixel_count" yaml:"pixel_count"`
}

// NewMetadata collects the metadata of img.
func NewMetadata(img *bmp.Image) Metadata {
	return Metadata{
		Path:       img.Path(),
		Header:     img.Header(),
		Dib:        img.Dib(),
		Stride:     img.Stride(),
		Padding:    img.Padding(),
		PixelCount: img.Width() * img.Height(),
	}
}

// headerRows returns the "BMP HEADER" section.
func (m Metadata) headerRows() [][2]string {
	h := m.Header
	return [][2]string{
		{"Signature", h.Signature.String()},
		{"File size", fmtUint(h.FileSize)},
		{"Reserved 1", fmtUint(h.Reserved1)},
		{"Reserved 2", fmtUint(h.Reserved2)},
		{"Data offset", fmtUint(h.PixelDataOffset)},
	}
}

// dibRows returns the "DIB" section plus the derived layout values.
func (m Metadata) dibRows() [][2]string {
	d := m.Dib
	return [][2]string{
		{"DIB size", fmtUint(d.DibSize)},
		{"Image width", fmtInt(d.Width)},
		{"Image height", fmtInt(d.Height)},
		{"Number of color planes", fmtUint(d.ColorPlaneCount)},
		{"Pixel size", fmtUint(d.BitsPerPixel)},
		{"Compression algorithm", fmtUint(d.Compression)},
		{"Pixel array size", fmtUint(d.ImageDataSize)},
		{"Horizontal resolution", fmtInt(d.HRes)},
		{"Vertical resolution", fmtInt(d.VRes)},
		{"Number of colors", fmtUint(d.ColorCount)},
		{"Number of important colors", fmtUint(d.ImportantColorCount)},
		{"Row stride", strconv.Itoa(m.Stride)},
		{"Row padding", strconv.Itoa(m.Padding)},
		{"Pixel count", strconv.Itoa(m.PixelCount)},
	}
}

// PrintMetadata writes m to w in the given format.
func PrintMetadata(w io.Writer, format Format, m Metadata) error {
	switch format {
	case FormatTable:
		if m.Path != "" {
			fmt.Fprintf(w, "File: %s\n\n", m.Path)
		}
		fmt.Fprintln(w, "----- BMP HEADER -----")
		SimpleTable(w, m.headerRows())
		fmt.Fprintln(w)
		fmt.Fprintln(w, "----- DIB -----")
		SimpleTable(w, m.dibRows())
		return nil
	case FormatJSON:
		return PrintJSON(w, m)
	case FormatYAML:
		return PrintYAML(w, m)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// Pixel is the color at a position, with the position as the user gave it.
type Pixel struct {
	Row   int   `json:"row" yaml:"row"`
	Col   int   `json:"col" yaml:"col"`
	Red   uint8 `json:"red" yaml:"red"`
	Green uint8 `json:"green" yaml:"green"`
	Blue  uint8 `json:"blue" yaml:"blue"`
}

// NewPixel pairs a color with its position.
func NewPixel(row, col int, c bmp.Color) Pixel {
	return Pixel{Row: row, Col: col, Red: c.R, Green: c.G, Blue: c.B}
}

// PrintPixel writes p to w in the given format.
func PrintPixel(w io.Writer, format Format, p Pixel) error {
	switch format {
	case FormatTable:
		fmt.Fprintf(w, "Pixel at position (%d, %d):\n", p.Row, p.Col)
		fmt.Fprintf(w, "- Red: %d\n", p.Red)
		fmt.Fprintf(w, "- Green: %d\n", p.Green)
		fmt.Fprintf(w, "- Blue: %d\n", p.Blue)
		return nil
	case FormatJSON:
		return PrintJSON(w, p)
	case FormatYAML:
		return PrintYAML(w, p)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// DescribeError is bmp.Describe with positions shown in the user's index
// base, which is how rows and columns were typed in.
func DescribeError(err error, indexBase int) string {
	var rangeErr *bmp.RangeError
	if errors.As(err, &rangeErr) {
		return fmt.Sprintf("Position (%d, %d) is outside the image: rows go from %d to %d, columns from %d to %d.",
			rangeErr.Row+indexBase, rangeErr.Col+indexBase,
			indexBase, rangeErr.Height-1+indexBase,
			indexBase, rangeErr.Width-1+indexBase)
	}
	return bmp.Describe(err)
}

// SimpleTable prints a borderless key-value table.
func SimpleTable(w io.Writer, pairs [][2]string) {
	table := tablewriter.NewWriter(w)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator(":")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("  ")
	table.SetNoWhiteSpace(true)

	for _, pair := range pairs {
		table.Append([]string{"- " + pair[0], pair[1]})
	}

	table.Render()
}

// PrintJSON writes data as indented JSON.
func PrintJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintYAML writes data as YAML.
func PrintYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	defer func() { _ = encoder.Close() }()
	return encoder.Encode(data)
}

func fmtUint[T uint16 | uint32](v T) string { return strconv.FormatUint(uint64(v), 10) }

func fmtInt(v int32) string { return strconv.FormatInt(int64(v), 10) }
