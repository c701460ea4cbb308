// BMP-specific structs and the fixed-layout header decoders
package bmp

import (
	"encoding/binary"
	"errors"
	"io"
)

const (
	FileHeaderSize = 14 // BITMAPFILEHEADER
	InfoHeaderSize = 40 // BITMAPINFOHEADER

	BitsPerPixel   = 24 // the only supported depth
	CompressionRGB = 0  // BI_RGB, uncompressed
)

// Signature is the 2-byte file type tag; "BM" for bitmaps.
type Signature [2]byte

var bmpSignature = Signature{0x42, 0x4d}

func (s Signature) String() string { return string(s[:]) }

func (s Signature) MarshalText() ([]byte, error) { return s[:], nil }

// Valid reports whether the signature is "BM".
func (s Signature) Valid() bool { return s == bmpSignature }

// The FileHeader structure contains information about the type, size,
// and layout of a file that contains a DIB [device-independent bitmap].
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
type FileHeader struct {
	Signature       Signature `json:"signature" yaml:"signature"`
	FileSize        uint32    `json:"file_size" yaml:"file_size"`                 // The size, in bytes, of the bitmap file.
	Reserved1       uint16    `json:"reserved1" yaml:"reserved1"`                 // Reserved; must be zero.
	Reserved2       uint16    `json:"reserved2" yaml:"reserved2"`                 // Reserved; must be zero.
	PixelDataOffset uint32    `json:"pixel_data_offset" yaml:"pixel_data_offset"` // Offset (in bytes) to the pixel array
}

// The DibInfo structure contains information about the
// dimensions and color format of a DIB [device-independent bitmap].
type DibInfo struct {
	DibSize             uint32 `json:"dib_size" yaml:"dib_size"`                           // The number of bytes required by the structure.
	Width               int32  `json:"width" yaml:"width"`                                 // The width of the bitmap, in pixels.
	Height              int32  `json:"height" yaml:"height"`                               // The height of the bitmap, in pixels. Negative means top-down.
	ColorPlaneCount     uint16 `json:"color_plane_count" yaml:"color_plane_count"`         // The number of planes for the target device.
	BitsPerPixel        uint16 `json:"bits_per_pixel" yaml:"bits_per_pixel"`               // The number of bits-per-pixel.
	Compression         uint32 `json:"compression" yaml:"compression"`                     // The type of compression
	ImageDataSize       uint32 `json:"image_data_size" yaml:"image_data_size"`             // The size of the image (in bytes), may be 0 for BI_RGB.
	HRes                int32  `json:"h_res" yaml:"h_res"`                                 // The horizontal resolution, in pixels-per-meter.
	VRes                int32  `json:"v_res" yaml:"v_res"`                                 // The vertical resolution, in pixels-per-meter.
	ColorCount          uint32 `json:"color_count" yaml:"color_count"`                     // Number of color indexes actually used by the bitmap.
	ImportantColorCount uint32 `json:"important_color_count" yaml:"important_color_count"` // Number of color indexes required for displaying the bitmap.
}

// Validate rejects the formats the pixel decoder cannot handle.
func (d DibInfo) Validate() error {
	if d.DibSize < InfoHeaderSize {
		return unsupportedError("%d-byte DIB header, need at least %d", d.DibSize, InfoHeaderSize)
	}
	if d.BitsPerPixel != BitsPerPixel {
		return unsupportedError("%d bits per pixel, only %d is supported", d.BitsPerPixel, BitsPerPixel)
	}
	if d.Compression != CompressionRGB {
		return unsupportedError("compression %d, only uncompressed (0) is supported", d.Compression)
	}
	return nil
}

// Reports whether the source starts with the "BM" signature. The read
// position is restored before returning.
func IsBmp(r io.ReadSeeker) (bool, error) {
	src := newSource(r)

	pos, err := src.position()
	if err != nil {
		return false, err
	}
	if err := src.seek(0); err != nil {
		return false, err
	}

	var sig Signature
	_, readErr := io.ReadFull(r, sig[:])

	// Restore even when the read failed
	if err := src.seek(pos); err != nil {
		return false, err
	}

	if readErr != nil {
		if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
			return false, nil // Too short to be anything
		}
		return false, ioError("read", readErr)
	}
	return sig.Valid(), nil
}

// Decodes the 14-byte file header at offset 0. Field values are not
// range-checked here.
func DecodeHeader(r io.ReadSeeker) (FileHeader, error) {
	src := newSource(r)
	if err := src.seek(0); err != nil {
		return FileHeader{}, err
	}
	b, err := src.readExact(FileHeaderSize)
	if err != nil {
		return FileHeader{}, err
	}

	le := binary.LittleEndian
	return FileHeader{
		Signature:       Signature{b[0], b[1]},
		FileSize:        le.Uint32(b[2:6]),
		Reserved1:       le.Uint16(b[6:8]),
		Reserved2:       le.Uint16(b[8:10]),
		PixelDataOffset: le.Uint32(b[10:14]),
	}, nil
}

// Decodes the 40-byte BITMAPINFOHEADER that follows the file header.
func DecodeDib(r io.ReadSeeker) (DibInfo, error) {
	src := newSource(r)
	if err := src.seek(FileHeaderSize); err != nil {
		return DibInfo{}, err
	}
	b, err := src.readExact(InfoHeaderSize)
	if err != nil {
		return DibInfo{}, err
	}

	le := binary.LittleEndian
	return DibInfo{
		DibSize:             le.Uint32(b[0:4]),
		Width:               int32(le.Uint32(b[4:8])),
		Height:              int32(le.Uint32(b[8:12])),
		ColorPlaneCount:     le.Uint16(b[12:14]),
		BitsPerPixel:        le.Uint16(b[14:16]),
		Compression:         le.Uint32(b[16:20]),
		ImageDataSize:       le.Uint32(b[20:24]),
		HRes:                int32(le.Uint32(b[24:28])),
		VRes:                int32(le.Uint32(b[28:32])),
		ColorCount:          le.Uint32(b[32:36]),
		ImportantColorCount: le.Uint32(b[36:40]),
	}, nil
}
