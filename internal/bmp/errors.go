package bmp

import (
	"errors"
	"fmt"
)

// Error kinds reported by the decoder. Every error returned by this package
// wraps exactly one of these (a top-down bitmap wraps two), so callers match
// them with errors.Is.
var (
	ErrIO               = errors.New("bmp: i/o error")
	ErrNotBitmap        = errors.New("bmp: not a bitmap file")
	ErrFormat           = errors.New("bmp: invalid format")
	ErrUnsupported      = errors.New("bmp: unsupported format")
	ErrInvalidDimension = errors.New("bmp: invalid dimension")
	ErrOutOfRange       = errors.New("bmp: pixel out of range")
)

// RangeError reports a pixel query outside of the image.
type RangeError struct {
	Row, Col      int
	Height, Width int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: (%d, %d) not in [0,%d) x [0,%d)", ErrOutOfRange, e.Row, e.Col, e.Height, e.Width)
}

func (e *RangeError) Unwrap() error { return ErrOutOfRange }

func ioError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrIO, op, err)
}

func formatError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrFormat, fmt.Sprintf(format, args...))
}

func unsupportedError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnsupported, fmt.Sprintf(format, args...))
}

func dimensionError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidDimension, fmt.Sprintf(format, args...))
}

// Describe turns a decoder error into a short message for end users.
func Describe(err error) string {
	var rangeErr *RangeError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &rangeErr):
		return fmt.Sprintf("Position is outside the image (rows 0-%d, columns 0-%d).", rangeErr.Height-1, rangeErr.Width-1)
	case errors.Is(err, ErrNotBitmap):
		return "This file is not a bitmap file."
	case errors.Is(err, ErrIO):
		return "Can not open file."
	case errors.Is(err, ErrUnsupported):
		return "Unsupported bitmap: only uncompressed 24-bit bottom-up images can be read."
	case errors.Is(err, ErrInvalidDimension):
		return "The bitmap has invalid dimensions."
	case errors.Is(err, ErrFormat):
		return "The bitmap file is damaged or truncated."
	default:
		return err.Error()
	}
}
