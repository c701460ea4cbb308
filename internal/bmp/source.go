package bmp

import (
	"errors"
	"io"
)

// source is the seekable byte source every decoding stage reads from.
// Reads are always at absolute offsets.
type source struct {
	r io.ReadSeeker
}

func newSource(r io.ReadSeeker) *source {
	return &source{r: r}
}

// seek moves the read position to an absolute offset.
func (s *source) seek(offset int64) error {
	if _, err := s.r.Seek(offset, io.SeekStart); err != nil {
		return ioError("seek", err)
	}
	return nil
}

// readExact reads exactly n bytes. A short read is a format error, since
// the structure being decoded does not fit in what is left of the file.
func (s *source) readExact(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.r, buf); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, formatError("need %d bytes, source is truncated", n)
		}
		return nil, ioError("read", err)
	}
	return buf, nil
}

// position returns the current read offset.
func (s *source) position() (int64, error) {
	pos, err := s.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, ioError("seek", err)
	}
	return pos, nil
}

// size returns the total length of the source, leaving the position where
// it was.
func (s *source) size() (int64, error) {
	pos, err := s.position()
	if err != nil {
		return 0, err
	}
	end, err := s.r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, ioError("seek", err)
	}
	if err := s.seek(pos); err != nil {
		return 0, err
	}
	return end, nil
}
