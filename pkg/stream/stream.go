// Package stream implements the forward-only byte cursor that every
// format parser reads through: peek ahead without consuming, read and
// consume, or skip forward without materializing the skipped bytes.
//
// It is the single suspension point in the engine. A Stream pulls
// chunks from its chunk.Source lazily, only when a parser asks for more
// bytes than it currently has buffered.
package stream

import (
	"errors"

	"github.com/Fepozopo/imgfacts/pkg/chunk"
)

// ErrUnexpectedEnd is returned by Peek/Read/Skip when the underlying
// chunk.Source signals end-of-input before the requested number of
// bytes could be produced.
var ErrUnexpectedEnd = errors.New("stream: unexpected end of input")

// Stream is a pull-based cursor over a chunk.Source.
type Stream struct {
	src chunk.Source
	buf []byte
	pos int64
	eof bool
}

// New wraps src in a Stream. No bytes are read until the first Peek,
// Read, or Skip call.
func New(src chunk.Source) *Stream {
	return &Stream{src: src}
}

// Position reports the absolute number of bytes consumed (by Read or
// Skip) since construction.
func (s *Stream) Position() int64 {
	return s.pos
}

// fill requests chunks from the source until the buffer holds at least
// n bytes or the source is exhausted.
func (s *Stream) fill(n int) error {
	for len(s.buf) < n {
		if s.eof {
			return ErrUnexpectedEnd
		}
		c, err := s.src.Next()
		if err != nil {
			return err
		}
		if len(c) == 0 {
			s.eof = true
			continue
		}
		s.buf = append(s.buf, c...)
	}
	return nil
}

// Peek returns the next n bytes without advancing the cursor. It fails
// with ErrUnexpectedEnd (or the source's own error, returned as-is) if the source ends
// before n bytes are available.
func (s *Stream) Peek(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if err := s.fill(n); err != nil {
		return nil, err
	}
	return s.buf[:n], nil
}

// Read returns and consumes the next n bytes, advancing Position by n.
func (s *Stream) Read(n int) ([]byte, error) {
	b, err := s.Peek(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	s.buf = s.buf[n:]
	s.pos += int64(n)
	return out, nil
}

// Skip advances the cursor by n bytes without materializing them. Whole
// chunks that fall entirely within the skipped range are discarded
// without being appended to the buffer; only the fragment straddling
// the skip target, if any, is retained.
func (s *Stream) Skip(n int) error {
	if n <= 0 {
		return nil
	}
	remaining := n

	if len(s.buf) > 0 {
		if remaining < len(s.buf) {
			s.buf = s.buf[remaining:]
			s.pos += int64(remaining)
			return nil
		}
		remaining -= len(s.buf)
		s.pos += int64(len(s.buf))
		s.buf = nil
	}

	for remaining > 0 {
		if s.eof {
			return ErrUnexpectedEnd
		}
		c, err := s.src.Next()
		if err != nil {
			return err
		}
		if len(c) == 0 {
			s.eof = true
			return ErrUnexpectedEnd
		}
		if len(c) <= remaining {
			remaining -= len(c)
			s.pos += int64(len(c))
			continue
		}
		// This chunk straddles the skip target; keep the residual tail.
		s.buf = append(s.buf, c[remaining:]...)
		s.pos += int64(remaining)
		remaining = 0
	}
	return nil
}
