// Package formats implements the ten per-format micro-parsers: each one
// reads only the header bytes it needs from a stream.Stream and reports
// pixel dimensions (and, for JPEG/TIFF, EXIF orientation).
//
// Every parser shares the same shape — func(*stream.Stream) (Result,
// error) — so the orchestrator can dispatch to them through a plain
// lookup table rather than an interface hierarchy.
package formats

import (
	"errors"

	"github.com/Fepozopo/imgfacts/pkg/stream"
)

// ErrMalformed reports that a parser reached bytes it could read but
// that do not form a valid header for its format (bad signature,
// impossible field value, unsupported sub-chunk). It is distinct from
// stream.ErrUnexpectedEnd, which reports that the input ran out before
// the parser got the bytes it asked for; callers of this package treat
// both the same way, as a failure to recover dimensions.
var ErrMalformed = errors.New("formats: malformed header")

// Result is what every format parser returns on success.
type Result struct {
	Width       int
	Height      int
	Orientation int // 1..8; always 1 when the format carries no EXIF
}

// ParseFunc is the shape every format parser implements.
type ParseFunc func(s *stream.Stream) (Result, error)
