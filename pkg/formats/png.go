package formats

import (
	"encoding/binary"

	"github.com/Fepozopo/imgfacts/pkg/stream"
)

// ParsePNG reads the signature and IHDR chunk header. Width and height
// are unsigned 32-bit big-endian values at bytes 16 and 20.
func ParsePNG(s *stream.Stream) (Result, error) {
	b, err := s.Read(25)
	if err != nil {
		return Result{}, err
	}
	width := int(binary.BigEndian.Uint32(b[16:20]))
	height := int(binary.BigEndian.Uint32(b[20:24]))
	return Result{Width: width, Height: height, Orientation: 1}, nil
}
