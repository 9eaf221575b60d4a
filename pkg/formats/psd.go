package formats

import (
	"encoding/binary"

	"github.com/Fepozopo/imgfacts/pkg/stream"
)

// ParsePSD reads the PSD file header. Two unsigned 32-bit big-endian
// values sit at bytes 14 and 18: the first is height, the second is
// width.
func ParsePSD(s *stream.Stream) (Result, error) {
	b, err := s.Read(26)
	if err != nil {
		return Result{}, err
	}
	height := int(binary.BigEndian.Uint32(b[14:18]))
	width := int(binary.BigEndian.Uint32(b[18:22]))
	return Result{Width: width, Height: height, Orientation: 1}, nil
}
