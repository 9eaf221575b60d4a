package formats

import (
	"encoding/binary"

	"github.com/Fepozopo/imgfacts/pkg/stream"
)

// ParseGIF reads the GIF logical screen descriptor. Width and height
// are unsigned 16-bit little-endian values at bytes 6 and 8 of the
// header.
func ParseGIF(s *stream.Stream) (Result, error) {
	b, err := s.Read(11)
	if err != nil {
		return Result{}, err
	}
	width := int(binary.LittleEndian.Uint16(b[6:8]))
	height := int(binary.LittleEndian.Uint16(b[8:10]))
	return Result{Width: width, Height: height, Orientation: 1}, nil
}
