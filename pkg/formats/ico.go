package formats

import (
	"encoding/binary"

	"github.com/Fepozopo/imgfacts/pkg/stream"
)

// ParseICO reads an ICO/CUR directory: a 6-byte header (icon count at
// bytes 4-5) followed by one 16-byte directory entry per icon. Each
// entry's width/height bytes (offsets 0 and 1) are unsigned 8-bit,
// where a stored 0 means 256. The entry with the largest width*height
// wins; ties go to the later entry, since later entries overwrite the
// running best in a forward scan.
func ParseICO(s *stream.Stream) (Result, error) {
	header, err := s.Read(6)
	if err != nil {
		return Result{}, err
	}
	count := int(binary.LittleEndian.Uint16(header[4:6]))

	var bestWidth, bestHeight, bestArea int
	for i := 0; i < count; i++ {
		entry, err := s.Read(16)
		if err != nil {
			return Result{}, err
		}
		width := dimOrByte256(entry[0])
		height := dimOrByte256(entry[1])
		area := width * height
		if area >= bestArea {
			bestWidth, bestHeight, bestArea = width, height, area
		}
	}

	if bestArea == 0 {
		return Result{}, ErrMalformed
	}
	return Result{Width: bestWidth, Height: bestHeight, Orientation: 1}, nil
}

func dimOrByte256(b byte) int {
	if b == 0 {
		return 256
	}
	return int(b)
}
