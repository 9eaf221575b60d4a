package formats

import (
	"encoding/binary"

	"github.com/Fepozopo/imgfacts/pkg/stream"
)

// ParseBMP reads a BMP file header plus DIB header and returns pixel
// dimensions. BITMAPINFOHEADER (DIB length 40) stores width/height as
// signed 32-bit little-endian values at bytes 18 and 22; any other DIB
// header is treated as the older BITMAPCOREHEADER, which stores them as
// unsigned 16-bit little-endian values at bytes 18 and 20. A negative
// height marks a top-down bitmap; the reported height is always
// non-negative.
func ParseBMP(s *stream.Stream) (Result, error) {
	b, err := s.Read(32)
	if err != nil {
		return Result{}, err
	}

	dibLen := binary.LittleEndian.Uint32(b[14:18])

	var width, height int
	if dibLen == 40 {
		width = int(int32(binary.LittleEndian.Uint32(b[18:22])))
		height = int(int32(binary.LittleEndian.Uint32(b[22:26])))
	} else {
		width = int(binary.LittleEndian.Uint16(b[18:20]))
		height = int(binary.LittleEndian.Uint16(b[20:22]))
	}

	if height < 0 {
		height = -height
	}
	return Result{Width: width, Height: height, Orientation: 1}, nil
}
