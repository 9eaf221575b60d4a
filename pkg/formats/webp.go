package formats

import (
	"encoding/binary"

	"github.com/Fepozopo/imgfacts/pkg/stream"
)

// ParseWEBP reads the RIFF/WEBP container header and dispatches on the
// 4-byte sub-format tag at bytes 12-15 (VP8 , VP8L, or VP8X). WEBP-EXIF
// orientation is deliberately not consulted, even when the VP8X flags
// byte marks EXIF metadata as present.
func ParseWEBP(s *stream.Stream) (Result, error) {
	header, err := s.Read(16)
	if err != nil {
		return Result{}, err
	}
	subFormat := string(header[12:16])

	if _, err := s.Read(4); err != nil { // chunk length, unused
		return Result{}, err
	}

	switch subFormat {
	case "VP8 ":
		return parseWebpLossy(s)
	case "VP8L":
		return parseWebpLossless(s)
	case "VP8X":
		return parseWebpExtended(s)
	default:
		return Result{}, ErrMalformed
	}
}

func parseWebpLossy(s *stream.Stream) (Result, error) {
	b, err := s.Read(10)
	if err != nil {
		return Result{}, err
	}
	width := int(binary.LittleEndian.Uint16(b[6:8])) & 0x3FFF
	height := int(binary.LittleEndian.Uint16(b[8:10])) & 0x3FFF
	return Result{Width: width, Height: height, Orientation: 1}, nil
}

func parseWebpLossless(s *stream.Stream) (Result, error) {
	if err := s.Skip(1); err != nil { // signature byte, 0x2F
		return Result{}, err
	}
	b, err := s.Read(4)
	if err != nil {
		return Result{}, err
	}
	b1, b2, b3, b4 := int(b[0]), int(b[1]), int(b[2]), int(b[3])

	width := 1 + (((b2 & 0x3F) << 8) | b1)
	height := 1 + (((b4 & 0x0F) << 10) | (b3 << 2) | ((b2 & 0xC0) >> 6))
	return Result{Width: width, Height: height, Orientation: 1}, nil
}

func parseWebpExtended(s *stream.Stream) (Result, error) {
	if _, err := s.Read(4); err != nil { // flags, unused beyond documentation
		return Result{}, err
	}
	b, err := s.Read(6)
	if err != nil {
		return Result{}, err
	}
	width := 1 + int(b[0]) + int(b[1])<<8 + int(b[2])<<16
	height := 1 + int(b[3]) + int(b[4])<<8 + int(b[5])<<16
	return Result{Width: width, Height: height, Orientation: 1}, nil
}
