package formats

import (
	"encoding/binary"

	"github.com/Fepozopo/imgfacts/pkg/stream"
)

// ParseJPEG walks the JPEG segment chain looking for the first APP1
// Exif block (for orientation) and the SOF segment (for dimensions). It
// stops as soon as both have been found, or as soon as a SOF segment is
// seen if no Exif block precedes it.
func ParseJPEG(s *stream.Stream) (Result, error) {
	if err := s.Skip(2); err != nil { // SOI
		return Result{}, err
	}

	var exif *Exif

	for {
		b, err := s.Read(1)
		if err != nil {
			return Result{}, err
		}
		if b[0] != 0xFF {
			continue
		}

		// Consume any run of 0xFF fill bytes; the first non-0xFF byte
		// after the initial marker lead-in is the marker code itself.
		var m byte
		for {
			marker, err := s.Read(1)
			if err != nil {
				return Result{}, err
			}
			m = marker[0]
			if m != 0xFF {
				break
			}
		}

		switch {
		case m == 0xE1:
			lenBytes, err := s.Read(2)
			if err != nil {
				return Result{}, err
			}
			segLen := int(binary.BigEndian.Uint16(lenBytes))
			if segLen < 2 {
				return Result{}, ErrMalformed
			}
			payload, err := s.Read(segLen - 2)
			if err != nil {
				return Result{}, err
			}
			if exif == nil && len(payload) >= 6 && string(payload[:4]) == "Exif" {
				sub := stream.New(&sliceSource{data: payload[6:]})
				if e, err := ParseExif(sub); err == nil {
					exif = &e
				}
			}
			// stay in the segment-scanning loop

		case m >= 0xE0 && m <= 0xEF:
			if err := skipFrame(s); err != nil {
				return Result{}, err
			}

		case isSOF(m):
			return readSOFSize(s, exif)

		default:
			if err := skipFrame(s); err != nil {
				return Result{}, err
			}
		}
	}
}

// isSOF reports whether m is a Start-Of-Frame marker this engine
// recognizes (0xC0-0xC3, 0xC5-0xC7, 0xC9-0xCB, 0xCD-0xCF); 0xC4, 0xC8,
// and 0xCC are reserved/DHT-adjacent markers, not SOF segments.
func isSOF(m byte) bool {
	switch m {
	case 0xC0, 0xC1, 0xC2, 0xC3, 0xC5, 0xC6, 0xC7, 0xC9, 0xCA, 0xCB, 0xCD, 0xCE, 0xCF:
		return true
	default:
		return false
	}
}

func skipFrame(s *stream.Stream) error {
	lenBytes, err := s.Read(2)
	if err != nil {
		return err
	}
	segLen := int(binary.BigEndian.Uint16(lenBytes))
	if segLen < 2 {
		return ErrMalformed
	}
	return s.Skip(segLen - 2)
}

func readSOFSize(s *stream.Stream, exif *Exif) (Result, error) {
	if err := s.Skip(3); err != nil { // length + precision
		return Result{}, err
	}
	hb, err := s.Read(2)
	if err != nil {
		return Result{}, err
	}
	wb, err := s.Read(2)
	if err != nil {
		return Result{}, err
	}
	height := int(binary.BigEndian.Uint16(hb))
	width := int(binary.BigEndian.Uint16(wb))

	orientation := 1
	if exif != nil {
		orientation = exif.Orientation
		if exif.Rotated() {
			width, height = height, width
		}
	}
	return Result{Width: width, Height: height, Orientation: orientation}, nil
}

// sliceSource adapts an in-memory byte slice already pulled off the
// main stream (a JPEG APP1 payload) into a chunk.Source so the shared
// EXIF sub-parser can run over it through its own stream.Stream.
type sliceSource struct {
	data []byte
	done bool
}

func (s *sliceSource) Next() ([]byte, error) {
	if s.done {
		return nil, nil
	}
	s.done = true
	return s.data, nil
}
