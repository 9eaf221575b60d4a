package imgfacts

import (
	"bytes"
	"errors"

	"github.com/Fepozopo/imgfacts/pkg/stream"
)

// dispatch inspects the first few bytes of s and returns the format it
// matches, or an error. It never advances the stream's consumed
// position beyond peeking, so the chosen parser always starts reading
// from absolute position 0.
func dispatch(s *stream.Stream) (Format, error) {
	prefix, err := s.Peek(2)
	if err != nil {
		return "", err
	}

	switch {
	case string(prefix) == "BM":
		return FormatBMP, nil
	case string(prefix) == "GI":
		return FormatGIF, nil
	case prefix[0] == 0xFF && prefix[1] == 0xD8:
		return FormatJPEG, nil
	case prefix[0] == 0x89 && prefix[1] == 'P':
		return FormatPNG, nil
	case string(prefix) == "II" || string(prefix) == "MM":
		return FormatTIFF, nil
	case string(prefix) == "8B":
		return FormatPSD, nil
	case prefix[0] == 0x00 && prefix[1] == 0x00:
		return dispatchIcoCur(s)
	case string(prefix) == "RI":
		return dispatchWebp(s)
	case prefix[0] == '<' && (prefix[1] == 's' || prefix[1] == '?' || prefix[1] == '!'):
		return dispatchSVG(s)
	default:
		return "", errUnknownType
	}
}

func dispatchIcoCur(s *stream.Stream) (Format, error) {
	b, err := s.Peek(3)
	if err != nil {
		return "", err
	}
	switch b[2] {
	case 1:
		return FormatICO, nil
	case 2:
		return FormatCUR, nil
	default:
		return "", errUnknownType
	}
}

func dispatchWebp(s *stream.Stream) (Format, error) {
	b, err := s.Peek(12)
	if err != nil {
		return "", err
	}
	if string(b[8:12]) == "WEBP" {
		return FormatWEBP, nil
	}
	return "", errUnknownType
}

// svgMaxProbes is the number of SVG lookahead iterations: peek(10*n)
// for n = 1..svgMaxProbes.
const svgMaxProbes = 25

func dispatchSVG(s *stream.Stream) (Format, error) {
	for n := 1; n <= svgMaxProbes; n++ {
		b, err := s.Peek(10 * n)
		if err != nil {
			if errors.Is(err, stream.ErrUnexpectedEnd) {
				return "", errUnknownType
			}
			return "", err
		}
		if bytes.Contains(b, []byte("<svg")) {
			return FormatSVG, nil
		}
	}
	return "", errUnknownType
}
