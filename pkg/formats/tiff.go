package formats

import "github.com/Fepozopo/imgfacts/pkg/stream"

// ParseTIFF delegates entirely to the shared EXIF sub-parser: a TIFF
// file's header is an EXIF/TIFF structure by definition. When the
// recovered orientation rotates the image, width and height are
// swapped so the reported dimensions match the display orientation.
func ParseTIFF(s *stream.Stream) (Result, error) {
	e, err := ParseExif(s)
	if err != nil {
		return Result{}, err
	}
	width, height := e.Width, e.Height
	if e.Rotated() {
		width, height = height, width
	}
	return Result{Width: width, Height: height, Orientation: e.Orientation}, nil
}
