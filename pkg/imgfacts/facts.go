package imgfacts

// Format identifies one of the ten supported image families.
type Format string

const (
	FormatBMP  Format = "bmp"
	FormatGIF  Format = "gif"
	FormatJPEG Format = "jpeg"
	FormatPNG  Format = "png"
	FormatTIFF Format = "tiff"
	FormatPSD  Format = "psd"
	FormatICO  Format = "ico"
	FormatCUR  Format = "cur"
	FormatWEBP Format = "webp"
	FormatSVG  Format = "svg"
)

// ImageFacts is the result of a successful full parse: final display
// dimensions (already swapped for EXIF orientation >= 5), the detected
// format, and the orientation tag (1 when the format carries none).
type ImageFacts struct {
	Width       int
	Height      int
	Format      Format
	Orientation int
}
