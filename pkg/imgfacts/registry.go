package imgfacts

import "github.com/Fepozopo/imgfacts/pkg/formats"

var parsers = map[Format]formats.ParseFunc{
	FormatBMP:  formats.ParseBMP,
	FormatGIF:  formats.ParseGIF,
	FormatPNG:  formats.ParsePNG,
	FormatPSD:  formats.ParsePSD,
	FormatICO:  formats.ParseICO,
	FormatCUR:  formats.ParseICO,
	FormatJPEG: formats.ParseJPEG,
	FormatTIFF: formats.ParseTIFF,
	FormatWEBP: formats.ParseWEBP,
	FormatSVG:  formats.ParseSVG,
}

// SupportedFormats lists every format tag this build's dispatcher and
// parser registry can produce, in the order they appear in the
// dispatch decision table.
var SupportedFormats = []Format{
	FormatBMP, FormatGIF, FormatJPEG, FormatPNG, FormatTIFF,
	FormatPSD, FormatICO, FormatCUR, FormatWEBP, FormatSVG,
}
