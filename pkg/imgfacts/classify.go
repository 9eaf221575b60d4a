package imgfacts

import "errors"

// errUnknownType marks a dispatch failure that is not a genuine I/O
// problem: the signature simply didn't match anything, or the SVG
// lookahead scan ran dry while still inside its own 25-iteration
// probing window (dispatchSVG already translates that case to
// errUnknownType before it ever reaches this package's caller).
var errUnknownType = errors.New("imgfacts: no format signature matched")

// errUnsupportedSource marks a Source argument of a type this library
// does not know how to read (neither a path, an io.ReaderAt, nor an
// io.Reader). It is always a fetch failure, never a dispatch outcome.
var errUnsupportedSource = errors.New("imgfacts: unsupported source type")

// isCleanExhaustion reports whether err represents the dispatcher
// concluding "no format signature matched" rather than the underlying
// byte source failing or running out before the dispatcher could even
// finish probing. Only errUnknownType qualifies: a bare
// stream.ErrUnexpectedEnd reaching here means the input was truncated
// before a format decision could be made at all (too short for the
// initial 2-byte prefix peek, or for a lookahead peek like WEBP's
// 12-byte RIFF/WEBP check), which is an ImageFetchFailure per spec, not
// an UnknownImageType — the one exception, the SVG scan's own EOF, is
// already folded into errUnknownType inside dispatchSVG before it gets
// here.
func isCleanExhaustion(err error) bool {
	return errors.Is(err, errUnknownType)
}
