package imgfacts

import (
	"errors"

	"github.com/Fepozopo/imgfacts/pkg/stream"
)

// Size returns the pixel dimensions of source. ok is false when any
// failure occurred, whether or not RaiseOnFailure is set: Size itself
// only ever reports success or silent absence and never returns the
// typed failure. SizeErr returns the same dimensions with the failure
// as an error.
func Size(source any, opts Options) (width, height int, ok bool) {
	facts, err := parse(source, opts, true)
	if err != nil {
		return 0, 0, false
	}
	return facts.Width, facts.Height, true
}

// SizeErr is Size with the failure surfaced as an error regardless of
// opts.RaiseOnFailure, for callers that always want to know why.
func SizeErr(source any, opts Options) (width, height int, err error) {
	opts.RaiseOnFailure = true
	facts, err := parse(source, opts, true)
	if err != nil {
		return 0, 0, err
	}
	return facts.Width, facts.Height, nil
}

// Type returns the detected format tag. ok is false when the source
// could not be opened or dispatch failed, whether or not RaiseOnFailure
// is set; Type never returns the typed failure.
func Type(source any, opts Options) (format Format, ok bool) {
	opts.TypeOnly = true
	facts, err := parse(source, opts, false)
	if err != nil {
		return "", false
	}
	return facts.Format, true
}

// Parse runs the full pipeline: dispatch, then format parsing, and
// returns ImageFacts including orientation. When RaiseOnFailure is
// false and a failure occurs, Parse returns a zero ImageFacts and a nil
// error — "nothing found" without a typed failure. When RaiseOnFailure
// is true, the returned error is a *ParseError whose Kind identifies
// which of the four failure kinds occurred.
func Parse(source any, opts Options) (ImageFacts, error) {
	facts, err := parse(source, opts, false)
	if err != nil {
		if opts.RaiseOnFailure {
			return ImageFacts{}, err
		}
		return ImageFacts{}, nil
	}
	return facts, nil
}

// parse is the shared implementation behind Size/Type/Parse. sizeOnly
// short-circuits type_only handling for Size's convenience wrapper,
// which always wants dimensions even though it discards the format.
func parse(source any, opts Options, sizeOnly bool) (ImageFacts, error) {
	log := opts.logger()

	res, err := resolveSource(source)
	if err != nil {
		return ImageFacts{}, wrapFailure("open", KindImageFetchFailure, err)
	}
	if res.close != nil {
		defer res.close()
	}
	if res.rewind != nil {
		defer res.rewind()
	}

	st := stream.New(res.src)

	format, err := dispatch(st)
	if err != nil {
		log.Debug().Err(err).Msg("dispatch failed")
		if isCleanExhaustion(err) {
			return ImageFacts{}, wrapFailure("dispatch", KindUnknownImageType, err)
		}
		return ImageFacts{}, wrapFailure("dispatch", KindImageFetchFailure, err)
	}
	log.Debug().Str("format", string(format)).Msg("dispatch resolved")

	if opts.TypeOnly && !sizeOnly {
		return ImageFacts{Format: format, Orientation: 1}, nil
	}

	parseFn, ok := parsers[format]
	if !ok {
		// Every Format dispatch can produce has a registered parser;
		// this would only trip if the registry and dispatcher drifted.
		return ImageFacts{}, wrapFailure("parse", KindSizeNotFound, errUnknownType)
	}

	result, err := parseFn(st)
	if err != nil {
		log.Debug().Err(err).Str("format", string(format)).Msg("parser failed")
		return ImageFacts{}, wrapFailure("parse", KindSizeNotFound, err)
	}

	orientation := result.Orientation
	if orientation == 0 {
		orientation = 1
	}
	return ImageFacts{
		Width:       result.Width,
		Height:      result.Height,
		Format:      format,
		Orientation: orientation,
	}, nil
}

func wrapFailure(op string, kind Kind, cause error) error {
	pe := newParseError(op, kind)
	pe.Err = errors.Join(pe.Err, cause)
	return pe
}
