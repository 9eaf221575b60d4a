package imgfacts

import "github.com/rs/zerolog"

var nopLogger = zerolog.Nop()

// Options is the closed set of behavior flags accepted by Size, Type,
// and Parse.
type Options struct {
	// TypeOnly skips dimension parsing once the format is identified.
	TypeOnly bool
	// RaiseOnFailure converts an absent result into a typed *ParseError
	// instead of a silent zero value.
	RaiseOnFailure bool

	// Logger receives debug-level dispatch/failure events. A nil Logger
	// falls back to a disabled no-op logger, so by default nothing is
	// emitted; this is diagnostic-only and never consulted for control
	// flow.
	Logger *zerolog.Logger
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return &nopLogger
}
