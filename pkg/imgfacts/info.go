package imgfacts

import "github.com/blang/semver"

// EngineVersion identifies the capability level of this build's
// dispatcher and parser registry. It advances on a minor bump whenever
// a new format is wired into SupportedFormats, and on a patch bump for
// parsing-behavior fixes that don't change the supported set.
var EngineVersion = semver.MustParse("1.3.0")

// Info describes what one build of this engine can do, for callers
// that want to log or report it alongside parse results.
type Info struct {
	Version          semver.Version
	SupportedFormats []Format
}

// Engine returns the current build's Info.
func Engine() Info {
	return Info{
		Version:          EngineVersion,
		SupportedFormats: SupportedFormats,
	}
}
