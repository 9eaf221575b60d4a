// Command imgpeek reports format, dimensions, and orientation for a
// list of image files, one line per file, without decoding any pixels.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Fepozopo/imgfacts/pkg/imgfacts"
)

func main() {
	verbose := flag.Bool("v", false, "log dispatch and failure details to stderr")
	showVersion := flag.Bool("version", false, "print the engine version and supported formats, then exit")
	flag.Parse()

	if *showVersion {
		info := imgfacts.Engine()
		names := make([]string, len(info.SupportedFormats))
		for i, f := range info.SupportedFormats {
			names[i] = string(f)
		}
		fmt.Printf("imgpeek %s (%s)\n", info.Version, strings.Join(names, ", "))
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: imgpeek [-v] [-version] file [file...]")
		os.Exit(2)
	}

	var opts imgfacts.Options
	opts.RaiseOnFailure = true
	if *verbose {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		opts.Logger = &logger
	}

	exit := 0
	for _, path := range flag.Args() {
		facts, err := imgfacts.Parse(path, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			exit = 1
			continue
		}
		fmt.Printf("%s: %s %dx%d orientation=%d\n", path, facts.Format, facts.Width, facts.Height, facts.Orientation)
	}
	os.Exit(exit)
}
