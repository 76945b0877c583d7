package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage indicates invalid flags or arguments.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags controlling config and output verbosity.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// cliFlags holds all command flags.
type cliFlags struct {
	common  commonFlags
	output  string
	offline bool
	version bool
	help    bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// parseFlags parses command-line arguments (without the program name) and
// returns the optional document path.
func parseFlags(args []string) (*cliFlags, string, error) {
	fs := flag.NewFlagSet("doc2web", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	f := &cliFlags{}
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.BoolVar(&f.offline, "offline", false, "skip OCR and ERNIE, use local processing only")
	fs.BoolVar(&f.version, "version", false, "show version information")
	fs.BoolVarP(&f.help, "help", "h", false, "show this help")
	addCommonFlags(fs, &f.common)

	if err := fs.Parse(args); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUsage, err)
	}

	if f.common.quiet && f.common.verbose {
		return nil, "", fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}

	switch fs.NArg() {
	case 0:
		return f, "", nil
	case 1:
		return f, fs.Arg(0), nil
	default:
		return nil, "", fmt.Errorf("%w: expected at most one document, got %d", ErrUsage, fs.NArg())
	}
}
