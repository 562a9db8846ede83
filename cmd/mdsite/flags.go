package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// dirFlags holds directory overrides shared by site and book.
type dirFlags struct {
	input     string
	output    string
	templates string
}

// siteFlags holds all flags for the site command.
type siteFlags struct {
	common    commonFlags
	dirs      dirFlags
	highlight string
}

// bookFlags holds all flags for the book command.
type bookFlags struct {
	common commonFlags
	dirs   dirFlags
	author string
	title  string
	epub   string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show per-file progress")
}

// addDirFlags adds directory flags to a FlagSet.
func addDirFlags(fs *flag.FlagSet, f *dirFlags) {
	fs.StringVarP(&f.input, "input", "i", "", "source directory (default \"markdown\")")
	fs.StringVarP(&f.output, "output", "o", "", "output directory (default \"_website\")")
	fs.StringVarP(&f.templates, "templates", "t", "", "template directory (default \"templates\")")
}

// parseSiteFlags parses site command flags.
func parseSiteFlags(args []string) (*siteFlags, error) {
	fs := flag.NewFlagSet("site", flag.ContinueOnError)
	f := &siteFlags{}

	addCommonFlags(fs, &f.common)
	addDirFlags(fs, &f.dirs)
	fs.StringVar(&f.highlight, "highlight", "", "syntax highlight style for fenced code")

	fs.Usage = func() { printSiteUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// parseBookFlags parses book command flags.
func parseBookFlags(args []string) (*bookFlags, error) {
	fs := flag.NewFlagSet("book", flag.ContinueOnError)
	f := &bookFlags{}

	addCommonFlags(fs, &f.common)
	addDirFlags(fs, &f.dirs)
	fs.StringVar(&f.author, "author", "", "book author")
	fs.StringVar(&f.title, "title", "", "book title")
	fs.StringVar(&f.epub, "epub", "", "book package path (default \"book.epub\")")

	fs.Usage = func() { printBookUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

// peekVerbose scans raw args for the verbose flag before any command
// dispatch, so early startup logging can honor it.
func peekVerbose(args []string) bool {
	for _, arg := range args {
		if arg == "-v" || arg == "--verbose" {
			return true
		}
	}
	return false
}
