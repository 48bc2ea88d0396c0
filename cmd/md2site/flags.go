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

// assetFlags holds asset-related flags (CSS, templates, custom asset path).
type assetFlags struct {
	style     string // CSS style name in the asset directory
	template  string // Page template name
	assetPath string // Override asset directory
}

// renderFlags holds page rendering flags.
type renderFlags struct {
	math           string // "auto", "always", "never"
	highlight      bool   // enable server-side code highlighting
	highlightStyle string // chroma style name
}

// pdfFlags holds optional per-page PDF export flags.
type pdfFlags struct {
	enabled bool
	timeout string // duration string, e.g. "30s"
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common  commonFlags
	output  string
	workers int
	assets  assetFlags
	render  renderFlags
	pdf     pdfFlags
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common commonFlags
	output string
	assets assetFlags
	render renderFlags
}

// watchFlags holds all flags for the watch command.
type watchFlags struct {
	build    buildFlags
	debounce string // duration string, e.g. "300ms"
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name")
	fs.StringVar(&f.template, "template", "", "page template name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// addRenderFlags adds page rendering flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVar(&f.math, "math", "", "math scripts: auto, always, never")
	fs.BoolVar(&f.highlight, "highlight", false, "highlight fenced code blocks")
	fs.StringVar(&f.highlightStyle, "highlight-style", "", "highlight color scheme")
}

// addPDFFlags adds PDF export flags to a FlagSet.
func addPDFFlags(fs *flag.FlagSet, f *pdfFlags) {
	fs.BoolVar(&f.enabled, "pdf", false, "also export each page as PDF")
	fs.StringVar(&f.timeout, "pdf-timeout", "", "PDF render timeout per page (e.g., 30s)")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	addRenderFlags(fs, &f.render)
	addPDFFlags(fs, &f.pdf)

	fs.Usage = func() { printBuildUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// parseWatchFlags parses watch command flags and returns positional args.
func parseWatchFlags(args []string) (*watchFlags, []string, error) {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	f := &watchFlags{}

	fs.StringVarP(&f.build.output, "output", "o", "", "output directory")
	fs.IntVarP(&f.build.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVar(&f.debounce, "debounce", "", "rebuild debounce window (e.g., 300ms)")

	addCommonFlags(fs, &f.build.common)
	addAssetFlags(fs, &f.build.assets)
	addRenderFlags(fs, &f.build.render)

	fs.Usage = func() { printWatchUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
