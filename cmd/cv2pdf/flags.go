package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// inputFlags names the documents to read.
type inputFlags struct {
	personal  string
	styles    []string // one PDF per entry
	template  string
	assetPath string
}

// outputFlags names the generated files.
type outputFlags struct {
	pdf      string
	html     string
	htmlOnly bool
}

// browserFlags tunes rendering.
type browserFlags struct {
	noSandbox bool
	timeout   string
	workers   int
	date      string
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common  commonFlags
	input   inputFlags
	output  outputFlags
	browser browserFlags
}

// cssFlags holds flags for the css command.
type cssFlags struct {
	common    commonFlags
	style     string
	assetPath string
	out       string
}

// lintFlags holds flags for the lint command.
type lintFlags struct {
	common    commonFlags
	styles    []string
	assetPath string
}

// presetsFlags holds flags for the presets command.
type presetsFlags struct {
	common    commonFlags
	assetPath string
	json      bool
}

func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug output")
}

func addInputFlags(fs *flag.FlagSet, f *inputFlags) {
	fs.StringVar(&f.personal, "personal", "", "personal content file (JSON or YAML)")
	fs.StringArrayVarP(&f.styles, "style", "s", nil, "style file or preset name (repeatable)")
	fs.StringVar(&f.template, "template", "", "template file or name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.pdf, "out", "o", "", "output PDF file, or directory with several styles")
	fs.StringVar(&f.html, "html", "", "output HTML file, or directory with several styles")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF")
}

func addBrowserFlags(fs *flag.FlagSet, f *browserFlags) {
	fs.BoolVar(&f.noSandbox, "no-sandbox", false, "disable the Chrome sandbox")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "render timeout per CV (e.g., 30s, 2m)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel browsers (0 = auto)")
	fs.StringVar(&f.date, "date", "", `generation date: "auto", "auto:FORMAT", or literal`)
}

func newFlagSet(name string, env *Environment, usage func()) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = usage
	return fs
}

// usageError tags a flag parsing failure as a usage error. Help requests
// pass through unchanged.
func usageError(err error) error {
	if errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}

func noArgs(fs *flag.FlagSet) error {
	if fs.NArg() > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, fs.Arg(0))
	}
	return nil
}

func parseRenderFlags(args []string, env *Environment) (*renderFlags, error) {
	f := &renderFlags{}
	fs := newFlagSet("render", env, func() { printRenderUsage(env.Stderr) })

	addCommonFlags(fs, &f.common)
	addInputFlags(fs, &f.input)
	addOutputFlags(fs, &f.output)
	addBrowserFlags(fs, &f.browser)

	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}
	if err := noArgs(fs); err != nil {
		return nil, err
	}
	if f.browser.workers < 0 {
		return nil, fmt.Errorf("%w: %d (must be >= 0)", ErrInvalidWorkerCount, f.browser.workers)
	}
	if f.common.quiet && f.common.verbose {
		return nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}
	return f, nil
}

func parseCSSFlags(args []string, env *Environment) (*cssFlags, error) {
	f := &cssFlags{}
	fs := newFlagSet("css", env, func() { printCSSUsage(env.Stderr) })

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.style, "style", "s", "", "style file or preset name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVarP(&f.out, "out", "o", "", "write the stylesheet to a file instead of stdout")

	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}
	if err := noArgs(fs); err != nil {
		return nil, err
	}
	return f, nil
}

// parseLintFlags accepts styles both as --style values and as arguments.
func parseLintFlags(args []string, env *Environment) (*lintFlags, error) {
	f := &lintFlags{}
	fs := newFlagSet("lint", env, func() { printLintUsage(env.Stderr) })

	addCommonFlags(fs, &f.common)
	fs.StringArrayVarP(&f.styles, "style", "s", nil, "style file or preset name (repeatable)")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")

	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}
	f.styles = append(f.styles, fs.Args()...)
	return f, nil
}

func parsePresetsFlags(args []string, env *Environment) (*presetsFlags, error) {
	f := &presetsFlags{}
	fs := newFlagSet("presets", env, func() { printPresetsUsage(env.Stderr) })

	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.BoolVar(&f.json, "json", false, "print a JSON array")

	if err := fs.Parse(args); err != nil {
		return nil, usageError(err)
	}
	if err := noArgs(fs); err != nil {
		return nil, err
	}
	return f, nil
}
