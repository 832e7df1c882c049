package main

// Notes:
// - parse*Flags: we test that every flag lands in its field, that --style
//   repeats, and that parse failures are tagged as usage errors.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"io"
	"slices"
	"testing"

	flag "github.com/spf13/pflag"
)

func quietEnv() *Environment {
	return &Environment{Stdout: io.Discard, Stderr: io.Discard}
}

// ---------------------------------------------------------------------------
// TestParseRenderFlags - Render flag parsing
// ---------------------------------------------------------------------------

func TestParseRenderFlags(t *testing.T) {
	t.Parallel()

	args := []string{
		"--personal", "me.json",
		"--style", "hero", "-s", "brutalism",
		"--template", "tpl.html",
		"--asset-path", "/assets",
		"-o", "dist/cv.pdf",
		"--html", "dist/cv.html",
		"--html-only",
		"--no-sandbox",
		"-t", "45s",
		"-w", "3",
		"--date", "auto:long",
		"-c", "work",
		"-v",
	}

	f, err := parseRenderFlags(args, quietEnv())
	if err != nil {
		t.Fatalf("parseRenderFlags() error = %v", err)
	}

	if f.input.personal != "me.json" || f.input.template != "tpl.html" || f.input.assetPath != "/assets" {
		t.Errorf("input = %+v", f.input)
	}
	if want := []string{"hero", "brutalism"}; !slices.Equal(f.input.styles, want) {
		t.Errorf("styles = %v, want %v", f.input.styles, want)
	}
	if f.output.pdf != "dist/cv.pdf" || f.output.html != "dist/cv.html" || !f.output.htmlOnly {
		t.Errorf("output = %+v", f.output)
	}
	if !f.browser.noSandbox || f.browser.timeout != "45s" || f.browser.workers != 3 || f.browser.date != "auto:long" {
		t.Errorf("browser = %+v", f.browser)
	}
	if f.common.config != "work" || !f.common.verbose || f.common.quiet {
		t.Errorf("common = %+v", f.common)
	}
}

func TestParseRenderFlags_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"unknown flag", []string{"--nope"}, ErrUsage},
		{"missing value", []string{"--personal"}, ErrUsage},
		{"non-numeric workers", []string{"-w", "many"}, ErrUsage},
		{"negative workers", []string{"-w", "-1"}, ErrInvalidWorkerCount},
		{"positional argument", []string{"cv.json"}, ErrUsage},
		{"quiet and verbose", []string{"-q", "-v"}, ErrUsage},
		{"help", []string{"--help"}, flag.ErrHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseRenderFlags(tt.args, quietEnv())
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestParseOtherFlags - css, lint and presets
// ---------------------------------------------------------------------------

func TestParseCSSFlags(t *testing.T) {
	t.Parallel()

	f, err := parseCSSFlags([]string{"-s", "hero", "--asset-path", "/a", "-o", "cv.css"}, quietEnv())
	if err != nil {
		t.Fatal(err)
	}
	if f.style != "hero" || f.assetPath != "/a" || f.out != "cv.css" {
		t.Errorf("flags = %+v", f)
	}

	if _, err := parseCSSFlags([]string{"hero"}, quietEnv()); !errors.Is(err, ErrUsage) {
		t.Errorf("positional argument error = %v, want ErrUsage", err)
	}
}

func TestParseLintFlags(t *testing.T) {
	t.Parallel()

	f, err := parseLintFlags([]string{"-s", "a.json", "b.yaml", "hero", "-q"}, quietEnv())
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"a.json", "b.yaml", "hero"}; !slices.Equal(f.styles, want) {
		t.Errorf("styles = %v, want %v", f.styles, want)
	}
	if !f.common.quiet {
		t.Error("quiet not set")
	}
}

func TestParsePresetsFlags(t *testing.T) {
	t.Parallel()

	f, err := parsePresetsFlags([]string{"--asset-path", "/a", "--json"}, quietEnv())
	if err != nil {
		t.Fatal(err)
	}
	if f.assetPath != "/a" || !f.json {
		t.Errorf("flags = %+v", f)
	}
	if _, err := parsePresetsFlags([]string{"extra"}, quietEnv()); !errors.Is(err, ErrUsage) {
		t.Errorf("positional argument error = %v, want ErrUsage", err)
	}
}
