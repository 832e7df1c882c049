package main

// Notes:
// - runLint: we test valid presets and files, field-level reporting, YAML
//   input, unreadable files and the failure exit code.
// - runCSS/runPresets: we test output to stdout and to a file.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/alnah/go-cv2pdf/internal/jsonutil"
)

// ---------------------------------------------------------------------------
// TestRunLint - Style validation
// ---------------------------------------------------------------------------

func TestRunLint(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	valid := writeFile(t, dir, "ok.json", `{"accentColor": "#123", "header": {"enable": true, "variant": "slanted"}}`)
	validYAML := writeFile(t, dir, "ok.yaml", "accentColor: '#123'\nbrutalism:\n  enable: true\n")
	invalid := writeFile(t, dir, "bad.json", `{"header": {"variant": "wavy"}, "columnGap": -2, "colour": "red"}`)
	invalidYAML := writeFile(t, dir, "bad.yml", "baseFontSize: big\n")
	notJSON := writeFile(t, dir, "broken.json", "{")
	wrongExt := writeFile(t, dir, "style.toml", "a = 1")

	tests := []struct {
		name       string
		styles     []string
		quiet      bool
		wantErr    bool
		wantOut    []string
		wantNotOut []string
	}{
		{
			name:    "valid files and presets",
			styles:  []string{valid, validYAML, "brutalism"},
			wantOut: []string{valid + ": ok", validYAML + ": ok", "brutalism: ok"},
		},
		{
			name:       "quiet hides ok lines",
			styles:     []string{valid},
			quiet:      true,
			wantNotOut: []string{"ok"},
		},
		{
			name:    "field errors",
			styles:  []string{invalid},
			wantErr: true,
			wantOut: []string{"3 problem(s)", "header.variant", "columnGap", "colour"},
		},
		{
			name:    "yaml field error",
			styles:  []string{invalidYAML},
			wantErr: true,
			wantOut: []string{"baseFontSize"},
		},
		{
			name:    "unparseable document",
			styles:  []string{notJSON},
			wantErr: true,
			wantOut: []string{"not valid JSON"},
		},
		{
			name:    "unsupported extension",
			styles:  []string{wrongExt},
			wantErr: true,
			wantOut: []string{"unsupported input file type"},
		},
		{
			name:    "missing file",
			styles:  []string{filepath.Join(dir, "none.json")},
			wantErr: true,
			wantOut: []string{"failed to read input file"},
		},
		{
			name:    "unknown preset",
			styles:  []string{"glitter"},
			wantErr: true,
			wantOut: []string{"style preset not found"},
		},
		{
			name:    "one bad among good",
			styles:  []string{valid, invalid},
			wantErr: true,
			wantOut: []string{valid + ": ok"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, _ := testEnv(newMockPool())
			f := &lintFlags{common: commonFlags{quiet: tt.quiet}, styles: tt.styles}
			err := runLint(f, env)

			if tt.wantErr != (err != nil) {
				t.Fatalf("runLint() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrLintFailed) {
				t.Errorf("error = %v, want ErrLintFailed", err)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout missing %q:\n%s", want, stdout)
				}
			}
			for _, notWant := range tt.wantNotOut {
				if strings.Contains(stdout.String(), notWant) {
					t.Errorf("stdout contains %q:\n%s", notWant, stdout)
				}
			}
		})
	}
}

func TestRunLint_AllPresets(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(newMockPool())
	if err := runPresets(&presetsFlags{}, env); err != nil {
		t.Fatal(err)
	}
	presets := strings.Fields(stdout.String())
	if len(presets) == 0 {
		t.Fatal("no presets listed")
	}

	lintEnv, out, _ := testEnv(newMockPool())
	if err := runLint(&lintFlags{styles: presets}, lintEnv); err != nil {
		t.Errorf("embedded presets fail the schema: %v\n%s", err, out)
	}
}

// ---------------------------------------------------------------------------
// TestRunPresets - Preset listing
// ---------------------------------------------------------------------------

func TestRunPresets_JSON(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv(newMockPool())
	if err := runPresets(&presetsFlags{json: true}, env); err != nil {
		t.Fatal(err)
	}

	var names []string
	if err := jsonutil.Unmarshal(stdout.Bytes(), &names); err != nil {
		t.Fatalf("output is not a JSON array: %v\n%s", err, stdout)
	}
	if !slices.Contains(names, "default") || !slices.Contains(names, "brutalism") {
		t.Errorf("presets = %v", names)
	}
}

func TestRunPresets_CustomDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "styles/corporate.yaml", "accentColor: '#003366'\n")

	env, stdout, _ := testEnv(newMockPool())
	if err := runPresets(&presetsFlags{assetPath: dir}, env); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"corporate", "default"} {
		if !strings.Contains(stdout.String(), want) {
			t.Errorf("presets missing %q:\n%s", want, stdout)
		}
	}
}

// ---------------------------------------------------------------------------
// TestRunCSS - Stylesheet output
// ---------------------------------------------------------------------------

func TestRunCSS(t *testing.T) {
	t.Parallel()

	t.Run("stdout", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(newMockPool())
		if err := runCSS(&cssFlags{style: "brutalism"}, env); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(stdout.String(), "@page") {
			t.Errorf("stdout = %q, want a stylesheet", stdout)
		}
	})

	t.Run("built-in defaults without a style", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv(newMockPool())
		if err := runCSS(&cssFlags{}, env); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(stdout.String(), "@page") {
			t.Errorf("stdout = %q, want a stylesheet", stdout)
		}
	})

	t.Run("file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		style := writeFile(t, dir, "s.yaml", "accentColor: '#abcdef'\n")
		out := filepath.Join(dir, "css", "cv.css")

		env, stdout, _ := testEnv(newMockPool())
		if err := runCSS(&cssFlags{style: style, out: out}, env); err != nil {
			t.Fatal(err)
		}
		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "#abcdef") {
			t.Errorf("stylesheet missing accent color:\n%s", data)
		}
		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want nothing when writing a file", stdout)
		}
	})
}
