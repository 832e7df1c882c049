package main

// Notes:
// - mergeFlags: we test that set flags override config and unset ones don't.
// - newRenderPlan: we test built-in defaults.
// - jobs: we test output naming for one and several styles.
// - loadConfig: we test file loading and the not-found hint.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/alnah/go-cv2pdf/internal/config"
	"github.com/alnah/go-cv2pdf/internal/logging"
)

// ---------------------------------------------------------------------------
// TestMergeFlags - Flags over config
// ---------------------------------------------------------------------------

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	base := func() *config.Config {
		return &config.Config{
			Input:  config.InputConfig{Personal: "file.json", Styles: []string{"hero"}},
			Output: config.OutputConfig{PDF: "file.pdf"},
			Render: config.RenderConfig{Timeout: "10s", Workers: 2, Date: "2025"},
			Log:    config.LogConfig{Level: "normal"},
		}
	}

	t.Run("unset flags keep config", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		if err := mergeFlags(&renderFlags{}, cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Input.Personal != "file.json" || cfg.Output.PDF != "file.pdf" || cfg.Render.Workers != 2 {
			t.Errorf("config changed: %+v", cfg)
		}
		if cfg.Log.Level != "normal" {
			t.Errorf("Log.Level = %q, want normal", cfg.Log.Level)
		}
	})

	t.Run("set flags override", func(t *testing.T) {
		t.Parallel()

		f := &renderFlags{
			common:  commonFlags{quiet: true},
			input:   inputFlags{personal: "flag.json", styles: []string{"a", "b"}, template: "t.html", assetPath: "/a"},
			output:  outputFlags{pdf: "out", html: "html", htmlOnly: true},
			browser: browserFlags{noSandbox: true, timeout: "1m", workers: 5, date: "auto:iso"},
		}
		cfg := base()
		if err := mergeFlags(f, cfg); err != nil {
			t.Fatal(err)
		}

		if cfg.Input.Personal != "flag.json" || !slices.Equal(cfg.Input.Styles, []string{"a", "b"}) || cfg.Input.Template != "t.html" {
			t.Errorf("Input = %+v", cfg.Input)
		}
		if cfg.Assets.BasePath != "/a" || cfg.Output.PDF != "out" || cfg.Output.HTML != "html" || !cfg.Output.HTMLOnly {
			t.Errorf("Output = %+v, Assets = %+v", cfg.Output, cfg.Assets)
		}
		if cfg.Render.Timeout != "1m" || cfg.Render.Workers != 5 || !cfg.Render.NoSandbox || cfg.Render.Date != "auto:iso" {
			t.Errorf("Render = %+v", cfg.Render)
		}
		if cfg.Log.Level != logging.LevelNone {
			t.Errorf("Log.Level = %q, want none", cfg.Log.Level)
		}
	})

	t.Run("verbose selects debug", func(t *testing.T) {
		t.Parallel()

		cfg := base()
		if err := mergeFlags(&renderFlags{common: commonFlags{verbose: true}}, cfg); err != nil {
			t.Fatal(err)
		}
		if cfg.Log.Level != logging.LevelDebug {
			t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		t.Parallel()

		for _, timeout := range []string{"soon", "0s", "-1m"} {
			f := &renderFlags{browser: browserFlags{timeout: timeout}}
			if err := mergeFlags(f, base()); !errors.Is(err, ErrInvalidTimeout) {
				t.Errorf("timeout %q: error = %v, want ErrInvalidTimeout", timeout, err)
			}
		}
	})
}

// ---------------------------------------------------------------------------
// TestNewRenderPlan - Defaults
// ---------------------------------------------------------------------------

func TestNewRenderPlan(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		p := newRenderPlan(config.DefaultConfig())
		if p.inputs.Personal != defaultPersonalPath {
			t.Errorf("Personal = %q, want %q", p.inputs.Personal, defaultPersonalPath)
		}
		if p.pdf != defaultOutputPath {
			t.Errorf("pdf = %q, want %q", p.pdf, defaultOutputPath)
		}
		// No configs/style.json next to this package: built-in defaults.
		if !slices.Equal(p.styles, []string{""}) {
			t.Errorf("styles = %q, want built-in defaults", p.styles)
		}
		if p.timeout != 0 || p.workers != 0 {
			t.Errorf("timeout = %v, workers = %d, want library defaults", p.timeout, p.workers)
		}
	})

	t.Run("several styles resolved per job", func(t *testing.T) {
		t.Parallel()

		cfg := config.DefaultConfig()
		cfg.Input.Styles = []string{"hero", "brutalism"}
		p := newRenderPlan(cfg)

		if p.inputs.Style != "" {
			t.Errorf("inputs.Style = %q, want empty", p.inputs.Style)
		}
	})

	t.Run("from config", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{
			Input:  config.InputConfig{Personal: "me.yaml", Styles: []string{"hero"}, Template: "t.html"},
			Assets: config.AssetsConfig{BasePath: "/a"},
			Render: config.RenderConfig{Timeout: "45s", Workers: 3, NoSandbox: true},
		}
		p := newRenderPlan(cfg)

		if p.inputs.Personal != "me.yaml" || p.inputs.Template != "t.html" || p.inputs.AssetPath != "/a" {
			t.Errorf("inputs = %+v", p.inputs)
		}
		if p.inputs.Style != "hero" {
			t.Errorf("inputs.Style = %q, want the single style loaded up front", p.inputs.Style)
		}
		if p.timeout != 45*time.Second || p.workers != 3 || !p.noSandbox {
			t.Errorf("plan = %+v", p)
		}
		if n := len(p.converterOptions("<html></html>")); n != 4 {
			t.Errorf("converterOptions() len = %d, want 4", n)
		}
	})
}

// ---------------------------------------------------------------------------
// TestRenderPlanJobs - Output naming
// ---------------------------------------------------------------------------

func TestRenderPlanJobs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		plan     renderPlan
		person   string
		wantPDF  []string
		wantHTML []string
	}{
		{
			name:     "single style beside PDF",
			plan:     renderPlan{styles: []string{"hero"}, pdf: filepath.Join("output", "cv.pdf")},
			person:   "Ada Lovelace",
			wantPDF:  []string{filepath.Join("output", "cv.pdf")},
			wantHTML: []string{filepath.Join("output", "cv.html")},
		},
		{
			name:     "single style explicit HTML",
			plan:     renderPlan{styles: []string{"hero"}, pdf: "cv.pdf", html: filepath.Join("dbg", "x.html")},
			wantPDF:  []string{"cv.pdf"},
			wantHTML: []string{filepath.Join("dbg", "x.html")},
		},
		{
			name:   "several styles into directory",
			plan:   renderPlan{styles: []string{"hero", filepath.Join("styles", "Mono.yaml")}, pdf: "dist"},
			person: "Grace Hopper",
			wantPDF: []string{
				filepath.Join("dist", "grace-hopper-hero.pdf"),
				filepath.Join("dist", "grace-hopper-Mono.pdf"),
			},
			wantHTML: []string{
				filepath.Join("dist", "grace-hopper-hero.html"),
				filepath.Join("dist", "grace-hopper-Mono.html"),
			},
		},
		{
			name:   "several styles, PDF path and HTML directory",
			plan:   renderPlan{styles: []string{"a", "b"}, pdf: filepath.Join("dist", "cv.pdf"), html: "pages"},
			person: "Zoë Ünal",
			wantPDF: []string{
				filepath.Join("dist", "zoe-unal-a.pdf"),
				filepath.Join("dist", "zoe-unal-b.pdf"),
			},
			wantHTML: []string{
				filepath.Join("pages", "zoe-unal-a.html"),
				filepath.Join("pages", "zoe-unal-b.html"),
			},
		},
		{
			name:     "several styles without a name",
			plan:     renderPlan{styles: []string{"a", "b"}, pdf: "dist"},
			wantPDF:  []string{filepath.Join("dist", "cv-a.pdf"), filepath.Join("dist", "cv-b.pdf")},
			wantHTML: []string{filepath.Join("dist", "cv-a.html"), filepath.Join("dist", "cv-b.html")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jobs, err := tt.plan.jobs(tt.person)
			if err != nil {
				t.Fatal(err)
			}

			var gotPDF, gotHTML []string
			for _, j := range jobs {
				gotPDF = append(gotPDF, j.pdfPath)
				gotHTML = append(gotHTML, j.htmlPath)
			}
			if !slices.Equal(gotPDF, tt.wantPDF) {
				t.Errorf("PDF paths = %v, want %v", gotPDF, tt.wantPDF)
			}
			if !slices.Equal(gotHTML, tt.wantHTML) {
				t.Errorf("HTML paths = %v, want %v", gotHTML, tt.wantHTML)
			}
		})
	}
}

func TestRenderPlanJobs_Duplicate(t *testing.T) {
	t.Parallel()

	p := renderPlan{styles: []string{filepath.Join("a", "x.json"), filepath.Join("b", "x.yaml")}, pdf: "dist"}
	if _, err := p.jobs("Ada"); !errors.Is(err, ErrDuplicateOutput) {
		t.Errorf("error = %v, want ErrDuplicateOutput", err)
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig - Config file and environment
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("no name gives empty config plus env", func(t *testing.T) {
		t.Parallel()

		cfg, err := loadConfig("", &envConfig{Personal: "env.json"})
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Input.Personal != "env.json" {
			t.Errorf("Personal = %q, want env.json", cfg.Input.Personal)
		}
	})

	t.Run("file path", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "cv2pdf.yaml", "input:\n  personal: file.json\nrender:\n  workers: 2\n")
		cfg, err := loadConfig(path, &envConfig{Personal: "env.json", Workers: 6})
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Input.Personal != "file.json" || cfg.Render.Workers != 2 {
			t.Errorf("config = %+v, want file values over env", cfg)
		}
	})

	t.Run("env names the file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "c.yaml", "log:\n  level: debug\n")
		cfg, err := loadConfig("", &envConfig{ConfigPath: path})
		if err != nil {
			t.Fatal(err)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
		}
	})

	t.Run("unknown name gets a hint", func(t *testing.T) {
		t.Parallel()

		_, err := loadConfig("no-such-config-name", &envConfig{})
		if !errors.Is(err, config.ErrConfigNotFound) {
			t.Fatalf("error = %v, want ErrConfigNotFound", err)
		}
		if !strings.Contains(err.Error(), "hint:") {
			t.Errorf("error = %q, want a hint", err)
		}
	})

	t.Run("invalid file", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, t.TempDir(), "bad.yaml", "render:\n  workers: 99\n")
		if _, err := loadConfig(path, &envConfig{}); !errors.Is(err, config.ErrConfigInvalid) {
			t.Errorf("error = %v, want ErrConfigInvalid", err)
		}
	})
}
