package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return path
}

// ---------------------------------------------------------------------------
// TestConfig_Validate
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		cfg         Config
		wantErr     bool
		errContains string
	}{
		{name: "empty config", cfg: Config{}},
		{
			name: "complete config",
			cfg: Config{
				Input:  InputConfig{Personal: "me.json", Styles: []string{"hero", "configs/style.yaml"}},
				Output: OutputConfig{PDF: "out/cv.pdf"},
				Render: RenderConfig{Timeout: "45s", Workers: 4, Date: "auto:long"},
				Log:    LogConfig{Level: "debug"},
			},
		},
		{
			name:        "bad log level",
			cfg:         Config{Log: LogConfig{Level: "loud"}},
			wantErr:     true,
			errContains: "log.level",
		},
		{
			name:        "workers above limit",
			cfg:         Config{Render: RenderConfig{Workers: 9}},
			wantErr:     true,
			errContains: "render.workers",
		},
		{
			name:        "negative workers",
			cfg:         Config{Render: RenderConfig{Workers: -1}},
			wantErr:     true,
			errContains: "render.workers",
		},
		{
			name:        "bad timeout",
			cfg:         Config{Render: RenderConfig{Timeout: "soon"}},
			wantErr:     true,
			errContains: "render.timeout",
		},
		{
			name:        "zero timeout",
			cfg:         Config{Render: RenderConfig{Timeout: "0s"}},
			wantErr:     true,
			errContains: "render.timeout",
		},
		{
			name:        "empty style entry",
			cfg:         Config{Input: InputConfig{Styles: []string{"default", ""}}},
			wantErr:     true,
			errContains: "input.styles[1]",
		},
		{
			name:        "path too long",
			cfg:         Config{Output: OutputConfig{PDF: strings.Repeat("a", MaxPathLength+1)}},
			wantErr:     true,
			errContains: "output.pdf",
		},
		{
			name:        "date too long",
			cfg:         Config{Render: RenderConfig{Date: strings.Repeat("d", MaxDateLength+1)}},
			wantErr:     true,
			errContains: "render.date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if !errors.Is(err, ErrConfigInvalid) {
				t.Fatalf("Validate() error = %v, want ErrConfigInvalid", err)
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Validate() error = %q, want mention of %q", err, tt.errContains)
			}
		})
	}
}

func TestRenderConfig_TimeoutDuration(t *testing.T) {
	t.Parallel()

	if got := (RenderConfig{Timeout: "1m30s"}).TimeoutDuration(); got != 90*time.Second {
		t.Errorf("TimeoutDuration() = %v, want 1m30s", got)
	}
	if got := (RenderConfig{}).TimeoutDuration(); got != 0 {
		t.Errorf("TimeoutDuration() = %v, want 0 when unset", got)
	}
}

// ---------------------------------------------------------------------------
// TestLoadConfig
// ---------------------------------------------------------------------------

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "cv.yaml", `input:
  personal: data/personal.yaml
  styles:
    - hero
    - brutalism
output:
  pdf: build/cv.pdf
  htmlOnly: true
render:
  timeout: 1m
  workers: 2
  noSandbox: true
log:
  level: debug
`)

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Input.Personal != "data/personal.yaml" {
			t.Errorf("Input.Personal = %q", cfg.Input.Personal)
		}
		if len(cfg.Input.Styles) != 2 || cfg.Input.Styles[1] != "brutalism" {
			t.Errorf("Input.Styles = %v", cfg.Input.Styles)
		}
		if !cfg.Output.HTMLOnly || cfg.Output.PDF != "build/cv.pdf" {
			t.Errorf("Output = %+v", cfg.Output)
		}
		if cfg.Render.TimeoutDuration() != time.Minute || cfg.Render.Workers != 2 || !cfg.Render.NoSandbox {
			t.Errorf("Render = %+v", cfg.Render)
		}
		if cfg.Log.Level != "debug" {
			t.Errorf("Log.Level = %q", cfg.Log.Level)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		if _, err := LoadConfig("/nonexistent/path/config.yaml"); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("invalid YAML", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "bad.yaml", "input: [unclosed")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "unknown.yaml", "watermark:\n  enabled: true\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, t.TempDir(), "invalid.yaml", "render:\n  workers: 42\n")
		if _, err := LoadConfig(path); !errors.Is(err, ErrConfigInvalid) {
			t.Errorf("error = %v, want ErrConfigInvalid", err)
		}
	})
}

func TestLoadConfig_ByName(t *testing.T) {
	// Not parallel: changes the working directory.
	dir := t.TempDir()
	writeConfig(t, dir, "work.yml", "log:\n  level: none\n")
	t.Chdir(dir)

	cfg, err := LoadConfig("work")
	if err != nil {
		t.Fatalf("LoadConfig(work) error = %v", err)
	}
	if cfg.Log.Level != "none" {
		t.Errorf("Log.Level = %q, want none", cfg.Log.Level)
	}

	_, err = LoadConfig("absent")
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("LoadConfig(absent) error = %v, want ErrConfigNotFound", err)
	}
	if !strings.Contains(err.Error(), "absent.yaml") {
		t.Errorf("error %q should list the searched paths", err)
	}
}

func TestSearchPaths(t *testing.T) {
	t.Parallel()

	paths := SearchPaths("cv")
	if len(paths) < 2 || paths[0] != "cv.yaml" || paths[1] != "cv.yml" {
		t.Errorf("SearchPaths() = %v, want local candidates first", paths)
	}
}
