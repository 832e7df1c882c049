// Package config loads the optional YAML configuration file of the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// Limits applied to config values.
const (
	MaxPathLength = 4096
	MaxDateLength = 60
	MaxWorkers    = 8
)

// userConfigDirName is the directory searched under os.UserConfigDir.
const userConfigDirName = "go-cv2pdf"

// Config holds every setting the CLI can read from a file.
// Zero values mean "not set" and leave the built-in default in place.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Assets AssetsConfig `yaml:"assets"`
	Render RenderConfig `yaml:"render"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig names the input documents.
type InputConfig struct {
	Personal string   `yaml:"personal" validate:"max=4096"`
	Styles   []string `yaml:"styles" validate:"max=32,dive,required,max=4096"`
	Template string   `yaml:"template" validate:"max=4096"`
}

// OutputConfig names the generated files.
type OutputConfig struct {
	PDF      string `yaml:"pdf" validate:"max=4096"`
	HTML     string `yaml:"html" validate:"max=4096"`
	HTMLOnly bool   `yaml:"htmlOnly"`
}

// AssetsConfig defines a custom asset directory.
type AssetsConfig struct {
	BasePath string `yaml:"basePath" validate:"max=4096"` // empty = embedded assets only
}

// RenderConfig tunes the browser and the worker pool.
type RenderConfig struct {
	Timeout   string `yaml:"timeout" validate:"omitempty,duration"` // e.g. "45s"
	Workers   int    `yaml:"workers" validate:"gte=0,lte=8"`        // 0 = auto
	NoSandbox bool   `yaml:"noSandbox"`
	Date      string `yaml:"date" validate:"max=60"` // "auto", "auto:FORMAT" or literal text
}

// LogConfig selects the log verbosity.
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=none normal debug"`
}

// TimeoutDuration returns the parsed render timeout, or 0 when unset.
func (r RenderConfig) TimeoutDuration() time.Duration {
	d, err := time.ParseDuration(r.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// DefaultConfig returns an empty configuration.
func DefaultConfig() *Config {
	return &Config{}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report fields by their YAML key.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("duration", func(fl validator.FieldLevel) bool {
		d, err := time.ParseDuration(fl.Field().String())
		return err == nil && d > 0
	})
	return v
}

// Validate checks value ranges and lengths. LoadConfig calls it; library
// users building a Config by hand can call it too.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrConfigInvalid, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrConfigInvalid, strings.Join(msgs, "; "))
}

// describe renders one validator failure as "path: problem".
func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("%s: exceeds maximum of %s", field, fe.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s: must be between 0 and %d, got %v", field, MaxWorkers, fe.Value())
	case "oneof":
		return fmt.Sprintf("%s: invalid value %q (must be one of %s)", field, fe.Value(), fe.Param())
	case "duration":
		return fmt.Sprintf("%s: invalid duration %q", field, fe.Value())
	case "required":
		return fmt.Sprintf("%s: cannot be empty", field)
	}
	return fmt.Sprintf("%s: failed %s", field, fe.Tag())
}

// LoadConfig loads configuration from a file path or a config name.
// A value that looks like a path is read directly; a bare name is searched
// as NAME.yaml / NAME.yml in the working directory, then in the user config
// directory. A missing file is an error.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists the candidate files for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(dir, userConfigDirName, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
