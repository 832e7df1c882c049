package main

import (
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/alnah/go-cv2pdf/internal/config"
)

// envPrefix marks the variables read by the CLI.
const envPrefix = "CV2PDF_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // CV2PDF_CONFIG: config file path or name
	Personal   string        // CV2PDF_PERSONAL: personal content file
	Styles     []string      // CV2PDF_STYLE: comma-separated styles
	Template   string        // CV2PDF_TEMPLATE: template file or name
	Output     string        // CV2PDF_OUTPUT: output PDF or directory
	HTML       string        // CV2PDF_HTML: output HTML or directory
	AssetPath  string        // CV2PDF_ASSET_PATH: custom asset directory
	Timeout    time.Duration // CV2PDF_TIMEOUT: render timeout
	Workers    int           // CV2PDF_WORKERS: parallel browsers
	NoSandbox  bool          // CV2PDF_NO_SANDBOX: disable the Chrome sandbox
	Date       string        // CV2PDF_DATE: generation date
	LogLevel   string        // CV2PDF_LOG_LEVEL: none, normal, debug
}

// knownEnvVars lists valid CV2PDF_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"CV2PDF_CONFIG":     true,
	"CV2PDF_PERSONAL":   true,
	"CV2PDF_STYLE":      true,
	"CV2PDF_TEMPLATE":   true,
	"CV2PDF_OUTPUT":     true,
	"CV2PDF_HTML":       true,
	"CV2PDF_ASSET_PATH": true,
	"CV2PDF_TIMEOUT":    true,
	"CV2PDF_WORKERS":    true,
	"CV2PDF_NO_SANDBOX": true,
	"CV2PDF_DATE":       true,
	"CV2PDF_LOG_LEVEL":  true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numbers, durations and booleans are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("CV2PDF_CONFIG"),
		Personal:   os.Getenv("CV2PDF_PERSONAL"),
		Template:   os.Getenv("CV2PDF_TEMPLATE"),
		Output:     os.Getenv("CV2PDF_OUTPUT"),
		HTML:       os.Getenv("CV2PDF_HTML"),
		AssetPath:  os.Getenv("CV2PDF_ASSET_PATH"),
		Date:       os.Getenv("CV2PDF_DATE"),
		LogLevel:   os.Getenv("CV2PDF_LOG_LEVEL"),
	}

	for _, s := range strings.Split(os.Getenv("CV2PDF_STYLE"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			cfg.Styles = append(cfg.Styles, s)
		}
	}

	if timeout := os.Getenv("CV2PDF_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}

	if workers := os.Getenv("CV2PDF_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	if v := os.Getenv("CV2PDF_NO_SANDBOX"); v != "" {
		cfg.NoSandbox, _ = strconv.ParseBool(v)
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized CV2PDF_* variable.
func warnUnknownEnvVars(logger *zap.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", zap.String("name", name))
		}
	}
}

// applyEnvConfig fills config fields that the file left empty.
// Flags are merged afterwards, giving: flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Personal != "" && cfg.Input.Personal == "" {
		cfg.Input.Personal = env.Personal
	}
	if len(env.Styles) > 0 && len(cfg.Input.Styles) == 0 {
		cfg.Input.Styles = env.Styles
	}
	if env.Template != "" && cfg.Input.Template == "" {
		cfg.Input.Template = env.Template
	}

	if env.Output != "" && cfg.Output.PDF == "" {
		cfg.Output.PDF = env.Output
	}
	if env.HTML != "" && cfg.Output.HTML == "" {
		cfg.Output.HTML = env.HTML
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}

	if env.Timeout > 0 && cfg.Render.Timeout == "" {
		cfg.Render.Timeout = env.Timeout.String()
	}
	if env.Workers > 0 && cfg.Render.Workers == 0 {
		cfg.Render.Workers = env.Workers
	}
	if env.NoSandbox {
		cfg.Render.NoSandbox = true
	}
	if env.Date != "" && cfg.Render.Date == "" {
		cfg.Render.Date = env.Date
	}

	if env.LogLevel != "" && cfg.Log.Level == "" {
		cfg.Log.Level = env.LogLevel
	}
}
