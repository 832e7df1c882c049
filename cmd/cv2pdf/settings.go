package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gosimple/slug"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/hints"
	"github.com/alnah/go-cv2pdf/internal/logging"
)

// Defaults used when neither flags, environment nor config name a value.
const (
	defaultPersonalPath = "configs/personal.json"
	defaultStylePath    = "configs/style.json"
	defaultOutputPath   = "output/cv.pdf"
	defaultBaseName     = "cv"
)

// loadConfig loads the config named by the --config flag, else by
// CV2PDF_CONFIG, then fills its gaps from the environment. No name means
// an empty config.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("%w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	return cfg, nil
}

// mergeFlags overrides config values with the flags that were set.
func mergeFlags(f *renderFlags, cfg *config.Config) error {
	if f.input.personal != "" {
		cfg.Input.Personal = f.input.personal
	}
	if len(f.input.styles) > 0 {
		cfg.Input.Styles = f.input.styles
	}
	if f.input.template != "" {
		cfg.Input.Template = f.input.template
	}
	if f.input.assetPath != "" {
		cfg.Assets.BasePath = f.input.assetPath
	}

	if f.output.pdf != "" {
		cfg.Output.PDF = f.output.pdf
	}
	if f.output.html != "" {
		cfg.Output.HTML = f.output.html
	}
	if f.output.htmlOnly {
		cfg.Output.HTMLOnly = true
	}

	if f.browser.timeout != "" {
		d, err := time.ParseDuration(f.browser.timeout)
		if err != nil || d <= 0 {
			return fmt.Errorf("%w: %q (use a positive duration like 30s or 2m)", ErrInvalidTimeout, f.browser.timeout)
		}
		cfg.Render.Timeout = f.browser.timeout
	}
	if f.browser.workers > 0 {
		cfg.Render.Workers = f.browser.workers
	}
	if f.browser.noSandbox {
		cfg.Render.NoSandbox = true
	}
	if f.browser.date != "" {
		cfg.Render.Date = f.browser.date
	}

	switch {
	case f.common.quiet:
		cfg.Log.Level = logging.LevelNone
	case f.common.verbose:
		cfg.Log.Level = logging.LevelDebug
	}
	return nil
}

// renderPlan is the resolved set of render settings.
type renderPlan struct {
	inputs    cv2pdf.InputPaths // style set only when a single style renders
	styles    []string
	pdf       string
	html      string
	htmlOnly  bool
	noSandbox bool
	timeout   time.Duration // 0 = library default
	workers   int           // 0 = auto
	date      string
}

func newRenderPlan(cfg *config.Config) *renderPlan {
	p := &renderPlan{
		inputs: cv2pdf.InputPaths{
			Personal:  cfg.Input.Personal,
			Template:  cfg.Input.Template,
			AssetPath: cfg.Assets.BasePath,
		},
		styles:    cfg.Input.Styles,
		pdf:       cfg.Output.PDF,
		html:      cfg.Output.HTML,
		htmlOnly:  cfg.Output.HTMLOnly,
		noSandbox: cfg.Render.NoSandbox,
		timeout:   cfg.Render.TimeoutDuration(),
		workers:   cfg.Render.Workers,
		date:      cfg.Render.Date,
	}

	if p.inputs.Personal == "" {
		p.inputs.Personal = defaultPersonalPath
	}
	if len(p.styles) == 0 {
		p.styles = []string{defaultStyle()}
	}
	if len(p.styles) == 1 {
		p.inputs.Style = p.styles[0]
	}
	if p.pdf == "" {
		p.pdf = defaultOutputPath
	}
	return p
}

// defaultStyle returns configs/style.json when present, else "" for the
// built-in defaults.
func defaultStyle() string {
	if fileutil.FileExists(defaultStylePath) {
		return defaultStylePath
	}
	return ""
}

// converterOptions returns the options every pooled converter shares.
func (p *renderPlan) converterOptions(template string) []cv2pdf.Option {
	opts := []cv2pdf.Option{cv2pdf.WithNoSandbox(p.noSandbox)}
	if p.timeout > 0 {
		opts = append(opts, cv2pdf.WithTimeout(p.timeout))
	}
	if p.inputs.AssetPath != "" {
		opts = append(opts, cv2pdf.WithAssetPath(p.inputs.AssetPath))
	}
	if template != "" {
		opts = append(opts, cv2pdf.WithTemplate(template))
	}
	return opts
}

// renderJob is one style and the files it produces.
type renderJob struct {
	style    string
	pdfPath  string
	htmlPath string
}

// jobs maps styles to output files. A single style writes to the PDF path
// as given. Several styles write <slug(name)>-<style base>.pdf into the
// output directory; a .pdf output path contributes its directory.
func (p *renderPlan) jobs(name string) ([]renderJob, error) {
	if len(p.styles) == 1 {
		html := p.html
		if html == "" {
			html = siblingHTML(p.pdf)
		}
		return []renderJob{{style: p.styles[0], pdfPath: p.pdf, htmlPath: html}}, nil
	}

	pdfDir := dirOf(p.pdf, ".pdf")
	htmlDir := pdfDir
	if p.html != "" {
		htmlDir = dirOf(p.html, ".html")
	}

	base := slug.Make(name)
	if base == "" {
		base = defaultBaseName
	}

	seen := make(map[string]string, len(p.styles))
	jobs := make([]renderJob, 0, len(p.styles))
	for _, style := range p.styles {
		stem := base + "-" + fileutil.StripExt(style)
		if prev, dup := seen[stem]; dup {
			return nil, fmt.Errorf("%w: %q and %q both write %s", ErrDuplicateOutput, prev, style, stem)
		}
		seen[stem] = style

		jobs = append(jobs, renderJob{
			style:    style,
			pdfPath:  filepath.Join(pdfDir, stem+".pdf"),
			htmlPath: filepath.Join(htmlDir, stem+".html"),
		})
	}
	return jobs, nil
}

// siblingHTML returns the HTML path written next to a PDF.
func siblingHTML(pdf string) string {
	return filepath.Join(filepath.Dir(pdf), fileutil.StripExt(pdf)+".html")
}

// dirOf treats path as a directory unless it ends in ext.
func dirOf(path, ext string) string {
	if strings.EqualFold(filepath.Ext(path), ext) {
		return filepath.Dir(path)
	}
	return path
}
