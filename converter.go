package cv2pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-cv2pdf/internal/assets"
)

// Converter turns personal content and a style into an HTML document and a PDF.
// Create with NewConverter, use Convert for conversion, and Close when done.
type Converter struct {
	cfg          converterConfig
	assetLoader  assets.AssetLoader
	document     *documentBuilder
	pdfConverter pdfConverter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithAssetPath, WithTemplate).
// Returns error if asset loading or template parsing fails.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout: defaultTimeout,
			now:     time.Now,
		},
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cfg.assetPath != "" {
		loader, err := newAssetLoader(c.cfg.assetPath)
		if err != nil {
			return nil, err
		}
		c.assetLoader = loader
	}

	src := c.cfg.template
	if src == "" {
		var err error
		src, err = c.assetLoader.LoadTemplate(assets.DefaultTemplateName)
		if err != nil {
			return nil, fmt.Errorf("loading default template: %w", err)
		}
	}

	document, err := newDocumentBuilder(src, c.cfg.now)
	if err != nil {
		return nil, err
	}
	c.document = document

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout, c.cfg.noSandbox)
	}

	return c, nil
}

// Convert compiles the stylesheet, renders the HTML document and prints it.
// The context is used for cancellation and timeout.
// If input.HTMLOnly is true, PDF generation is skipped.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if len(input.Personal) == 0 {
		return nil, ErrEmptyPersonal
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	settings := Normalize(input.Style)
	css := CompileCSS(settings)

	htmlContent, err := c.document.build(ctx, input, settings, css)
	if err != nil {
		return nil, err
	}

	res := &ConvertResult{
		CSS:  css,
		HTML: []byte(htmlContent),
	}
	if input.HTMLOnly {
		return res, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	res.PDF = pdfBytes

	// A page count is informational; unreadable output still ships.
	if pages, err := PageCount(pdfBytes); err == nil {
		res.Pages = pages
	}
	return res, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}
