package cv2pdf

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-cv2pdf/internal/dateutil"
	"github.com/alnah/go-cv2pdf/internal/pipeline"
)

// documentBuilder renders the HTML document from personal content and
// resolved style settings.
type documentBuilder struct {
	tmpl *pipeline.DocumentTemplate
	now  func() time.Time
}

// newDocumentBuilder parses the template source.
func newDocumentBuilder(src string, now func() time.Time) (*documentBuilder, error) {
	tmpl, err := pipeline.NewDocumentTemplate(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	if now == nil {
		now = time.Now
	}
	return &documentBuilder{tmpl: tmpl, now: now}, nil
}

// build executes the template with the stylesheet embedded in <style>.
// Relative image paths are rewritten against input.BaseDir when set.
func (d *documentBuilder) build(ctx context.Context, input Input, settings Settings, css string) (string, error) {
	now, err := dateutil.Resolve(input.Date, d.now())
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	doc, err := d.tmpl.Render(ctx, &pipeline.DocumentData{
		Personal: input.Personal,
		Style:    settings,
		CSS:      pipeline.StyleSheet(css),
		Now:      now,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrHTMLRender, err)
	}

	if input.BaseDir != "" {
		doc, err = pipeline.RewriteRelativePaths(doc, input.BaseDir)
		if err != nil {
			return "", fmt.Errorf("rewriting relative paths: %w", err)
		}
	}
	return doc, nil
}
