package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrMarkdownRender indicates inline Markdown conversion failed.
var ErrMarkdownRender = errors.New("markdown rendering failed")

// paragraphBreak separates paragraphs once block markup is stripped.
const paragraphBreak = "<br><br>"

// MarkdownRenderer converts short Markdown snippets (summaries, bullet
// highlights) into sanitized inline HTML.
type MarkdownRenderer struct {
	md goldmark.Markdown
}

// NewMarkdownRenderer creates a MarkdownRenderer. Raw HTML in the source is
// left to goldmark's safe default and the result is passed through SanitizeRich.
func NewMarkdownRenderer() *MarkdownRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.Typographer), // smart quotes and dashes
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // newlines become <br>
		),
	)
	return &MarkdownRenderer{md: md}
}

// Render converts src to inline HTML. Paragraphs are joined with a double
// line break and everything outside the rich-text allowlist is removed.
func (r *MarkdownRenderer) Render(src string) (string, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdownRender, err)
	}

	out := strings.TrimSpace(buf.String())
	out = strings.ReplaceAll(out, "</p>\n<p>", paragraphBreak)
	return strings.TrimSpace(SanitizeRich(out)), nil
}
