package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"reflect"
	"strings"

	sprig "github.com/go-task/slim-sprig/v3"
)

// Sentinel errors for document templates.
var (
	ErrTemplateParse   = errors.New("template parsing failed")
	ErrTemplateExecute = errors.New("template execution failed")
)

// defaultJoinSep is used by the join helper when no separator is given.
const defaultJoinSep = ", "

// DocumentData is the value a document template executes against.
type DocumentData struct {
	Personal map[string]any // CV content, untouched
	Style    any            // resolved style settings
	CSS      template.CSS   // compiled stylesheet
	Now      string         // generation date, already formatted
}

// DocumentTemplate is a parsed CV document template.
type DocumentTemplate struct {
	tmpl *template.Template
}

// NewDocumentTemplate parses src with the document helper functions.
func NewDocumentTemplate(src string) (*DocumentTemplate, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("%w: empty template", ErrTemplateParse)
	}

	tmpl, err := template.New("document").Funcs(FuncMap(NewMarkdownRenderer())).Parse(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &DocumentTemplate{tmpl: tmpl}, nil
}

// Render executes the template. The template is safe for concurrent use.
func (d *DocumentTemplate) Render(ctx context.Context, data *DocumentData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if data == nil {
		data = &DocumentData{}
	}

	var buf bytes.Buffer
	if err := d.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateExecute, err)
	}
	return buf.String(), nil
}

// StyleSheet marks css as trusted for the <style> element. Sequences that
// would close the element early are escaped.
func StyleSheet(css string) template.CSS {
	return template.CSS(strings.ReplaceAll(css, "</", `<\/`)) // #nosec G203 -- compiled by this program
}

// FuncMap returns the sprig HTML helpers plus the document helpers:
//
//	join LIST [SEP]   elements joined with SEP (default ", "); "" for non-lists
//	safe TEXT         rich text reduced to b, i, em, strong, u, br
//	md TEXT           inline Markdown, then the same reduction as safe
//	ifAny VALUES...   true if any value is non-empty
//	assetURL VALUE    image URL that may also be a data: or file: URL
//
// join replaces sprig's join, which takes its arguments in the other order.
func FuncMap(md *MarkdownRenderer) template.FuncMap {
	funcs := sprig.HtmlFuncMap()
	funcs["join"] = join
	funcs["safe"] = safe
	funcs["md"] = func(v any) (template.HTML, error) {
		out, err := md.Render(toString(v))
		return template.HTML(out), err // #nosec G203 -- sanitized by Render
	}
	funcs["ifAny"] = ifAny
	funcs["assetURL"] = assetURL
	return funcs
}

func join(list any, sep ...string) string {
	s := defaultJoinSep
	if len(sep) > 0 {
		s = sep[0]
	}

	rv := reflect.ValueOf(list)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return ""
	}

	parts := make([]string, 0, rv.Len())
	for i := range rv.Len() {
		parts = append(parts, toString(rv.Index(i).Interface()))
	}
	return strings.Join(parts, s)
}

func safe(v any) template.HTML {
	return template.HTML(SanitizeRich(toString(v))) // #nosec G203 -- sanitized
}

func ifAny(values ...any) bool {
	for _, v := range values {
		if truthy(v) {
			return true
		}
	}
	return false
}

// assetURL trusts image data URIs and file URLs, which html/template
// would otherwise replace. Other schemes go through the normal filter.
func assetURL(v any) any {
	s := strings.TrimSpace(toString(v))
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "data:image/") || strings.HasPrefix(lower, "file:") {
		return template.URL(s) // #nosec G203 -- restricted to images and local files
	}
	return s
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case template.HTML:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

// truthy follows template truth: zero values, empty strings and empty
// collections are false.
func truthy(v any) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return rv.Len() > 0
	case reflect.Bool:
		return rv.Bool()
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	default:
		return !rv.IsZero()
	}
}
