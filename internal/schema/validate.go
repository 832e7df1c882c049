// Package schema validates style documents against the embedded JSON Schema.
// The stylesheet compiler never validates; this package backs the lint command.
package schema

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

//go:embed style.schema.json
var styleSchema []byte

// rootField names errors that apply to the whole document.
const rootField = "(root)"

// ValidationError lists every schema violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is a single violation at a field path such as "header.variant".
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaLoadError reports a schema or document that could not be loaded.
type SchemaLoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Source, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

var (
	compileOnce sync.Once
	compiled    *gojsonschema.Schema
	compileErr  error
)

func styleValidator() (*gojsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(styleSchema))
	})
	if compileErr != nil {
		return nil, &SchemaLoadError{Source: "style schema", Message: "invalid schema", Cause: compileErr}
	}
	return compiled, nil
}

// ValidateStyle checks a JSON style document. It returns nil, a
// *ValidationError listing every violation, or a *SchemaLoadError.
func ValidateStyle(data []byte) error {
	s, err := styleValidator()
	if err != nil {
		return err
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &SchemaLoadError{Source: "style document", Message: "not valid JSON", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = rootField
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}

// ValidateStyleYAML converts a YAML style document to JSON and validates it.
func ValidateStyleYAML(data []byte) error {
	js, err := yamlutil.ToJSON(data)
	if err != nil {
		return &SchemaLoadError{Source: "style document", Message: "not valid YAML", Cause: err}
	}
	return ValidateStyle(js)
}

// Schema returns the embedded schema text.
func Schema() []byte {
	out := make([]byte, len(styleSchema))
	copy(out, styleSchema)
	return out
}
