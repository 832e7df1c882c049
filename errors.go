package cv2pdf

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrEmptyPersonal   = errors.New("personal data cannot be empty")
	ErrHTMLRender      = errors.New("HTML rendering failed")
	ErrPDFGeneration   = errors.New("PDF generation failed")
	ErrBrowserConnect  = errors.New("failed to connect to browser")
	ErrPageCreate      = errors.New("failed to create browser page")
	ErrPageLoad        = errors.New("failed to load page")
	ErrTemplateParse   = errors.New("template parsing failed")
	ErrInvalidAssetDir = errors.New("invalid asset path")

	// Input loading errors.
	ErrReadInput       = errors.New("failed to read input file")
	ErrParseInput      = errors.New("failed to parse input file")
	ErrUnsupportedType = errors.New("unsupported input file type")

	// Asset loading errors.
	ErrStyleNotFound    = errors.New("style preset not found")
	ErrTemplateNotFound = errors.New("template not found")
)

// StyleError records which style reference LoadInputs failed to resolve.
type StyleError struct {
	Ref string
	Err error
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("style %q: %v", e.Ref, e.Err)
}

func (e *StyleError) Unwrap() error {
	return e.Err
}
