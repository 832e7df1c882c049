package main

// Notes:
// - exitCodeFor: we test the sentinel errors of the library, config, logging
//   and CLI layers, plus wrapped errors to verify the errors.Is chain.
// - Exit code constants: we verify Unix conventions and codes below 126.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/config"
	"github.com/alnah/go-cv2pdf/internal/logging"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", cv2pdf.ErrBrowserConnect, ExitBrowser},
		{"page create", cv2pdf.ErrPageCreate, ExitBrowser},
		{"page load", cv2pdf.ErrPageLoad, ExitBrowser},
		{"pdf generation", cv2pdf.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("style %q: %w", "hero", cv2pdf.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"not exist", os.ErrNotExist, ExitIO},
		{"permission", os.ErrPermission, ExitIO},
		{"read input", fmt.Errorf("%w: %w", cv2pdf.ErrReadInput, os.ErrNotExist), ExitIO},
		{"write output", fmt.Errorf("%w: disk full", ErrWriteOutput), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"worker count", ErrInvalidWorkerCount, ExitUsage},
		{"timeout", ErrInvalidTimeout, ExitUsage},
		{"duplicate output", ErrDuplicateOutput, ExitUsage},
		{"lint failed", ErrLintFailed, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config invalid", fmt.Errorf("%w: render.workers", config.ErrConfigInvalid), ExitUsage},
		{"log level", logging.ErrInvalidLevel, ExitUsage},
		{"empty personal", cv2pdf.ErrEmptyPersonal, ExitUsage},
		{"parse input", cv2pdf.ErrParseInput, ExitUsage},
		{"unsupported type", cv2pdf.ErrUnsupportedType, ExitUsage},
		{"style not found", cv2pdf.ErrStyleNotFound, ExitUsage},
		{"template not found", cv2pdf.ErrTemplateNotFound, ExitUsage},
		{"template parse", cv2pdf.ErrTemplateParse, ExitUsage},
		{"asset dir", cv2pdf.ErrInvalidAssetDir, ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"html render", cv2pdf.ErrHTMLRender, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 || ExitGeneral != 1 || ExitUsage != 2 {
		t.Error("exit codes 0, 1 and 2 must follow Unix conventions")
	}
	for _, code := range []int{ExitIO, ExitBrowser} {
		if code >= 126 {
			t.Errorf("exit code %d collides with shell-reserved codes", code)
		}
	}
}
