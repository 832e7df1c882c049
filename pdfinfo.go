package cv2pdf

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// ErrPDFInspect is returned when generated PDF bytes cannot be parsed.
var ErrPDFInspect = errors.New("cannot inspect PDF")

// PageCount returns the number of pages in a PDF document.
func PageCount(data []byte) (n int, err error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("%w: empty document", ErrPDFInspect)
	}

	// The parser panics on some truncated inputs.
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("%w: %v", ErrPDFInspect, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrPDFInspect, err)
	}
	return reader.NumPage(), nil
}
