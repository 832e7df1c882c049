// Package jsonutil wraps goccy/go-json for the JSON documents read by the CLI
// and library (style configuration and CV content).
package jsonutil

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// MaxInputSize limits JSON input to prevent memory exhaustion (default 1MB).
var MaxInputSize = 1 << 20

var (
	ErrNilData        = errors.New("jsonutil: nil or empty data")
	ErrNilDestination = errors.New("jsonutil: nil destination pointer")
	ErrInputTooLarge  = errors.New("jsonutil: input exceeds maximum size")
)

// Unmarshal decodes JSON into v. Unknown object keys are ignored.
func Unmarshal(data []byte, v any) error {
	if len(data) == 0 {
		return ErrNilData
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("jsonutil: %w", err)
	}
	return nil
}

// MarshalIndent encodes v as indented JSON.
func MarshalIndent(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("jsonutil: %w", err)
	}
	return out, nil
}
