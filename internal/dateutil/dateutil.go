// Package dateutil resolves the generation date printed on a CV.
package dateutil

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxFormatLength limits format string length.
const MaxFormatLength = 50

// ISOFormat is the format used for "auto" and for an empty date.
const ISOFormat = "YYYY-MM-DD"

// Presets are named shortcuts usable as "auto:NAME".
var Presets = map[string]string{
	"iso":      ISOFormat,
	"european": "DD/MM/YYYY",
	"us":       "MM/DD/YYYY",
	"long":     "MMMM D, YYYY",
	"month":    "MMMM YYYY",
}

// tokens in matching order: longer tokens first.
var tokens = []struct {
	token  string
	render func(t time.Time) string
}{
	{"YYYY", func(t time.Time) string { return fmt.Sprintf("%04d", t.Year()) }},
	{"MMMM", func(t time.Time) string { return t.Month().String() }},
	{"MMM", func(t time.Time) string { return t.Month().String()[:3] }},
	{"YY", func(t time.Time) string { return fmt.Sprintf("%02d", t.Year()%100) }},
	{"MM", func(t time.Time) string { return fmt.Sprintf("%02d", int(t.Month())) }},
	{"DD", func(t time.Time) string { return fmt.Sprintf("%02d", t.Day()) }},
	{"M", func(t time.Time) string { return strconv.Itoa(int(t.Month())) }},
	{"D", func(t time.Time) string { return strconv.Itoa(t.Day()) }},
}

// Format renders t with a token format: YYYY, YY, MMMM, MMM, MM, M, DD, D.
// Text inside brackets is copied literally ("[Updated] MMMM YYYY"); any
// other character is kept as is.
func Format(format string, t time.Time) (string, error) {
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxFormatLength {
		return "", fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxFormatLength)
	}

	var out strings.Builder
	rest := format
	for rest != "" {
		if rest[0] == '[' {
			literal, after, ok := strings.Cut(rest[1:], "]")
			if !ok {
				return "", fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, len(format)-len(rest))
			}
			out.WriteString(literal)
			rest = after
			continue
		}

		n := writeToken(&out, rest, t)
		if n == 0 {
			out.WriteByte(rest[0])
			n = 1
		}
		rest = rest[n:]
	}
	return out.String(), nil
}

// writeToken writes the token at the start of s and returns its length,
// or 0 when s does not start with a token.
func writeToken(out *strings.Builder, s string, t time.Time) int {
	for _, tok := range tokens {
		if strings.HasPrefix(s, tok.token) {
			out.WriteString(tok.render(t))
			return len(tok.token)
		}
	}
	return 0
}

// Resolve turns a date option into display text:
//
//	""             -> now as YYYY-MM-DD
//	"auto"         -> now as YYYY-MM-DD
//	"auto:FORMAT"  -> now in FORMAT, or in the named preset
//	anything else  -> returned unchanged
func Resolve(value string, now time.Time) (string, error) {
	lower := strings.ToLower(strings.TrimSpace(value))

	switch {
	case lower == "" || lower == "auto":
		return Format(ISOFormat, now)
	case !strings.HasPrefix(lower, "auto:"):
		return value, nil
	}

	format := strings.TrimSpace(value)[len("auto:"):]
	if format == "" {
		return "", fmt.Errorf("%w: format cannot be empty after \"auto:\"", ErrInvalidDateFormat)
	}
	if preset, ok := Presets[strings.ToLower(format)]; ok {
		format = preset
	}
	return Format(format, now)
}
