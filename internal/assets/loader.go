package assets

import (
	"fmt"
	"strings"
)

// Built-in asset names.
const (
	DefaultStyleName    = "default"
	DefaultTemplateName = "cv"
)

// Style document formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StyleAsset is a raw style document as found by a loader.
// Decoding is left to the caller.
type StyleAsset struct {
	Name   string
	Format string // FormatJSON or FormatYAML
	Data   []byte
}

// AssetLoader loads style presets and HTML templates by name.
type AssetLoader interface {
	// LoadStyle loads a style preset by name (without extension).
	// Returns ErrStyleNotFound if the preset doesn't exist.
	LoadStyle(name string) (*StyleAsset, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// ListStyles returns the sorted names of the available presets.
	ListStyles() ([]string, error)
}

// ValidateAssetName checks that an asset name is safe for use as a filename.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\.") {
		return fmt.Errorf("%w: %q", ErrInvalidAssetName, name)
	}
	return nil
}

// styleExtensions lists the accepted style file extensions, in lookup order.
var styleExtensions = []struct {
	ext    string
	format string
}{
	{".json", FormatJSON},
	{".yaml", FormatYAML},
	{".yml", FormatYAML},
}

// styleName strips a known style extension from a file name.
// Reports false for files that are not style documents.
func styleName(filename string) (string, bool) {
	for _, se := range styleExtensions {
		if base, ok := strings.CutSuffix(filename, se.ext); ok && base != "" {
			return base, true
		}
	}
	return "", false
}
