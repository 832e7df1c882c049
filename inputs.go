package cv2pdf

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/jsonutil"
	"github.com/alnah/go-cv2pdf/internal/yamlutil"
)

// InputPaths names the documents a conversion reads.
type InputPaths struct {
	Personal  string // personal content file (required)
	Style     string // style file path or preset name (empty = defaults)
	Template  string // template file path or template name (empty = built-in)
	AssetPath string // custom asset directory for preset and template names
}

// Inputs holds the decoded documents.
type Inputs struct {
	Personal Personal
	Style    StyleConfig
	Template string // template source, empty when the built-in one applies
	BaseDir  string // directory of the personal file
}

// LoadInputs reads the personal, style and template documents concurrently.
// The first failure cancels the remaining reads. Style failures are returned
// as *StyleError.
func LoadInputs(ctx context.Context, paths InputPaths) (*Inputs, error) {
	if paths.Personal == "" {
		return nil, fmt.Errorf("%w: no personal file given", ErrReadInput)
	}

	loader, err := newAssetLoader(paths.AssetPath)
	if err != nil {
		return nil, err
	}

	var in Inputs
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		p, err := LoadPersonal(paths.Personal)
		if err != nil {
			return err
		}
		in.Personal = p
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := resolveStyle(loader, paths.Style)
		if err != nil {
			return &StyleError{Ref: paths.Style, Err: err}
		}
		in.Style = s
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		t, err := resolveTemplate(loader, paths.Template)
		if err != nil {
			return err
		}
		in.Template = t
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if abs, err := filepath.Abs(paths.Personal); err == nil {
		in.BaseDir = filepath.Dir(abs)
	}
	return &in, nil
}

// ResolveStyle loads a style from a file path, or from a preset when ref is
// a bare name. An empty ref yields the zero StyleConfig.
func ResolveStyle(ref, assetPath string) (StyleConfig, error) {
	loader, err := newAssetLoader(assetPath)
	if err != nil {
		return StyleConfig{}, err
	}
	return resolveStyle(loader, ref)
}

// ListPresets returns the names of the available style presets.
func ListPresets(assetPath string) ([]string, error) {
	loader, err := newAssetLoader(assetPath)
	if err != nil {
		return nil, err
	}
	return loader.ListStyles()
}

// LoadStyle reads a JSON or YAML style file, chosen by extension.
func LoadStyle(path string) (StyleConfig, error) {
	data, err := readInput(path)
	if err != nil {
		return StyleConfig{}, err
	}
	return ParseStyle(data, filepath.Ext(path))
}

// ParseStyle decodes a style document. format is "json" or "yaml",
// with or without a leading dot. Unknown fields are ignored.
func ParseStyle(data []byte, format string) (StyleConfig, error) {
	var cfg StyleConfig
	if err := decode(data, format, &cfg); err != nil {
		return StyleConfig{}, err
	}
	return cfg, nil
}

// LoadPersonal reads a JSON or YAML personal content file.
func LoadPersonal(path string) (Personal, error) {
	data, err := readInput(path)
	if err != nil {
		return nil, err
	}
	return ParsePersonal(data, filepath.Ext(path))
}

// ParsePersonal decodes personal content. The document must be an object;
// its fields reach the template untouched.
func ParsePersonal(data []byte, format string) (Personal, error) {
	var p map[string]any
	if err := decode(data, format, &p); err != nil {
		return nil, err
	}
	if len(p) == 0 {
		return nil, ErrEmptyPersonal
	}
	return Personal(p), nil
}

func decode(data []byte, format string, v any) error {
	var err error
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "json":
		err = jsonutil.Unmarshal(data, v)
	case "yaml", "yml":
		err = yamlutil.Unmarshal(data, v)
	default:
		return fmt.Errorf("%w: %q (want .json, .yaml or .yml)", ErrUnsupportedType, format)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrParseInput, err)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	return data, nil
}

// newAssetLoader returns the embedded loader, or a resolver that prefers
// assetPath when one is given.
func newAssetLoader(assetPath string) (assets.AssetLoader, error) {
	if assetPath == "" {
		return assets.NewEmbeddedLoader(), nil
	}
	resolver, err := assets.NewAssetResolver(assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetDir, err)
	}
	return resolver, nil
}

func resolveStyle(loader assets.AssetLoader, ref string) (StyleConfig, error) {
	if ref == "" {
		return StyleConfig{}, nil
	}
	if fileutil.IsFilePath(ref) {
		return LoadStyle(ref)
	}

	asset, err := loader.LoadStyle(ref)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return StyleConfig{}, fmt.Errorf("%w: %q", ErrStyleNotFound, ref)
		}
		return StyleConfig{}, fmt.Errorf("loading style %q: %w", ref, err)
	}

	cfg, err := ParseStyle(asset.Data, asset.Format)
	if err != nil {
		return StyleConfig{}, fmt.Errorf("preset %q: %w", ref, err)
	}
	return cfg, nil
}

func resolveTemplate(loader assets.AssetLoader, ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	if fileutil.IsFilePath(ref) {
		data, err := readInput(ref)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	src, err := loader.LoadTemplate(ref)
	if err != nil {
		if errors.Is(err, assets.ErrTemplateNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, ref)
		}
		return "", fmt.Errorf("loading template %q: %w", ref, err)
	}
	return src, nil
}
