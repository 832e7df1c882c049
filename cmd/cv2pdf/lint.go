package main

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/assets"
	"github.com/alnah/go-cv2pdf/internal/fileutil"
	"github.com/alnah/go-cv2pdf/internal/schema"
)

// runLint validates each style against the style schema and reports every
// violation. Any failure makes the command fail.
func runLint(f *lintFlags, env *Environment) error {
	cfg, err := loadConfig(f.common.config, loadEnvConfig())
	if err != nil {
		return err
	}

	refs := f.styles
	if len(refs) == 0 {
		refs = cfg.Input.Styles
	}
	if len(refs) == 0 {
		refs = []string{defaultStylePath}
	}
	assetPath := cmp.Or(f.assetPath, cfg.Assets.BasePath)

	failed := 0
	for _, ref := range refs {
		err := lintStyle(ref, assetPath)
		var verr *schema.ValidationError
		switch {
		case err == nil:
			if !f.common.quiet {
				fmt.Fprintf(env.Stdout, "%s: ok\n", ref)
			}
		case errors.As(err, &verr):
			failed++
			fmt.Fprintf(env.Stdout, "%s: %d problem(s)\n", ref, len(verr.Errors))
			for _, fe := range verr.Errors {
				fmt.Fprintf(env.Stdout, "  %s: %s\n", fe.Field, fe.Message)
			}
		default:
			failed++
			fmt.Fprintf(env.Stdout, "%s: %v\n", ref, err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d styles", ErrLintFailed, failed, len(refs))
	}
	return nil
}

func lintStyle(ref, assetPath string) error {
	data, format, err := readStyleSource(ref, assetPath)
	if err != nil {
		return err
	}

	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case assets.FormatJSON:
		return schema.ValidateStyle(data)
	case assets.FormatYAML, "yml":
		return schema.ValidateStyleYAML(data)
	}
	return fmt.Errorf("%w: %q (want .json, .yaml or .yml)", cv2pdf.ErrUnsupportedType, format)
}

// readStyleSource returns the raw bytes and format of a style file or preset.
func readStyleSource(ref, assetPath string) ([]byte, string, error) {
	if fileutil.IsFilePath(ref) {
		data, err := os.ReadFile(ref) // #nosec G304 -- user-provided path
		if err != nil {
			return nil, "", fmt.Errorf("%w: %w", cv2pdf.ErrReadInput, err)
		}
		return data, filepath.Ext(ref), nil
	}

	var loader assets.AssetLoader = assets.NewEmbeddedLoader()
	if assetPath != "" {
		resolver, err := assets.NewAssetResolver(assetPath)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", cv2pdf.ErrInvalidAssetDir, err)
		}
		loader = resolver
	}

	asset, err := loader.LoadStyle(ref)
	if err != nil {
		if errors.Is(err, assets.ErrStyleNotFound) || errors.Is(err, assets.ErrInvalidAssetName) {
			return nil, "", fmt.Errorf("%w: %q", cv2pdf.ErrStyleNotFound, ref)
		}
		return nil, "", err
	}
	return asset.Data, asset.Format, nil
}
