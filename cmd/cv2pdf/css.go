package main

import (
	"cmp"
	"io"

	cv2pdf "github.com/alnah/go-cv2pdf"
)

// runCSS prints the stylesheet compiled from one style.
func runCSS(f *cssFlags, env *Environment) error {
	cfg, err := loadConfig(f.common.config, loadEnvConfig())
	if err != nil {
		return err
	}

	ref := f.style
	if ref == "" && len(cfg.Input.Styles) > 0 {
		ref = cfg.Input.Styles[0]
	}
	if ref == "" {
		ref = defaultStyle()
	}
	assetPath := cmp.Or(f.assetPath, cfg.Assets.BasePath)

	style, err := cv2pdf.ResolveStyle(ref, assetPath)
	if err != nil {
		return styleError(ref, assetPath, err)
	}

	css := cv2pdf.BuildCSS(style)
	if f.out != "" {
		return writeOutput(f.out, []byte(css))
	}
	_, err = io.WriteString(env.Stdout, css)
	return err
}
