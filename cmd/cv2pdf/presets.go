package main

import (
	"cmp"
	"fmt"

	cv2pdf "github.com/alnah/go-cv2pdf"
	"github.com/alnah/go-cv2pdf/internal/jsonutil"
)

// runPresets lists the style presets, one per line or as a JSON array.
func runPresets(f *presetsFlags, env *Environment) error {
	cfg, err := loadConfig(f.common.config, loadEnvConfig())
	if err != nil {
		return err
	}

	names, err := cv2pdf.ListPresets(cmp.Or(f.assetPath, cfg.Assets.BasePath))
	if err != nil {
		return err
	}
	if f.json {
		data, err := jsonutil.MarshalIndent(names)
		if err != nil {
			return err
		}
		fmt.Fprintln(env.Stdout, string(data))
		return nil
	}
	for _, name := range names {
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}
