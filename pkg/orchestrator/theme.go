package orchestrator

import (
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-greet/pkg/render"
)

// themeConfig flattens a go-theme selection into the shape renderers consume:
// base tokens overlaid with the selected variant's tokens, derived CSS custom
// properties, and an asset URL resolver.
func themeConfig(selection *theme.Selection) *render.ThemeConfig {
	if selection == nil {
		return nil
	}

	cfg := &render.ThemeConfig{
		Theme:   selection.Theme,
		Variant: selection.Variant,
	}

	manifest := selection.Manifest
	if manifest == nil {
		return cfg
	}

	tokens := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		tokens[key] = value
	}

	assets := manifest.Assets
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
		if len(variant.Assets.Files) > 0 {
			files := make(map[string]string, len(assets.Files)+len(variant.Assets.Files))
			for key, value := range assets.Files {
				files[key] = value
			}
			for key, value := range variant.Assets.Files {
				files[key] = value
			}
			assets.Files = files
		}
	}

	if len(tokens) > 0 {
		cfg.Tokens = tokens
		cfg.CSSVars = make(map[string]string, len(tokens))
		for key, value := range tokens {
			cfg.CSSVars["--"+key] = value
		}
	}

	if len(assets.Files) > 0 {
		prefix := strings.TrimRight(assets.Prefix, "/")
		files := assets.Files
		cfg.AssetURL = func(assetName string) string {
			file, ok := files[assetName]
			if !ok {
				return ""
			}
			if prefix == "" {
				return file
			}
			return prefix + "/" + file
		}
	}

	return cfg
}
