package render

// Options carries per-request presentation data. The plain renderer ignores
// it; markup renderers use the resolved theme when one is configured.
type Options struct {
	Theme *ThemeConfig
}

// ThemeConfig is the resolved slice of a go-theme selection that renderers
// consume: flat token values, derived CSS custom properties, and an asset URL
// resolver. Nil fields mean the theme does not provide that concern.
type ThemeConfig struct {
	Theme   string
	Variant string
	Tokens  map[string]string
	CSSVars map[string]string

	// AssetURL resolves a logical asset name (e.g. "html.stylesheet") to a
	// servable URL. Nil when the theme declares no assets.
	AssetURL func(name string) string
}
