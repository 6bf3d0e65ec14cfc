// Package html wraps an interpolated greeting in a small markup snippet
// suitable for embedding in a page. Caller-influenced strings pass through a
// bluemonday policy before they reach the template, so a name like
// "<script>x</script> Smith" can never inject markup.
package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-greet/pkg/render"
	rendertemplate "github.com/goliatone/go-greet/pkg/render/template"
	"github.com/goliatone/go-greet/pkg/render/template/gotemplate"
)

const greetingTemplate = "templates/greeting.tmpl"

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPolicy overrides the sanitation policy applied to caller-influenced
// strings before template injection.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer implements render.Renderer for HTML output.
type Renderer struct {
	templates rendertemplate.TemplateRenderer
	policy    *bluemonday.Policy
}

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		policy:     bluemonday.StrictPolicy(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, policy: cfg.policy}, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "html"
}

// ContentType reports the output media type.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render wraps the greeting message in the configured markup template.
func (r *Renderer) Render(_ context.Context, g render.Greeting, opts render.Options) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if len(g.Message) == 0 {
		return nil, nil
	}

	data := map[string]any{
		"message": r.sanitize(string(g.Message)),
		"locale":  r.sanitize(g.Locale),
	}
	if g.FullName != nil {
		data["full_name"] = r.sanitize(g.FullName.String())
	}
	if g.FirstName != nil {
		data["first_name"] = r.sanitize(g.FirstName.String())
	}
	if theme := opts.Theme; theme != nil {
		data["theme"] = theme.Theme
		data["theme_variant"] = theme.Variant
		data["tokens"] = theme.Tokens
		data["css_vars"] = theme.CSSVars
		if theme.AssetURL != nil {
			data["stylesheet"] = theme.AssetURL("html.stylesheet")
		}
	}

	result, err := r.templates.RenderTemplate(greetingTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

func (r *Renderer) sanitize(s string) string {
	if r.policy == nil {
		return s
	}
	return strings.TrimSpace(r.policy.Sanitize(s))
}
