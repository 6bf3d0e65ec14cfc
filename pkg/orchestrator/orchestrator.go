package orchestrator

import (
	"context"
	"errors"
	"fmt"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-greet/pkg/directive"
	"github.com/goliatone/go-greet/pkg/locale"
	"github.com/goliatone/go-greet/pkg/name"
	"github.com/goliatone/go-greet/pkg/render"
	"github.com/goliatone/go-greet/pkg/renderers/html"
	"github.com/goliatone/go-greet/pkg/renderers/plain"
	"github.com/goliatone/go-greet/pkg/text"
)

const defaultRendererName = "plain"

// Option customises the greeter configuration.
type Option func(*Greeter)

// WithTranslator injects the template source consulted for locale/key
// lookups. Defaults to the builtin catalog.
func WithTranslator(t locale.Translator) Option {
	return func(g *Greeter) {
		g.translator = t
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Greeter) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(rendererName string) Option {
	return func(g *Greeter) {
		g.defaultRenderer = rendererName
	}
}

// WithMissingTranslationHandler decides the template used when a catalog
// lookup fails. Returning "" keeps the default behaviour: the lookup error is
// surfaced to the caller.
func WithMissingTranslationHandler(h locale.MissingTranslationHandler) Option {
	return func(g *Greeter) {
		g.onMissing = h
	}
}

// WithThemeSelector registers a go-theme selector consulted when a request
// names a theme; the resolved tokens are passed to markup renderers.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(g *Greeter) {
		g.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme/variant used when a request enables theming
// without naming one.
func WithDefaultTheme(themeName, variant string) Option {
	return func(g *Greeter) {
		g.defaultTheme = themeName
		g.defaultVariant = variant
	}
}

// Greeter runs the full pipeline from a name and a locale key to rendered
// presentation bytes.
type Greeter struct {
	translator      locale.Translator
	registry        *render.Registry
	defaultRenderer string
	onMissing       locale.MissingTranslationHandler
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	initialiseErr   error
}

// New constructs a Greeter applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Greeter {
	g := &Greeter{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

func (g *Greeter) applyDefaults() {
	if g.translator == nil {
		g.translator = locale.Builtin()
	}
	if g.registry == nil {
		g.registry = render.NewRegistry()
	}
	if !g.registry.Has("plain") {
		if err := g.registry.Register(plain.New()); err != nil {
			g.initialiseErr = fmt.Errorf("orchestrator: register plain renderer: %w", err)
			return
		}
	}
	if !g.registry.Has("html") {
		renderer, err := html.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("orchestrator: configure html renderer: %w", err)
			return
		}
		if err := g.registry.Register(renderer); err != nil {
			g.initialiseErr = fmt.Errorf("orchestrator: register html renderer: %w", err)
		}
	}
}

// Request describes the inputs required to render a greeting.
type Request struct {
	// Locale and Key select a template from the translator. Ignored when
	// Template is set.
	Locale string
	Key    string

	// Template supplies an explicit directive template, bypassing the
	// catalog. This is the path the original two-call demo uses.
	Template string

	// FullName is the name to greet. Any text representation works; the
	// fragment's ownership follows the representation's slicing rule.
	FullName text.Text

	// Renderer names the presentation renderer. If empty, the greeter falls
	// back to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme when a selector is
	// configured.
	ThemeName    string
	ThemeVariant string
}

// Greet resolves the template, splits the name, interpolates the directive
// placeholders, and hands the greeting to the requested renderer.
//
// Empty-input policy: an empty template or an empty name is a silent skip;
// Greet returns (nil, nil) and nothing is rendered. Structural misuse
// (placeholder arity above two, lengths out of bounds) is an error.
func (g *Greeter) Greet(ctx context.Context, req Request) ([]byte, error) {
	if g.initialiseErr != nil {
		return nil, g.initialiseErr
	}

	template, err := g.resolveTemplate(req)
	if err != nil {
		return nil, err
	}
	if template == "" || text.IsEmpty(req.FullName) {
		return nil, nil
	}

	tmpl, err := directive.Parse(template)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: parse template: %w", err)
	}

	fragment := name.Split(req.FullName)

	args, err := buildArgs(tmpl, fragment, req.FullName)
	if err != nil {
		return nil, err
	}

	message, err := tmpl.Append(nil, args...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: interpolate template: %w", err)
	}

	greeting := render.Greeting{
		Locale:    req.Locale,
		Key:       req.Key,
		Template:  template,
		FullName:  req.FullName,
		FirstName: fragment,
		Message:   message,
	}
	if req.Template != "" {
		greeting.Locale = ""
		greeting.Key = ""
	}

	rendererName := req.Renderer
	if rendererName == "" {
		rendererName = g.defaultRenderer
	}
	renderer, err := g.registry.Get(rendererName)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: resolve renderer: %w", err)
	}

	opts, err := g.renderOptions(req)
	if err != nil {
		return nil, err
	}
	return renderer.Render(ctx, greeting, opts)
}

func (g *Greeter) resolveTemplate(req Request) (string, error) {
	if req.Template != "" {
		return req.Template, nil
	}
	if req.Locale == "" && req.Key == "" {
		return "", nil
	}
	if g.translator == nil {
		return "", errors.New("orchestrator: no translator configured")
	}

	template, err := g.translator.Translate(req.Locale, req.Key)
	if err != nil {
		if g.onMissing != nil {
			if fallback := g.onMissing(req.Locale, req.Key, err); fallback != "" {
				return fallback, nil
			}
		}
		return "", fmt.Errorf("orchestrator: resolve template: %w", err)
	}
	return template, nil
}

// buildArgs pairs template placeholders with representation-verified lengths:
// the first placeholder receives the first-name fragment, the second the full
// name. Arities the pipeline cannot satisfy surface as an argument count
// error from the directive renderer.
func buildArgs(tmpl *directive.Template, fragment, full text.Text) ([]directive.Arg, error) {
	available := []directive.Arg{
		directive.ArgOf(fragment),
		directive.ArgOf(full),
	}
	n := tmpl.Placeholders()
	if n > len(available) {
		return nil, fmt.Errorf("%w: template expects %d, pipeline supplies at most %d",
			directive.ErrArgumentCount, n, len(available))
	}
	return available[:n], nil
}

func (g *Greeter) renderOptions(req Request) (render.Options, error) {
	opts := render.Options{}
	if g.themeSelector == nil {
		return opts, nil
	}

	themeName := req.ThemeName
	if themeName == "" {
		themeName = g.defaultTheme
	}
	if themeName == "" {
		return opts, nil
	}
	variant := req.ThemeVariant
	if variant == "" {
		variant = g.defaultVariant
	}

	selection, err := g.themeSelector.Select(themeName, variant)
	if err != nil {
		return opts, fmt.Errorf("orchestrator: select theme %q: %w", themeName, err)
	}
	opts.Theme = themeConfig(selection)
	return opts, nil
}
