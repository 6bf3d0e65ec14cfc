package greet

import (
	"context"
	"io"

	"github.com/goliatone/go-greet/pkg/directive"
	"github.com/goliatone/go-greet/pkg/locale"
	"github.com/goliatone/go-greet/pkg/name"
	"github.com/goliatone/go-greet/pkg/orchestrator"
	"github.com/goliatone/go-greet/pkg/render"
	"github.com/goliatone/go-greet/pkg/text"
)

// Request describes a single greeting; alias exported via the root package
// for convenience.
type Request = orchestrator.Request

// Option configures a Greeter.
type Option = orchestrator.Option

// RenderOptions carries per-request presentation data for custom renderers.
type RenderOptions = render.Options

// NewGreeter exposes the pipeline constructor from the top-level module.
func NewGreeter(options ...Option) *orchestrator.Greeter {
	return orchestrator.New(options...)
}

// Greet builds a one-shot Greeter and renders a single greeting. It is the
// simplest entry point for callers that just want bytes back.
func Greet(ctx context.Context, req Request, options ...Option) ([]byte, error) {
	return orchestrator.New(options...).Greet(ctx, req)
}

// SayHello interpolates fullName's first-name fragment into the localised
// directive template and writes the result to w. Empty inputs are a silent
// skip: nothing is written and no error is returned. This is the direct
// analog of the classic two-call demo entry point.
func SayHello(w io.Writer, localised, fullName string) error {
	if localised == "" || fullName == "" {
		return nil
	}

	tmpl, err := directive.Parse(localised)
	if err != nil {
		return err
	}

	full := text.ViewOf(fullName)
	fragment := name.Split(full)

	args := make([]directive.Arg, 0, 2)
	if tmpl.Placeholders() >= 1 {
		args = append(args, directive.ArgOf(fragment))
	}
	if tmpl.Placeholders() >= 2 {
		args = append(args, directive.ArgOf(full))
	}
	return tmpl.Render(w, args...)
}

// WithTranslator forwards the catalog option so callers can pass it to Greet
// alongside other options.
func WithTranslator(t locale.Translator) Option {
	return orchestrator.WithTranslator(t)
}

// WithDefaultRenderer forwards the default renderer option.
func WithDefaultRenderer(rendererName string) Option {
	return orchestrator.WithDefaultRenderer(rendererName)
}
