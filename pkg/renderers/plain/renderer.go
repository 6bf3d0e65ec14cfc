// Package plain emits the interpolated greeting exactly as the directive
// renderer produced it. It is the presentation used by the CLI's standard
// output path.
package plain

import (
	"context"

	"github.com/goliatone/go-greet/pkg/render"
)

// Renderer implements render.Renderer for plain text output.
type Renderer struct{}

// New constructs the plain renderer.
func New() *Renderer {
	return &Renderer{}
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "plain"
}

// ContentType reports the output media type.
func (r *Renderer) ContentType() string {
	return "text/plain; charset=utf-8"
}

// Render returns the greeting message unchanged.
func (r *Renderer) Render(_ context.Context, g render.Greeting, _ render.Options) ([]byte, error) {
	if len(g.Message) == 0 {
		return nil, nil
	}
	out := make([]byte, len(g.Message))
	copy(out, g.Message)
	return out, nil
}
