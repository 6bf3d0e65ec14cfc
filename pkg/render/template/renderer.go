// Package template defines the seam between markup renderers and the
// underlying template engine, mirroring the github.com/goliatone/go-template
// contract so engines stay swappable in tests.
package template

import "io"

// TemplateRenderer renders named or inline templates. Implementations must be
// safe for concurrent use.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
}
