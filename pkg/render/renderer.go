package render

import (
	"context"

	"github.com/goliatone/go-greet/pkg/text"
)

// Greeting is the model handed to presentation renderers. Message already
// carries the directive-interpolated output; renderers only decide how it is
// presented (raw bytes, markup, ...), never how names are truncated.
type Greeting struct {
	// Locale and Key identify the catalog entry the template came from. Both
	// are empty when the caller supplied an explicit template.
	Locale string
	Key    string

	// Template is the raw directive template the message was rendered from.
	Template string

	// FullName is the caller-supplied name, FirstName the splitter's fragment.
	FullName  text.Text
	FirstName text.Text

	// Message is the interpolated greeting.
	Message []byte
}

// Renderer turns a Greeting into presentation bytes.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, g Greeting, opts Options) ([]byte, error)
}
