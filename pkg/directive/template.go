// Package directive implements the length-prefixed substring template used by
// the greeting pipeline. A template mixes literal bytes with %.*s
// placeholders; each placeholder consumes one (length, text) argument pair
// and emits exactly length bytes from the start of the text, independent of
// the text's own extent. %% emits a literal percent sign; any other %
// sequence is rejected at parse time.
//
// The argument contract is validated on every render: the pair count must
// match the placeholder count, lengths must be non-negative, and a length may
// never exceed the paired text's authoritative length. The printf heritage of
// the directive made all three silent out-of-bounds reads; here they are
// errors.
package directive

import (
	"fmt"
	"io"
	"strings"

	"github.com/goliatone/go-greet/pkg/text"
)

const placeholderVerb = "%.*s"

// segment is either a run of literal bytes or a single placeholder.
type segment struct {
	literal     string
	placeholder bool
}

// Template is a parsed, immutable directive template.
type Template struct {
	source       string
	segments     []segment
	placeholders int
}

// Arg pairs an emission length with its source text. Length governs exactly
// how many leading bytes of Source are emitted, allowing a prefix shorter
// than the full backing text.
type Arg struct {
	Length int
	Source text.Text
}

// ArgOf builds an Arg covering all of t.
func ArgOf(t text.Text) Arg {
	if t == nil {
		return Arg{}
	}
	return Arg{Length: t.Len(), Source: t}
}

// Parse compiles s into a Template. The empty string parses to an empty
// template that renders nothing.
func Parse(s string) (*Template, error) {
	t := &Template{source: s}

	var lit strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if c != '%' {
			lit.WriteByte(c)
			i++
			continue
		}
		switch {
		case strings.HasPrefix(s[i:], placeholderVerb):
			if lit.Len() > 0 {
				t.segments = append(t.segments, segment{literal: lit.String()})
				lit.Reset()
			}
			t.segments = append(t.segments, segment{placeholder: true})
			t.placeholders++
			i += len(placeholderVerb)
		case strings.HasPrefix(s[i:], "%%"):
			lit.WriteByte('%')
			i += 2
		default:
			return nil, fmt.Errorf("%w at offset %d in %q", ErrBadVerb, i, s)
		}
	}
	if lit.Len() > 0 {
		t.segments = append(t.segments, segment{literal: lit.String()})
	}
	return t, nil
}

// MustParse is Parse for templates known to be well-formed; it panics on
// error. Useful for init-time constants.
func MustParse(s string) *Template {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Source returns the original template string.
func (t *Template) Source() string {
	return t.source
}

// Placeholders reports how many (length, text) pairs Render consumes.
func (t *Template) Placeholders() int {
	return t.placeholders
}

// Render validates args against the template and writes the interpolated
// output to w. Validation happens before any byte is written, so a failed
// render never emits partial output.
func (t *Template) Render(w io.Writer, args ...Arg) error {
	out, err := t.Append(nil, args...)
	if err != nil {
		return err
	}
	if len(out) == 0 {
		return nil
	}
	_, err = w.Write(out)
	return err
}

// Append renders into dst and returns the extended slice.
func (t *Template) Append(dst []byte, args ...Arg) ([]byte, error) {
	if err := t.validate(args); err != nil {
		return dst, err
	}

	next := 0
	for _, seg := range t.segments {
		if !seg.placeholder {
			dst = append(dst, seg.literal...)
			continue
		}
		arg := args[next]
		next++
		if arg.Source == nil {
			continue // Length is zero; nothing to emit
		}
		dst = text.AppendTo(dst, arg.Source.Slice(0, arg.Length))
	}
	return dst, nil
}

func (t *Template) validate(args []Arg) error {
	if len(args) != t.placeholders {
		return fmt.Errorf("%w: template expects %d, got %d", ErrArgumentCount, t.placeholders, len(args))
	}
	for i, arg := range args {
		if arg.Length < 0 {
			return fmt.Errorf("%w: argument %d has length %d", ErrNegativeLength, i, arg.Length)
		}
		backing := 0
		if arg.Source != nil {
			backing = arg.Source.Len()
		}
		if arg.Length > backing {
			return fmt.Errorf("%w: argument %d wants %d of %d bytes", ErrLengthExceedsBacking, i, arg.Length, backing)
		}
	}
	return nil
}
