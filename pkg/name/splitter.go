// Package name extracts the leading fragment of a personal name: the bytes
// preceding the first ASCII space, or the whole name when no space exists.
// The scan is bounded by each representation's own length accounting, so a
// null-terminated input can never be read past its terminator.
package name

import "github.com/goliatone/go-greet/pkg/text"

const space = 0x20

// Split returns the first-name fragment of input. Empty or nil input yields
// an empty fragment. The result's ownership follows the representation's
// Slice rule: views and C strings hand out non-owning views, buffers hand out
// independent copies.
func Split(input text.Text) text.Text {
	return SplitByte(input, space)
}

// SplitByte is Split generalised over the delimiter byte. The fragment is the
// prefix before the first occurrence of delim, exclusive, or the entire input
// when delim is absent.
func SplitByte(input text.Text, delim byte) text.Text {
	if input == nil {
		return text.NewView(nil)
	}
	n := input.Len()
	for i := 0; i < n; i++ {
		if input.At(i) == delim {
			return input.Slice(0, i)
		}
	}
	return input
}
