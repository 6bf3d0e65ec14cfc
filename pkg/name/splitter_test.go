package name

import (
	"testing"

	"github.com/goliatone/go-greet/pkg/text"
)

func representations(s string) map[string]text.Text {
	return map[string]text.Text{
		"cstring": text.NewCString(s),
		"buffer":  text.NewBuffer(s),
		"view":    text.ViewOf(s),
	}
}

func TestSplitFirstSpace(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Eleanor Rigby", "Eleanor"},
		{"Amanda Hugginkiss", "Amanda"},
		{"Tom", "Tom"},
		{"Jean Michel Jarre", "Jean"},
		{" Leading", ""},
		{"Trailing ", "Trailing"},
		{"", ""},
	}

	for _, tc := range cases {
		for repr, input := range representations(tc.input) {
			got := Split(input)
			if got.String() != tc.want {
				t.Fatalf("Split(%q) [%s] = %q, want %q", tc.input, repr, got.String(), tc.want)
			}
			if got.Len() != len(tc.want) {
				t.Fatalf("Split(%q) [%s] length = %d, want %d", tc.input, repr, got.Len(), len(tc.want))
			}
		}
	}
}

func TestSplitNoSpaceReturnsInput(t *testing.T) {
	input := text.ViewOf("Tom")
	got := Split(input)
	if !text.Equal(got, input) {
		t.Fatalf("Split without delimiter must return the whole input, got %q", got.String())
	}
	if got.Len() != input.Len() {
		t.Fatalf("length mismatch: got %d, want %d", got.Len(), input.Len())
	}
}

func TestSplitNilInput(t *testing.T) {
	got := Split(nil)
	if !text.IsEmpty(got) {
		t.Fatalf("Split(nil) must yield an empty fragment, got %q", got.String())
	}
}

func TestSplitCStringStopsAtTerminator(t *testing.T) {
	// The space after the terminator must be invisible to the scan.
	c := text.CStringFromBytes([]byte("Tom\x00and Jerry\x00"))
	got := Split(c)
	if got.String() != "Tom" {
		t.Fatalf("Split = %q, want %q", got.String(), "Tom")
	}
}

func TestSplitByte(t *testing.T) {
	got := SplitByte(text.ViewOf("eleanor.rigby@example.com"), '@')
	if got.String() != "eleanor.rigby" {
		t.Fatalf("SplitByte = %q", got.String())
	}
}

func TestSplitRepresentationTransparency(t *testing.T) {
	const full = "Amanda Hugginkiss"
	var fragments []text.Text
	for _, input := range representations(full) {
		fragments = append(fragments, Split(input))
	}
	for i := 1; i < len(fragments); i++ {
		if !text.Equal(fragments[0], fragments[i]) {
			t.Fatalf("fragments diverge across representations: %q vs %q",
				fragments[0].String(), fragments[i].String())
		}
	}
}
