package text

import "testing"

func TestViewSliceSharesBacking(t *testing.T) {
	backing := []byte("Eleanor Rigby")
	v := NewView(backing)

	sub, ok := v.Slice(0, 7).(View)
	if !ok {
		t.Fatalf("expected View from View.Slice, got %T", v.Slice(0, 7))
	}
	if sub.String() != "Eleanor" {
		t.Fatalf("unexpected slice contents: %q", sub.String())
	}

	backing[0] = 'X'
	if sub.String() != "Xleanor" {
		t.Fatalf("expected slice to share backing storage, got %q", sub.String())
	}
}

func TestViewBytesCopies(t *testing.T) {
	backing := []byte("Tom")
	v := NewView(backing)

	got := v.Bytes()
	got[0] = 'X'
	if v.String() != "Tom" {
		t.Fatalf("Bytes must copy; view mutated to %q", v.String())
	}
}

func TestCStringLenStopsAtTerminator(t *testing.T) {
	c := CStringFromBytes([]byte("Eleanor\x00Rigby\x00"))
	if got := c.Len(); got != 7 {
		t.Fatalf("Len = %d, want 7", got)
	}
	if got := c.String(); got != "Eleanor" {
		t.Fatalf("String = %q, want %q", got, "Eleanor")
	}
}

func TestCStringFromBytesAddsMissingTerminator(t *testing.T) {
	raw := []byte("Tom")
	c := CStringFromBytes(raw)
	if got := c.Len(); got != 3 {
		t.Fatalf("Len = %d, want 3", got)
	}
	// The wrapped copy must carry its own terminator so Len never scans past
	// the backing slice.
	raw[0] = 'X'
	if got := c.String(); got != "Tom" {
		t.Fatalf("expected terminated copy, got %q", got)
	}
}

func TestCStringSliceReturnsView(t *testing.T) {
	c := NewCString("Eleanor Rigby")
	sub := c.Slice(0, 7)
	if _, ok := sub.(View); !ok {
		t.Fatalf("expected View from CString.Slice, got %T", sub)
	}
	if sub.Len() != 7 || sub.String() != "Eleanor" {
		t.Fatalf("unexpected slice: len=%d contents=%q", sub.Len(), sub.String())
	}
}

func TestCStringEmpty(t *testing.T) {
	c := NewCString("")
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
	if !IsEmpty(c) {
		t.Fatalf("expected empty CString to report IsEmpty")
	}
}

func TestBufferSliceOwnsCopy(t *testing.T) {
	b := NewBuffer("Amanda Hugginkiss")
	sub := b.Slice(0, 6)
	if sub.String() != "Amanda" {
		t.Fatalf("unexpected slice contents: %q", sub.String())
	}

	b.Reset()
	b.AppendString("overwritten")
	if sub.String() != "Amanda" {
		t.Fatalf("Buffer.Slice must own its copy, got %q", sub.String())
	}
}

func TestBufferAppendTracksLength(t *testing.T) {
	b := NewBuffer("")
	b.AppendString("Eleanor")
	b.Append([]byte(" Rigby"))
	if b.Len() != 13 {
		t.Fatalf("Len = %d, want 13", b.Len())
	}
	if b.String() != "Eleanor Rigby" {
		t.Fatalf("String = %q", b.String())
	}
	b.Grow(64)
	if b.String() != "Eleanor Rigby" {
		t.Fatalf("Grow must not change contents, got %q", b.String())
	}
}

func TestEqualAcrossRepresentations(t *testing.T) {
	a := NewCString("Eleanor")
	b := NewBuffer("Eleanor")
	c := ViewOf("Eleanor")

	if !Equal(a, b) || !Equal(b, c) || !Equal(a, c) {
		t.Fatalf("expected all representations of %q to compare equal", "Eleanor")
	}
	if Equal(a, ViewOf("Eleanor ")) {
		t.Fatalf("texts of different lengths must not compare equal")
	}
	if !Equal(nil, ViewOf("")) {
		t.Fatalf("nil and empty must compare equal")
	}
}

func TestAppendTo(t *testing.T) {
	out := AppendTo([]byte("Hello "), ViewOf("Tom"))
	if string(out) != "Hello Tom" {
		t.Fatalf("AppendTo = %q", out)
	}
	if got := AppendTo(nil, nil); len(got) != 0 {
		t.Fatalf("AppendTo(nil, nil) = %q, want empty", got)
	}
}
