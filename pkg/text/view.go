package text

// View is a non-owning window over a byte range with an explicit length. It
// never mutates or extends the bytes it references; callers that need the
// data to outlive the backing storage should copy via Bytes or String.
type View struct {
	data []byte
}

// NewView wraps b without copying. The caller must not mutate b while the
// view is in use.
func NewView(b []byte) View {
	return View{data: b}
}

// ViewOf returns a view over the bytes of s.
func ViewOf(s string) View {
	return View{data: []byte(s)}
}

// Len returns the explicit length carried by the view.
func (v View) Len() int {
	return len(v.data)
}

// At returns the byte at offset i.
func (v View) At(i int) byte {
	return v.data[i]
}

// Slice returns a view over [i, j) sharing the same backing storage.
func (v View) Slice(i, j int) Text {
	return View{data: v.data[i:j]}
}

// Bytes returns a copy of the viewed bytes, keeping the underlying region
// immutable from the caller's perspective.
func (v View) Bytes() []byte {
	c := make([]byte, len(v.data))
	copy(c, v.data)
	return c
}

// String returns the viewed bytes as a string.
func (v View) String() string {
	return string(v.data)
}
