package text

// Buffer is an owning, growable byte buffer that tracks its own length. It
// is the representation to use when a fragment must outlive the storage it
// was derived from: Slice always returns an independently-owned copy.
type Buffer struct {
	data []byte
}

// NewBuffer returns a buffer seeded with a copy of s.
func NewBuffer(s string) *Buffer {
	b := &Buffer{data: make([]byte, 0, len(s))}
	b.data = append(b.data, s...)
	return b
}

// Len returns the tracked length.
func (b *Buffer) Len() int {
	return len(b.data)
}

// At returns the byte at offset i.
func (b *Buffer) At(i int) byte {
	return b.data[i]
}

// Slice returns an independently-owned copy of [i, j). Mutating the source
// buffer afterwards does not affect the returned text.
func (b *Buffer) Slice(i, j int) Text {
	out := &Buffer{data: make([]byte, j-i)}
	copy(out.data, b.data[i:j])
	return out
}

// Append appends raw bytes.
func (b *Buffer) Append(p []byte) {
	b.data = append(b.data, p...)
}

// AppendString appends the bytes of s.
func (b *Buffer) AppendString(s string) {
	b.data = append(b.data, s...)
}

// Reset truncates the buffer to zero length, retaining capacity.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}

// Grow ensures capacity for at least n additional bytes.
func (b *Buffer) Grow(n int) {
	if cap(b.data)-len(b.data) >= n {
		return
	}
	grown := make([]byte, len(b.data), len(b.data)+n)
	copy(grown, b.data)
	b.data = grown
}

// String returns a copy of the contents.
func (b *Buffer) String() string {
	return string(b.data)
}
