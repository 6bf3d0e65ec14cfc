package text

// CString wraps a null-terminated byte buffer. The terminator is part of the
// backing storage but never part of the logical contents: Len scans for it,
// which is the only valid way to derive a length from this representation.
type CString struct {
	buf []byte
}

// NewCString copies s into a fresh buffer and appends the terminator.
func NewCString(s string) CString {
	buf := make([]byte, 0, len(s)+1)
	buf = append(buf, s...)
	buf = append(buf, 0)
	return CString{buf: buf}
}

// CStringFromBytes wraps b, which must already carry a NUL terminator
// somewhere; if it does not, a terminated copy is made so Len can never scan
// past the backing storage.
func CStringFromBytes(b []byte) CString {
	for _, c := range b {
		if c == 0 {
			return CString{buf: b}
		}
	}
	buf := make([]byte, 0, len(b)+1)
	buf = append(buf, b...)
	buf = append(buf, 0)
	return CString{buf: buf}
}

// Len scans to the terminating byte. The scan is bounded by the backing
// slice, so a malformed buffer can never produce a length beyond it.
func (c CString) Len() int {
	for i, b := range c.buf {
		if b == 0 {
			return i
		}
	}
	return len(c.buf)
}

// At returns the byte at offset i. Offsets at or past the terminator panic.
func (c CString) At(i int) byte {
	if i >= c.Len() {
		panic("text: CString index out of range")
	}
	return c.buf[i]
}

// Slice returns a non-owning View over [i, j). A prefix of a null-terminated
// buffer cannot remain null-terminated without copying, so sub-ranges are
// handed out as views carrying their explicit length.
func (c CString) Slice(i, j int) Text {
	n := c.Len()
	if i < 0 || j > n || i > j {
		panic("text: CString slice bounds out of range")
	}
	return View{data: c.buf[i:j]}
}

// String returns the contents up to the terminator.
func (c CString) String() string {
	return string(c.buf[:c.Len()])
}
