package text

// Text is the capability surface shared by every representation: a readable
// byte sequence with an authoritative length. Implementations differ in how
// the length is established (scanned, tracked, or carried explicitly) and in
// whether sub-ranges share or copy backing storage; each representation
// documents its Slice ownership rule.
type Text interface {
	// Len reports the representation's authoritative byte length. For
	// null-terminated buffers this is the distance to the terminator.
	Len() int

	// At returns the byte at offset i. Out-of-range offsets panic, matching
	// slice indexing semantics.
	At(i int) byte

	// Slice returns the sub-range [i, j). Whether the result shares or owns
	// its backing storage depends on the representation.
	Slice(i, j int) Text

	// String returns the contents as a Go string, copying them out of the
	// backing storage.
	String() string
}

// IsEmpty reports whether t is nil or has zero length.
func IsEmpty(t Text) bool {
	return t == nil || t.Len() == 0
}

// Equal reports whether a and b hold the same bytes. Nil arguments compare
// equal to empty texts.
func Equal(a, b Text) bool {
	la, lb := 0, 0
	if a != nil {
		la = a.Len()
	}
	if b != nil {
		lb = b.Len()
	}
	if la != lb {
		return false
	}
	for i := 0; i < la; i++ {
		if a.At(i) != b.At(i) {
			return false
		}
	}
	return true
}

// AppendTo appends t's contents to dst and returns the extended slice.
func AppendTo(dst []byte, t Text) []byte {
	if t == nil {
		return dst
	}
	n := t.Len()
	for i := 0; i < n; i++ {
		dst = append(dst, t.At(i))
	}
	return dst
}
