package text

import (
	"unicode/utf8"

	"github.com/histdb/unchecked"
	"github.com/histdb/unchecked/vec"
)

// Fixed is a text buffer whose storage is set once and never grows. Checked
// pushes report false instead of growing. It implements unchecked.Text
// through a pointer.
type Fixed struct {
	v *vec.Fixed[byte]
}

// NewFixed returns an empty buffer with storage for capacity bytes.
func NewFixed(capacity int) *Fixed {
	return &Fixed{v: vec.NewFixed[byte](capacity)}
}

// FixedOf returns an empty buffer using the full capacity of storage.
func FixedOf(storage []byte) *Fixed {
	return &Fixed{v: vec.FixedOf(storage)}
}

func (f *Fixed) Len() int                 { return f.v.Len() }
func (f *Fixed) Cap() int                 { return f.v.Cap() }
func (f *Fixed) Vec() unchecked.Vec[byte] { return f.v }
func (f *Fixed) Bytes() []byte            { return f.v.Slice() }
func (f *Fixed) String() string           { return string(f.v.Slice()) }

// PushRune appends r if its encoding fits.
func (f *Fixed) PushRune(r rune) bool {
	var tmp [utf8.UTFMax]byte
	return f.v.Append(utf8.AppendRune(tmp[:0], r)...)
}

// PushString appends s if it fits.
func (f *Fixed) PushString(s string) bool { return vec.PutString(f.v, s) }

// Truncate shortens the buffer to n bytes. It panics if n does not fall on
// a rune boundary, and does nothing if n is not less than the length.
func (f *Fixed) Truncate(n int) {
	if n < f.Len() {
		mustBoundary(f.v.Slice(), n)
		f.v.Truncate(n)
	}
}

func (f *Fixed) Reset() { f.v.Reset() }
