// Package text provides UTF-8 text buffers over the buffers in package vec.
// The bytes of a buffer are valid UTF-8 after every operation.
package text

import (
	"unicode/utf8"

	"github.com/zeebo/xxh3"

	"github.com/histdb/unchecked"
	"github.com/histdb/unchecked/vec"
)

// T is a growable text buffer. It implements unchecked.Text through a
// pointer.
type T struct {
	v vec.T[byte]
}

// New returns an empty buffer with room for capacity bytes.
func New(capacity int) *T {
	t := new(T)
	t.v.Reserve(capacity)
	return t
}

// Of returns a buffer holding a copy of s.
func Of(s string) *T {
	t := New(len(s))
	t.PushString(s)
	return t
}

func (t *T) Len() int                 { return t.v.Len() }
func (t *T) Cap() int                 { return t.v.Cap() }
func (t *T) Vec() unchecked.Vec[byte] { return &t.v }
func (t *T) Bytes() []byte            { return t.v.Slice() }
func (t *T) String() string           { return string(t.v.Slice()) }
func (t *T) Digest() uint64           { return xxh3.Hash(t.v.Slice()) }

// Reserve makes room for at least n more bytes.
func (t *T) Reserve(n int) { t.v.Reserve(n) }

func (t *T) PushRune(r rune) {
	var tmp [utf8.UTFMax]byte
	t.v.Append(utf8.AppendRune(tmp[:0], r)...)
}

func (t *T) PushString(s string) { vec.AppendString(&t.v, s) }

func (t *T) WriteRune(r rune) (int, error) {
	n := t.Len()
	t.PushRune(r)
	return t.Len() - n, nil
}

func (t *T) WriteString(s string) (int, error) {
	t.PushString(s)
	return len(s), nil
}

// Truncate shortens the buffer to n bytes. It panics if n does not fall on
// a rune boundary, and does nothing if n is not less than the length.
func (t *T) Truncate(n int) {
	if n < t.Len() {
		mustBoundary(t.v.Slice(), n)
		t.v.Truncate(n)
	}
}

func (t *T) Reset() { t.v.Reset() }

// Take returns the contents as a string without copying and leaves the
// buffer empty without its storage.
func (t *T) Take() string {
	b := vec.Take(&t.v)
	return unsafeString(b)
}
