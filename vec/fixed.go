package vec

import (
	"unsafe"

	"github.com/histdb/unchecked"
)

// Fixed is a buffer of V whose storage is set once, at construction, and
// never grows. Checked appends report false instead of growing. It
// implements unchecked.Vec[V] through a pointer.
type Fixed[V any] struct {
	_ [0]func() // no equality

	buf []V // len(buf) is the capacity
	n   int
}

// NewFixed returns an empty buffer with storage for capacity elements.
func NewFixed[V any](capacity int) *Fixed[V] {
	return &Fixed[V]{buf: make([]V, capacity)}
}

// FixedOf returns an empty buffer using the full capacity of storage, which
// may be an array owned by the caller:
//
//	var arr [64]byte
//	f := vec.FixedOf(arr[:])
func FixedOf[V any](storage []V) *Fixed[V] {
	return &Fixed[V]{buf: storage[:cap(storage)]}
}

func (f *Fixed[V]) Len() int       { return f.n }
func (f *Fixed[V]) Cap() int       { return len(f.buf) }
func (f *Fixed[V]) ReadPtr() *V    { return unsafe.SliceData(f.buf) }
func (f *Fixed[V]) WritePtr() *V   { return unsafe.SliceData(f.buf) }
func (f *Fixed[V]) SetLen(n int)   { f.n = n }
func (f *Fixed[V]) Remaining() int { return len(f.buf) - f.n }

// Slice returns the valid elements. Its capacity is clipped so appending to
// it never writes into the buffer's storage.
func (f *Fixed[V]) Slice() []V { return f.buf[:f.n:f.n] }

func (f *Fixed[V]) Push(v V) bool {
	if f.n >= len(f.buf) {
		return false
	}
	f.buf[f.n] = v
	f.n++
	return true
}

// Append appends all of vs or, if they do not fit, none of them.
func (f *Fixed[V]) Append(vs ...V) bool {
	if len(vs) > f.Remaining() {
		return false
	}
	f.n += copy(f.buf[f.n:], vs)
	return true
}

// ExtendFromWithin appends a copy of the elements r selects if they fit. It
// panics if r is not valid for the current length.
func (f *Fixed[V]) ExtendFromWithin(r unchecked.Range) bool {
	start, end, err := r.Check(f.n)
	if err != nil {
		panic(err)
	}
	if end-start > f.Remaining() {
		return false
	}
	f.n += copy(f.buf[f.n:], f.buf[start:end])
	return true
}

// Truncate shortens the buffer to n elements and zeroes the dropped ones.
// It does nothing if n is not less than the length.
func (f *Fixed[V]) Truncate(n int) {
	if n < f.n {
		clear(f.buf[n:f.n])
		f.n = n
	}
}

func (f *Fixed[V]) Reset() { f.Truncate(0) }

// PutString appends the bytes of s to a fixed byte buffer if they fit.
func PutString(f *Fixed[byte], s string) bool {
	if len(s) > f.Remaining() {
		return false
	}
	f.n += copy(f.buf[f.n:], s)
	return true
}
