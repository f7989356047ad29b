// Package vec provides the concrete element buffers the unchecked operations
// run over: T grows on demand, Fixed never grows.
package vec

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/histdb/unchecked"
	"github.com/histdb/unchecked/sizeof"
)

// T is a growable buffer of V backed by a slice. It implements
// unchecked.Vec[V] through a pointer.
type T[V any] struct {
	s []V
}

// New returns an empty buffer with room for capacity elements.
func New[V any](capacity int) *T[V] {
	return &T[V]{s: make([]V, 0, capacity)}
}

// Of returns a buffer holding vs. The buffer takes ownership of vs.
func Of[V any](vs ...V) *T[V] { return &T[V]{s: vs} }

func (t *T[V]) Len() int       { return len(t.s) }
func (t *T[V]) Cap() int       { return cap(t.s) }
func (t *T[V]) ReadPtr() *V    { return unsafe.SliceData(t.s) }
func (t *T[V]) WritePtr() *V   { return unsafe.SliceData(t.s) }
func (t *T[V]) SetLen(n int)   { t.s = t.s[:n] }
func (t *T[V]) Slice() []V     { return t.s }
func (t *T[V]) Size() uint64   { return sizeof.Slice(t.s) }
func (t *T[V]) Remaining() int { return cap(t.s) - len(t.s) }

// Reserve makes room for at least n more elements.
func (t *T[V]) Reserve(n int) { t.s = slices.Grow(t.s, n) }

func (t *T[V]) Push(v V)               { t.s = append(t.s, v) }
func (t *T[V]) Append(vs ...V)         { t.s = append(t.s, vs...) }
func (t *T[V]) Extend(seq iter.Seq[V]) { t.s = slices.AppendSeq(t.s, seq) }
func (t *T[V]) ExtendFromSlice(vs []V) { t.s = append(t.s, vs...) }

// ExtendFromWithin appends a copy of the elements r selects, growing if
// needed. It panics if r is not valid for the current length.
func (t *T[V]) ExtendFromWithin(r unchecked.Range) {
	start, end, err := r.Check(len(t.s))
	if err != nil {
		panic(err)
	}
	t.s = append(t.s, t.s[start:end]...)
}

// Truncate shortens the buffer to n elements and zeroes the dropped ones.
// It does nothing if n is not less than the length.
func (t *T[V]) Truncate(n int) {
	if n < len(t.s) {
		clear(t.s[n:])
		t.s = t.s[:n]
	}
}

func (t *T[V]) Reset() { t.Truncate(0) }

// AppendString appends the bytes of s to a byte buffer.
func AppendString(t *T[byte], s string) { t.s = append(t.s, s...) }

// Take returns the contents of a byte buffer and leaves it empty without
// its storage.
func Take(t *T[byte]) []byte {
	s := t.s
	t.s = nil
	return s
}
