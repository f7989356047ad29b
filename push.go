package unchecked

import (
	"iter"
	"unsafe"
)

// Push appends v to b.
//
// b.Len() must be less than b.Cap().
func Push[V any](b Vec[V], v V) {
	n := b.Len()
	if Debug {
		must(Require(b, 1))
	}
	*at(b.WritePtr(), n) = v
	b.SetLen(n + 1)
}

// Extend appends every value of seq to b in order.
//
// b.Len() plus the number of values in seq must not exceed b.Cap().
func Extend[V any](b Vec[V], seq iter.Seq[V]) {
	for v := range seq {
		Push(b, v)
	}
}

// ExtendFromSlice appends the elements of src to b.
//
// len(src) must not exceed b.Cap() - b.Len().
func ExtendFromSlice[V any](b Vec[V], src []V) {
	n, count := b.Len(), len(src)
	if Debug {
		must(Require(b, count))
	}
	if count == 0 {
		return
	}
	copy(spare(b, count), src)
	b.SetLen(n + count)
}

// ExtendFromString appends the bytes of s to b without converting s to a
// byte slice first.
//
// len(s) must not exceed b.Cap() - b.Len().
func ExtendFromString(b Vec[byte], s string) {
	ExtendFromSlice(b, unsafe.Slice(unsafe.StringData(s), len(s)))
}

// CopyFromSlice copies src into dst.
//
// len(dst) must equal len(src).
func CopyFromSlice[V any](dst, src []V) {
	if Debug {
		must(requireLen(len(dst), len(src)))
	}
	if len(src) == 0 {
		return
	}
	copy(unsafe.Slice(unsafe.SliceData(dst), len(src)), src)
}
