// Package unchecked provides append operations that skip the capacity check
// of the buffer they write into.
//
// Every operation has a precondition on the spare capacity of the buffer.
// The caller discharges it, usually by reserving through the buffer's own
// checked API first, and the operation then writes straight into storage
// and advances the length. Violating a precondition is undefined: builds
// tagged unchecked_debug panic with a diagnostic before the write, other
// builds corrupt memory or panic later.
package unchecked

import "unsafe"

// Vec is the capability an element buffer exposes to the operations in this
// package.
//
// Elements [0, Len) are valid and [Len, Cap) is writable storage. SetLen
// declares a new length without touching the contents and must never be
// given a value larger than Cap.
type Vec[V any] interface {
	Len() int
	Cap() int
	ReadPtr() *V
	WritePtr() *V
	SetLen(n int)
}

// Text is the capability a UTF-8 text buffer exposes. Len and Cap are in
// bytes. Vec returns the underlying byte storage; writing anything but
// complete UTF-8 sequences through it breaks the text buffer.
type Text interface {
	Len() int
	Cap() int
	Vec() Vec[byte]
}

type ptr = unsafe.Pointer

// at returns a pointer to the i'th element after p.
func at[V any](p *V, i int) *V {
	return (*V)(unsafe.Add(ptr(p), uintptr(i)*unsafe.Sizeof(*p)))
}

// spare returns the n writable elements starting at the length of b.
func spare[V any](b Vec[V], n int) []V {
	return unsafe.Slice(at(b.WritePtr(), b.Len()), n)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
