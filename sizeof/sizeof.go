package sizeof

import "unsafe"

// Of returns the size in bytes of a T.
func Of[T any]() uintptr { return unsafe.Sizeof(*new(T)) }

// Slice returns the memory held by v: its header plus its full capacity.
func Slice[T any](v []T) uint64 {
	return uint64(unsafe.Sizeof(v)) + uint64(Of[T]())*uint64(cap(v))
}
