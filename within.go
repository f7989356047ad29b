package unchecked

import (
	"unsafe"

	"github.com/histdb/unchecked/sizeof"
)

// ExtendFromWithin appends a copy of the elements r selects from b itself.
//
// r must be valid for b.Len() (see Range.Resolve) and b.Cap() - b.Len() must
// be at least the number of elements it selects.
func ExtendFromWithin[V any](b Vec[V], r Range) {
	n := b.Len()
	start, end := r.Resolve(n)
	count := end - start
	if Debug {
		must(Require(b, count))
	}

	switch {
	case count == 0:
		return

	// nothing to move, only the length changes. this is also the only case
	// where n + count can approach math.MaxInt.
	case sizeof.Of[V]() == 0:

	// the source lies in [start, end) with end <= n and the destination in
	// [n, n+count), so the two never overlap and a single copy is enough.
	default:
		src := unsafe.Slice(at(b.ReadPtr(), start), count)
		copy(unsafe.Slice(at(b.WritePtr(), n), count), src)
	}

	b.SetLen(n + count)
}
