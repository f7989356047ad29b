package buffer

import "unsafe"

type (
	ptr  = unsafe.Pointer
	uptr = uintptr
)

//
// custom slice support :sonic:
//

// T is a byte region described by a base pointer, a position and a
// capacity. Bytes before the position are the written (or consumed) prefix.
//
// Methods with value receivers return an updated copy. Through a pointer, T
// implements unchecked.Vec[byte] with the position as the length.
type T struct {
	base ptr
	pos  uptr
	cap  uptr
}

func OfCap(n []byte) T {
	return T{
		base: ptr(unsafe.SliceData(n)),
		cap:  uptr(cap(n)),
	}
}

func OfLen(n []byte) T {
	return T{
		base: ptr(unsafe.SliceData(n)),
		cap:  uptr(len(n)),
	}
}

func (buf T) Valid() bool    { return buf.pos < buf.cap }
func (buf T) Base() ptr      { return buf.base }
func (buf T) Pos() int       { return int(buf.pos) }
func (buf T) Cap() int       { return int(buf.cap) }
func (buf T) Remaining() int { return int(buf.cap - buf.pos) }

func (buf T) SetPos(pos int) T {
	buf.pos = uptr(pos)
	return buf
}

func (buf T) Reset() T {
	buf.pos = 0
	return buf
}

func (buf T) Trim() T {
	buf.cap = buf.pos
	return buf
}

func (buf T) Advance(n int) T {
	buf.pos += uptr(n)
	return buf
}

func (buf T) Retreat(n int) T {
	buf.pos -= uptr(n)
	return buf
}

//
// unchecked.Vec[byte]
//

func (buf *T) Len() int        { return int(buf.pos) }
func (buf *T) ReadPtr() *byte  { return (*byte)(buf.base) }
func (buf *T) WritePtr() *byte { return (*byte)(buf.base) }
func (buf *T) SetLen(n int)    { buf.pos = uptr(n) }

//
// views
//

// Prefix returns the bytes before the position.
func (buf T) Prefix() []byte {
	return unsafe.Slice((*byte)(buf.base), buf.pos)
}

// Suffix returns the bytes from the position to the capacity.
func (buf T) Suffix() []byte {
	if buf.pos >= buf.cap {
		return nil
	}
	return unsafe.Slice(buf.Front(), buf.cap-buf.pos)
}

func (buf T) At(n uptr) ptr { return unsafe.Add(buf.base, buf.pos+n) }

func (buf T) Front() *byte     { return (*byte)(buf.At(0)) }
func (buf T) Front2() *[2]byte { return (*[2]byte)(buf.At(0)) }
func (buf T) Front4() *[4]byte { return (*[4]byte)(buf.At(0)) }
func (buf T) Front8() *[8]byte { return (*[8]byte)(buf.At(0)) }

// FrontN returns the n bytes at the position. n must not exceed Remaining.
func (buf T) FrontN(n int) []byte {
	if n == 0 {
		return nil
	}
	return unsafe.Slice(buf.Front(), n)
}

func (buf T) Index(n uptr) *byte     { return (*byte)(unsafe.Add(buf.base, n)) }
func (buf T) Index2(n uptr) *[2]byte { return (*[2]byte)(unsafe.Add(buf.base, n)) }
func (buf T) Index4(n uptr) *[4]byte { return (*[4]byte)(unsafe.Add(buf.base, n)) }
func (buf T) Index8(n uptr) *[8]byte { return (*[8]byte)(unsafe.Add(buf.base, n)) }

//
// growth
//

//go:noinline
func (buf T) grow(n uptr) T {
	buf.cap = buf.cap*2 + n
	nb := make([]byte, buf.cap)
	copy(nb, buf.Prefix())
	buf.base = ptr(unsafe.SliceData(nb))
	return buf
}

// Grow returns a buffer with room for at least n bytes after the position,
// copying the prefix into new storage if needed.
func (buf T) Grow(n int) T {
	if buf.cap-buf.pos < uptr(n) {
		return buf.grow(uptr(n))
	}
	return buf
}
