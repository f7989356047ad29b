package vec

import (
	"slices"
	"testing"
	"unsafe"

	"github.com/zeebo/assert"

	"github.com/histdb/unchecked"
)

var (
	_ unchecked.Vec[int]  = (*T[int])(nil)
	_ unchecked.Vec[byte] = (*Fixed[byte])(nil)
)

func TestT(t *testing.T) {
	v := New[int](2)
	assert.Equal(t, v.Len(), 0)
	assert.Equal(t, v.Cap(), 2)

	v.Push(1)
	v.Append(2, 3)
	v.Extend(slices.Values([]int{4, 5}))
	v.ExtendFromSlice([]int{6})
	assert.DeepEqual(t, v.Slice(), []int{1, 2, 3, 4, 5, 6})

	v.ExtendFromWithin(unchecked.Span(1, 3))
	assert.DeepEqual(t, v.Slice(), []int{1, 2, 3, 4, 5, 6, 2, 3})

	v.Reserve(10)
	assert.That(t, v.Remaining() >= 10)
	assert.Equal(t, v.ReadPtr(), &v.Slice()[0])
	assert.Equal(t, v.WritePtr(), &v.Slice()[0])

	v.Truncate(3)
	assert.DeepEqual(t, v.Slice(), []int{1, 2, 3})
	assert.Equal(t, v.Slice()[:4][3], 0)

	v.Truncate(10)
	assert.Equal(t, v.Len(), 3)

	v.Reset()
	assert.Equal(t, v.Len(), 0)
}

func TestTSetLen(t *testing.T) {
	v := New[byte](4)
	v.SetLen(4)
	assert.DeepEqual(t, v.Slice(), []byte{0, 0, 0, 0})

	defer func() { assert.That(t, recover() != nil) }()
	v.SetLen(5)
}

func TestTSize(t *testing.T) {
	header := uint64(unsafe.Sizeof([]uint64(nil)))
	assert.Equal(t, New[uint64](10).Size(), header+80)
}

func TestByteHelpers(t *testing.T) {
	v := New[byte](0)
	AppendString(v, "hello")
	assert.Equal(t, string(v.Slice()), "hello")

	b := Take(v)
	assert.Equal(t, string(b), "hello")
	assert.Equal(t, v.Len(), 0)
	assert.Equal(t, v.Cap(), 0)
}

func TestFixed(t *testing.T) {
	f := NewFixed[int](4)
	assert.Equal(t, f.Len(), 0)
	assert.Equal(t, f.Cap(), 4)

	assert.That(t, f.Push(1))
	assert.That(t, f.Append(2, 3))
	assert.That(t, !f.Append(4, 5))
	assert.DeepEqual(t, f.Slice(), []int{1, 2, 3})

	assert.That(t, f.ExtendFromWithin(unchecked.SpanIncl(2, 2)))
	assert.DeepEqual(t, f.Slice(), []int{1, 2, 3, 3})
	assert.That(t, !f.Push(6))
	assert.That(t, !f.ExtendFromWithin(unchecked.To(1)))
	assert.That(t, f.ExtendFromWithin(unchecked.Span(0, 0)))
	assert.Equal(t, f.Remaining(), 0)

	f.Truncate(1)
	assert.DeepEqual(t, f.Slice(), []int{1})
	assert.Equal(t, f.Remaining(), 3)

	// appending to the returned slice must not write into the buffer.
	_ = append(f.Slice(), 9)
	assert.That(t, f.Push(2))
	assert.DeepEqual(t, f.Slice(), []int{1, 2})

	f.Reset()
	assert.Equal(t, f.Len(), 0)
}

func TestFixedOf(t *testing.T) {
	var arr [8]byte
	f := FixedOf(arr[:2])
	assert.Equal(t, f.Cap(), 8)
	assert.Equal(t, f.Len(), 0)

	assert.That(t, PutString(f, "abcdefgh"))
	assert.That(t, !PutString(f, "i"))
	assert.Equal(t, string(arr[:]), "abcdefgh")
	assert.Equal(t, f.WritePtr(), &arr[0])

	f.SetLen(3)
	assert.Equal(t, string(f.Slice()), "abc")
}

func TestFixedExtendFromWithinPanics(t *testing.T) {
	defer func() { assert.That(t, recover() != nil) }()
	f := NewFixed[int](8)
	f.Append(1, 2)
	f.ExtendFromWithin(unchecked.From(3))
}
