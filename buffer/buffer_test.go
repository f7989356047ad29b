package buffer

import (
	"testing"

	"github.com/zeebo/assert"

	"github.com/histdb/unchecked"
)

var _ unchecked.Vec[byte] = (*T)(nil)

func TestOf(t *testing.T) {
	b := make([]byte, 3, 8)
	copy(b, "abc")

	c := OfCap(b)
	assert.Equal(t, c.Pos(), 0)
	assert.Equal(t, c.Cap(), 8)
	assert.Equal(t, c.Remaining(), 8)

	l := OfLen(b)
	assert.Equal(t, l.Cap(), 3)
	assert.Equal(t, string(l.Suffix()), "abc")
	assert.Equal(t, *l.Front(), byte('a'))

	l = l.Advance(1)
	assert.Equal(t, string(l.Prefix()), "a")
	assert.Equal(t, string(l.Suffix()), "bc")
	assert.Equal(t, string(l.FrontN(2)), "bc")
	assert.Equal(t, *l.Index(2), byte('c'))
	assert.That(t, l.Valid())

	l = l.Advance(2)
	assert.That(t, !l.Valid())
	assert.Equal(t, len(l.Suffix()), 0)
	assert.Equal(t, len(l.FrontN(0)), 0)

	l = l.Retreat(1).Trim()
	assert.Equal(t, l.Cap(), 2)
	assert.Equal(t, string(l.Reset().Suffix()), "ab")
}

func TestGrow(t *testing.T) {
	buf := OfCap(make([]byte, 0, 2))
	unchecked.ExtendFromString(&buf, "ab")
	base := buf.Base()

	buf = buf.Grow(1)
	assert.That(t, buf.Base() != base)
	assert.That(t, buf.Remaining() >= 1)
	assert.Equal(t, string(buf.Prefix()), "ab")

	base = buf.Base()
	buf = buf.Grow(1)
	assert.Equal(t, buf.Base(), base)
}

func TestUnchecked(t *testing.T) {
	var storage [16]byte
	buf := OfCap(storage[:0])

	unchecked.Push(&buf, 'x')
	unchecked.ExtendFromString(&buf, "yz")
	unchecked.ExtendRepeat(&buf, '-', 3)
	unchecked.ExtendFromWithin(&buf, unchecked.To(3))

	assert.Equal(t, buf.Len(), 9)
	assert.Equal(t, string(buf.Prefix()), "xyz---xyz")
	assert.Equal(t, string(storage[:9]), "xyz---xyz")
	assert.Equal(t, buf.ReadPtr(), &storage[0])

	buf.SetLen(2)
	assert.Equal(t, buf.Pos(), 2)
	assert.Equal(t, buf.SetPos(4).Pos(), 4)

	f4 := buf.Reset().Front4()
	assert.Equal(t, string(f4[:]), "xyz-")
	assert.Equal(t, string(buf.Index8(1)[:]), "yz---xyz")
	assert.Equal(t, string(buf.Index2(0)[:]), "xy")
	assert.Equal(t, string(buf.Index4(5)[:]), "-xyz")
	assert.Equal(t, (*buf.Front2())[1], byte('-'))
	assert.Equal(t, (*buf.Front8())[0], byte('z'))
}
