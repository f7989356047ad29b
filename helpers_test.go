package unchecked_test

import (
	"testing"

	"github.com/histdb/unchecked"
	"github.com/histdb/unchecked/text"
	"github.com/histdb/unchecked/vec"
)

type testVec[V any] interface {
	unchecked.Vec[V]
	Slice() []V
	Truncate(n int)
}

// forEachVec runs fn against every element buffer kind.
func forEachVec[V any](t *testing.T, fn func(t *testing.T, newVec func(capacity int) testVec[V])) {
	t.Run("Heap", func(t *testing.T) {
		fn(t, func(capacity int) testVec[V] { return vec.New[V](capacity) })
	})
	t.Run("Fixed", func(t *testing.T) {
		fn(t, func(capacity int) testVec[V] { return vec.NewFixed[V](capacity) })
	})
}

type testText interface {
	unchecked.Text
	String() string
	Bytes() []byte
	Truncate(n int)
}

// forEachText runs fn against every text buffer kind.
func forEachText(t *testing.T, fn func(t *testing.T, newText func(capacity int) testText)) {
	t.Run("Heap", func(t *testing.T) {
		fn(t, func(capacity int) testText { return text.New(capacity) })
	})
	t.Run("Fixed", func(t *testing.T) {
		fn(t, func(capacity int) testText { return text.NewFixed(capacity) })
	})
}

func vecOf[V any](newVec func(int) testVec[V], capacity int, vs ...V) testVec[V] {
	v := newVec(capacity)
	unchecked.ExtendFromSlice(v, vs)
	return v
}
