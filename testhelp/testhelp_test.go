package testhelp

import (
	"testing"
	"unicode/utf8"

	"github.com/zeebo/assert"
	"github.com/zeebo/mwc"
)

func TestRune(t *testing.T) {
	rng := mwc.Rand()
	for i := 0; i < 10000; i++ {
		assert.That(t, utf8.ValidRune(Rune(rng)))
	}
	assert.That(t, utf8.ValidString(String(rng, 1000)))
	assert.Equal(t, len(Bytes(rng, 17)), 17)
}

func TestEqualBytes(t *testing.T) {
	EqualBytes(t, nil, []byte{})
	EqualBytes(t, []byte("abc"), []byte("abc"))
}
