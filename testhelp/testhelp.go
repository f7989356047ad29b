package testhelp

import (
	"testing"

	"github.com/zeebo/mwc"
	"github.com/zeebo/xxh3"
)

const alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// Rune returns an alphanumeric rune a quarter of the time and otherwise a
// uniformly random Unicode scalar value.
func Rune(rng *mwc.T) rune {
	if rng.Float64() < 0.25 {
		return rune(alphanumeric[rng.Uint64n(uint64(len(alphanumeric)))])
	}
	r := rune(rng.Uint32n(0x10FFFF + 1 - 0x800))
	if r >= 0xD800 {
		r += 0x800 // skip surrogates
	}
	return r
}

// Runes returns n runes from Rune.
func Runes(rng *mwc.T, n int) []rune {
	rs := make([]rune, n)
	for i := range rs {
		rs[i] = Rune(rng)
	}
	return rs
}

// String returns a string of n runes from Rune.
func String(rng *mwc.T, n int) string {
	return string(Runes(rng, n))
}

// Bytes returns n random bytes.
func Bytes(rng *mwc.T, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rng.Uint64())
	}
	return b
}

// EqualBytes fails tb unless got and want hold the same bytes. Contents are
// compared by digest and the first differing offset is reported.
func EqualBytes(tb testing.TB, got, want []byte) {
	tb.Helper()

	if len(got) != len(want) {
		tb.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	if xxh3.Hash(got) == xxh3.Hash(want) {
		return
	}
	for i := range got {
		if got[i] != want[i] {
			tb.Fatalf("mismatch at offset %d: got %#02x, want %#02x", i, got[i], want[i])
		}
	}
}
