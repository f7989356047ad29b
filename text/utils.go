package text

import (
	"unicode/utf8"
	"unsafe"

	"github.com/zeebo/errs/v2"
)

func mustBoundary(b []byte, n int) {
	if n < 0 || !utf8.RuneStart(b[n]) {
		panic(errs.Errorf("truncate at %d: not a rune boundary", n))
	}
}

func unsafeString(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
