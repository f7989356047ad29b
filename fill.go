package unchecked

// ExtendRepeat appends count copies of c to b.
//
// count must not exceed b.Cap() - b.Len().
func ExtendRepeat(b Vec[byte], c byte, count int) {
	n := b.Len()
	if Debug {
		must(Require(b, count))
	}
	if count == 0 {
		return
	}
	fill(spare(b, count), c)
	b.SetLen(n + count)
}

// fill sets every byte of dst to c by doubling copies out of dst itself.
func fill(dst []byte, c byte) {
	if c == 0 {
		clear(dst)
		return
	}
	dst[0] = c
	for i := 1; i < len(dst); i *= 2 {
		copy(dst[i:], dst[:i])
	}
}
