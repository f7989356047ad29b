package unchecked

import "iter"

const (
	runeError = '\uFFFD'
	runeMax   = '\U0010FFFF'

	surrogateMin = 0xD800
	surrogateMax = 0xDFFF

	tx = 0b1000_0000 // continuation byte marker
	t2 = 0b1100_0000
	t3 = 0b1110_0000
	t4 = 0b1111_0000

	maskx = 0b0011_1111
)

// RuneLen returns the number of bytes PushRune writes for r. Values that are
// not Unicode scalar values are written as U+FFFD and so take 3 bytes.
func RuneLen(r rune) int {
	switch {
	case r < 0:
		return 3
	case r < 1<<7:
		return 1
	case r < 1<<11:
		return 2
	case r < 1<<16:
		return 3
	case r <= runeMax:
		return 4
	default:
		return 3
	}
}

// PushRune appends the UTF-8 encoding of r to s. Values that are not Unicode
// scalar values are written as U+FFFD.
//
// s.Len() + RuneLen(r) must not exceed s.Cap().
func PushRune(s Text, r rune) {
	if r < 0 || r > runeMax || surrogateMin <= r && r <= surrogateMax {
		r = runeError
	}

	v := s.Vec()
	n, x := v.Len(), uint32(r)
	if Debug {
		must(RequireRune(s, r))
	}

	// every byte goes in before the length moves so that a partial sequence
	// is never inside the valid region.
	p := at(v.WritePtr(), n)
	switch RuneLen(r) {
	case 1:
		*p = byte(x)
		v.SetLen(n + 1)
	case 2:
		*p = t2 | byte(x>>6)
		*at(p, 1) = tx | byte(x)&maskx
		v.SetLen(n + 2)
	case 3:
		*p = t3 | byte(x>>12)
		*at(p, 1) = tx | byte(x>>6)&maskx
		*at(p, 2) = tx | byte(x)&maskx
		v.SetLen(n + 3)
	default:
		*p = t4 | byte(x>>18)
		*at(p, 1) = tx | byte(x>>12)&maskx
		*at(p, 2) = tx | byte(x>>6)&maskx
		*at(p, 3) = tx | byte(x)&maskx
		v.SetLen(n + 4)
	}
}

// ExtendRunes appends the UTF-8 encoding of every rune of seq to s.
//
// The encoded length of all of seq must fit in s.Cap() - s.Len().
func ExtendRunes(s Text, seq iter.Seq[rune]) {
	for r := range seq {
		PushRune(s, r)
	}
}

// PushString appends str to s.
//
// s.Len() + len(str) must not exceed s.Cap().
func PushString(s Text, str string) {
	if Debug {
		must(RequireString(s, str))
	}
	ExtendFromString(s.Vec(), str)
}
