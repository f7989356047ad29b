package unchecked

import "github.com/zeebo/errs/v2"

//
// precondition checks. these are what the debug build asserts, and callers
// can use them anywhere they want the check without the panic.
//

// Spare returns the number of elements b can take without growing.
func Spare[V any](b Vec[V]) int { return b.Cap() - b.Len() }

// Require returns an error unless b has room for n more elements.
func Require[V any](b Vec[V], n int) error {
	if n < 0 {
		return errs.Errorf("negative count: %d", n)
	}
	if spare := Spare(b); n > spare {
		return errs.Errorf("insufficient capacity: need %d, have %d (len=%d cap=%d)",
			n, spare, b.Len(), b.Cap())
	}
	return nil
}

// RequireRange returns an error unless r is valid for b and b has room for
// the elements r selects.
func RequireRange[V any](b Vec[V], r Range) error {
	start, end, err := r.Check(b.Len())
	if err != nil {
		return err
	}
	return Require(b, end-start)
}

// RequireRune returns an error unless s has room for the encoding of r.
func RequireRune(s Text, r rune) error {
	return requireText(s, RuneLen(r))
}

// RequireString returns an error unless s has room for str.
func RequireString(s Text, str string) error {
	return requireText(s, len(str))
}

func requireText(s Text, n int) error {
	if spare := s.Cap() - s.Len(); n > spare {
		return errs.Errorf("insufficient text capacity: need %d bytes, have %d (len=%d cap=%d)",
			n, spare, s.Len(), s.Cap())
	}
	return nil
}

func requireLen(dst, src int) error {
	if dst != src {
		return errs.Errorf("length mismatch: destination %d, source %d", dst, src)
	}
	return nil
}
