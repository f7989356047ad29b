package unchecked

import (
	"fmt"
	"math"

	"github.com/zeebo/errs/v2"
)

type boundKind uint8

const (
	unbounded boundKind = iota
	included
	excluded
)

// Bound is one end of a Range. The zero value is unbounded.
type Bound struct {
	kind boundKind
	n    int
}

func Included(n int) Bound { return Bound{kind: included, n: n} }
func Excluded(n int) Bound { return Bound{kind: excluded, n: n} }
func Unbounded() Bound     { return Bound{} }

func (b Bound) String() string {
	switch b.kind {
	case included:
		return fmt.Sprintf("Included(%d)", b.n)
	case excluded:
		return fmt.Sprintf("Excluded(%d)", b.n)
	default:
		return "Unbounded"
	}
}

// Range selects elements of a buffer by a start and an end bound.
type Range struct {
	Start Bound
	End   Bound
}

func Span(lo, hi int) Range     { return Range{Included(lo), Excluded(hi)} }
func SpanIncl(lo, hi int) Range { return Range{Included(lo), Included(hi)} }
func From(lo int) Range         { return Range{Start: Included(lo)} }
func To(hi int) Range           { return Range{End: Excluded(hi)} }
func ToIncl(hi int) Range       { return Range{End: Included(hi)} }
func All() Range                { return Range{} }

func (r Range) String() string { return fmt.Sprintf("(%v, %v)", r.Start, r.End) }

// Resolve returns the half open [start, end) indices r selects in a buffer
// of the given length. The range must be valid for length: an excluded start
// or included end may not be math.MaxInt and start <= end <= length.
func (r Range) Resolve(length int) (start, end int) {
	start, end = r.resolve(length)
	if Debug {
		must(r.check(start, end, length))
	}
	return start, end
}

// Check is Resolve returning an error for a range that is not valid for
// length.
func (r Range) Check(length int) (start, end int, err error) {
	start, end = r.resolve(length)
	return start, end, r.check(start, end, length)
}

func (r Range) resolve(length int) (start, end int) {
	switch r.Start.kind {
	case included:
		start = r.Start.n
	case excluded:
		start = r.Start.n + 1
	}

	switch r.End.kind {
	case included:
		end = r.End.n + 1
	case excluded:
		end = r.End.n
	default:
		end = length
	}

	return start, end
}

func (r Range) check(start, end, length int) error {
	switch {
	case r.Start.kind == excluded && r.Start.n == math.MaxInt:
		return errs.Errorf("range %v: start overflows", r)
	case r.End.kind == included && r.End.n == math.MaxInt:
		return errs.Errorf("range %v: end overflows", r)
	case start < 0:
		return errs.Errorf("range %v: start %d is negative", r, start)
	case start > end:
		return errs.Errorf("range %v: start %d after end %d", r, start, end)
	case end > length:
		return errs.Errorf("range %v: end %d out of range for length %d", r, end, length)
	}
	return nil
}
