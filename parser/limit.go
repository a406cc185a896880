package parser

import "strconv"

// Limit is a repetition bound: either a finite count (At) or Infinity.
//
// Limits are totally ordered: At(a) < At(b) iff a < b, every finite limit is
// less than Infinity, and Infinity equals itself. The zero value is At(0).
type Limit struct {
	n         uint
	unbounded bool
}

// Infinity is the unbounded repetition limit.
var Infinity = Limit{unbounded: true}

// At returns the finite limit n.
func At(n uint) Limit {
	return Limit{n: n}
}

// IsInfinite reports whether l is Infinity.
func (l Limit) IsInfinite() bool {
	return l.unbounded
}

// Count returns the finite bound and true, or 0 and false for Infinity.
func (l Limit) Count() (uint, bool) {
	if l.unbounded {
		return 0, false
	}
	return l.n, true
}

// Compare returns -1, 0 or +1 as l is less than, equal to or greater than other.
func (l Limit) Compare(other Limit) int {
	switch {
	case l.unbounded && other.unbounded:
		return 0
	case l.unbounded:
		return 1
	case other.unbounded:
		return -1
	case l.n < other.n:
		return -1
	case l.n > other.n:
		return 1
	default:
		return 0
	}
}

// Less reports whether l orders before other.
func (l Limit) Less(other Limit) bool {
	return l.Compare(other) < 0
}

func (l Limit) String() string {
	if l.unbounded {
		return "infinity"
	}
	return strconv.FormatUint(uint64(l.n), 10)
}
