package interval

import (
	"cloud.google.com/go/civil"
)

// Bound is one side of an Interval: either a concrete calendar date or
// unbounded. The zero value is unbounded.
type Bound struct {
	date    civil.Date
	bounded bool
}

func Unbounded() Bound { return Bound{} }

func BoundOf(d civil.Date) Bound { return Bound{date: d, bounded: true} }

func (b Bound) IsUnbounded() bool { return !b.bounded }

// Date returns the concrete date of b. Only meaningful when b is bounded.
func (b Bound) Date() civil.Date { return b.date }

func (b Bound) Equal(other Bound) bool { return b == other }

// String returns the date as YYYY-MM-DD, or the empty string when b is
// unbounded.
func (b Bound) String() string {
	if !b.bounded {
		return ""
	}
	return b.date.String()
}

// CompareAsStart orders two start bounds. An unbounded start sorts before
// any concrete date.
func CompareAsStart(a, b Bound) int {
	switch {
	case !a.bounded && !b.bounded:
		return 0
	case !a.bounded:
		return -1
	case !b.bounded:
		return 1
	}
	return compareDates(a.date, b.date)
}

// CompareAsEnd orders two end bounds. An unbounded end sorts after any
// concrete date.
func CompareAsEnd(a, b Bound) int {
	switch {
	case !a.bounded && !b.bounded:
		return 0
	case !a.bounded:
		return 1
	case !b.bounded:
		return -1
	}
	return compareDates(a.date, b.date)
}

func compareDates(a, b civil.Date) int {
	switch {
	case a.Before(b):
		return -1
	case b.Before(a):
		return 1
	default:
		return 0
	}
}

func laterStart(a, b Bound) Bound {
	if CompareAsStart(a, b) >= 0 {
		return a
	}
	return b
}

func earlierEnd(a, b Bound) Bound {
	if CompareAsEnd(a, b) <= 0 {
		return a
	}
	return b
}
