package interval

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// Interval is a single contiguous span of calendar dates, possibly
// unbounded on either side. Both bounds are inclusive. Intervals are
// immutable values; the zero value spans all dates.
type Interval struct {
	start Bound
	end   Bound
}

// New returns the interval between start and end.
func New(start, end Bound) (Interval, error) {
	if !start.IsUnbounded() && !end.IsUnbounded() && end.date.Before(start.date) {
		return Interval{}, fmt.Errorf("%w: start %s, end %s", ErrInvalidRange, start.date, end.date)
	}
	return Interval{start: start, end: end}, nil
}

// MustNew is New, panicking on an invalid bound pair.
func MustNew(start, end Bound) Interval {
	i, err := New(start, end)
	if err != nil {
		panic(err)
	}
	return i
}

// Between returns the closed interval from start to end inclusive.
func Between(start, end civil.Date) (Interval, error) {
	return New(BoundOf(start), BoundOf(end))
}

// From returns the interval from start onwards, with no end.
func From(start civil.Date) Interval {
	return Interval{start: BoundOf(start)}
}

// Until returns the interval up to and including end, with no start.
func Until(end civil.Date) Interval {
	return Interval{end: BoundOf(end)}
}

// All returns the interval covering every date.
func All() Interval { return Interval{} }

// Start returns the lower bound of i.
func (i Interval) Start() Bound { return i.start }

// End returns the upper bound of i.
func (i Interval) End() Bound { return i.end }

// IsClosed reports whether both bounds are concrete dates.
func (i Interval) IsClosed() bool {
	return !i.start.IsUnbounded() && !i.end.IsUnbounded()
}

// SetStart returns a copy of i with the given start bound.
func (i Interval) SetStart(start Bound) (Interval, error) {
	return New(start, i.end)
}

// SetEnd returns a copy of i with the given end bound.
func (i Interval) SetEnd(end Bound) (Interval, error) {
	return New(i.start, end)
}

func (i Interval) Equal(other Interval) bool { return i == other }

// Contains reports whether d falls within i. An unbounded side always
// satisfies its half of the test.
func (i Interval) Contains(d civil.Date) bool {
	if !i.start.IsUnbounded() && d.Before(i.start.date) {
		return false
	}
	if !i.end.IsUnbounded() && i.end.date.Before(d) {
		return false
	}
	return true
}

// Overlaps reports whether i and other share at least one date.
func (i Interval) Overlaps(other Interval) bool {
	if !i.end.IsUnbounded() && !other.start.IsUnbounded() && i.end.date.Before(other.start.date) {
		return false
	}
	if !other.end.IsUnbounded() && !i.start.IsUnbounded() && other.end.date.Before(i.start.date) {
		return false
	}
	return true
}

func (i Interval) Less(other Interval) bool {
	if cmp := CompareAsStart(i.start, other.start); cmp != 0 {
		return cmp < 0
	}
	return CompareAsEnd(other.end, i.end) < 0
}

// EntirelyBefore returns whether i lies entirely before other, with no
// shared dates.
func (i Interval) EntirelyBefore(other Interval) bool {
	return !i.end.IsUnbounded() && !other.start.IsUnbounded() &&
		i.end.date.Before(other.start.date)
}

// CoveredBy returns whether i is entirely contained within other.
func (i Interval) CoveredBy(other Interval) bool {
	return CompareAsStart(other.start, i.start) <= 0 && CompareAsEnd(i.end, other.end) <= 0
}

// InMiddleOf returns whether i is inside other, but not touching the
// edges of other.
func (i Interval) InMiddleOf(other Interval) bool {
	return CompareAsStart(other.start, i.start) < 0 && CompareAsEnd(i.end, other.end) < 0
}

// OverlapsStartOf returns whether i entirely overlaps the start of
// other, but not all of other.
func (i Interval) OverlapsStartOf(other Interval) bool {
	return CompareAsStart(i.start, other.start) <= 0 && CompareAsEnd(i.end, other.end) < 0
}

// OverlapsEndOf returns whether i entirely overlaps the end of
// other, but not all of other.
func (i Interval) OverlapsEndOf(other Interval) bool {
	return CompareAsStart(other.start, i.start) < 0 && CompareAsEnd(other.end, i.end) <= 0
}
