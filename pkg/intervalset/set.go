package intervalset

import (
	"sort"

	"cloud.google.com/go/civil"
	"github.com/henderiw/daterange/pkg/interval"
)

// Set is an ordered collection of non-overlapping intervals. After
// every operation the ranges are sorted ascending by start bound,
// pairwise non-overlapping, and separated by at least one calendar day;
// touching ranges are merged. Sets are immutable values: every
// operation returns a new Set. The zero value is the empty set.
type Set struct {
	ranges []interval.Interval
}

// New builds a set covering the union of the given ranges, in any
// order.
func New(ranges ...interval.Interval) Set {
	return FromIntervals(ranges)
}

// FromIntervals folds Insert over the given ranges, starting from the
// empty set.
func FromIntervals(ranges []interval.Interval) Set {
	var s Set
	for _, r := range ranges {
		s = s.Insert(r)
	}
	return s
}

func (s Set) Len() int { return len(s.ranges) }

func (s Set) IsEmpty() bool { return len(s.ranges) == 0 }

// Ranges returns a copy of the ranges of s, in ascending order.
func (s Set) Ranges() []interval.Interval {
	out := make([]interval.Interval, len(s.ranges))
	copy(out, s.ranges)
	return out
}

func (s Set) Equal(other Set) bool {
	if len(s.ranges) != len(other.ranges) {
		return false
	}
	for i := range s.ranges {
		if !s.ranges[i].Equal(other.ranges[i]) {
			return false
		}
	}
	return true
}

// Contains reports whether d is covered by s.
func (s Set) Contains(d civil.Date) bool {
	for _, r := range s.ranges {
		if !r.Start().IsUnbounded() && d.Before(r.Start().Date()) {
			return false
		}
		if r.Contains(d) {
			return true
		}
	}
	return false
}

// ContainsInterval reports whether every date of r is covered by s.
// Ranges in a set are separated by real gaps, so coverage means
// coverage by a single range.
func (s Set) ContainsInterval(r interval.Interval) bool {
	for _, e := range s.ranges {
		if r.CoveredBy(e) {
			return true
		}
	}
	return false
}

// Extent returns the interval from the first range's start to the last
// range's end. The second return value is false for the empty set.
func (s Set) Extent() (interval.Interval, bool) {
	if len(s.ranges) == 0 {
		return interval.Interval{}, false
	}
	first := s.ranges[0]
	last := s.ranges[len(s.ranges)-1]
	return interval.MustNew(first.Start(), last.End()), true
}

// Days returns the total number of dates covered by s. It fails when
// any range is unbounded on either side.
func (s Set) Days() (int, error) {
	total := 0
	for _, r := range s.ranges {
		d, err := r.Days()
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// Insert returns a set covering the union of s and r.
func (s Set) Insert(r interval.Interval) Set {
	cut := s.searchStart(r.Start())
	before := s.ranges[:cut]
	after := s.ranges[cut:]

	// Absorb a touching or overlapping left neighbour. When before is
	// non-empty, r's start is a concrete date.
	if len(before) > 0 {
		last := before[len(before)-1]
		if last.End().IsUnbounded() {
			// The left neighbour runs forever, r adds nothing.
			return s
		}
		if !last.End().Date().Before(r.Start().Date().AddDays(-1)) {
			end := r.End()
			if interval.CompareAsEnd(last.End(), end) > 0 {
				end = last.End()
			}
			r = interval.MustNew(last.Start(), end)
			before = before[:len(before)-1]
		}
	}

	if r.End().IsUnbounded() {
		// Everything at or after r's start is covered by r itself.
		return Set{ranges: splice(before, r, nil)}
	}

	// Swallow touching or overlapping right neighbours.
	i := 0
	for i < len(after) {
		next := after[i]
		if !next.Start().IsUnbounded() &&
			next.Start().Date().AddDays(-1).After(r.End().Date()) {
			break
		}
		i++
		if next.End().IsUnbounded() {
			r = interval.MustNew(r.Start(), interval.Unbounded())
			return Set{ranges: splice(before, r, nil)}
		}
		if interval.CompareAsEnd(next.End(), r.End()) > 0 {
			r = interval.MustNew(r.Start(), next.End())
		}
	}
	return Set{ranges: splice(before, r, after[i:])}
}

// Remove returns a set covering the dates of s not covered by r.
func (s Set) Remove(r interval.Interval) Set {
	if len(s.ranges) == 0 {
		return s
	}
	cut := s.searchStart(r.Start())
	out := make([]interval.Interval, 0, len(s.ranges)+1)
	out = append(out, s.ranges[:cut]...)

	// Of the ranges starting before r, only the last one can reach into
	// it: anything earlier ends at least a day before that one starts.
	if n := len(out); n > 0 && out[n-1].Overlaps(r) {
		out = append(out[:n-1], out[n-1].Subtract(r)...)
	}

	i := cut
	for i < len(s.ranges) {
		next := s.ranges[i]
		if !next.Overlaps(r) {
			break
		}
		out = append(out, next.Subtract(r)...)
		i++
	}
	out = append(out, s.ranges[i:]...)
	return Set{ranges: out}
}

// searchStart returns the index of the first range whose start bound is
// not strictly earlier than b.
func (s Set) searchStart(b interval.Bound) int {
	return sort.Search(len(s.ranges), func(i int) bool {
		return interval.CompareAsStart(s.ranges[i].Start(), b) >= 0
	})
}

func splice(before []interval.Interval, r interval.Interval, after []interval.Interval) []interval.Interval {
	out := make([]interval.Interval, 0, len(before)+1+len(after))
	out = append(out, before...)
	out = append(out, r)
	out = append(out, after...)
	return out
}
