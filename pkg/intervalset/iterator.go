package intervalset

import (
	"github.com/henderiw/daterange/pkg/interval"
)

// Iterator walks the ranges of a set in ascending order.
type Iterator struct {
	current int
	ranges  []interval.Interval
}

// Iterate returns an iterator over the ranges of s.
func (s Set) Iterate() *Iterator {
	return &Iterator{current: -1, ranges: s.ranges}
}

// Next advances to the next range. It returns false if there is none.
func (r *Iterator) Next() bool {
	r.current++
	return r.current < len(r.ranges)
}

func (r *Iterator) Value() interval.Interval {
	return r.ranges[r.current]
}
