package interval

// Comparison is the full positional breakdown of two intervals: the
// shared dates and the fragments on either side of them, each tagged
// with the interval it came from. Every higher-level operation is
// derived from it.
type Comparison struct {
	// Before is the leading fragment, ending the day before Intersection
	// starts. When the intervals are disjoint it is the earlier interval
	// in full. Nil when both starts are equal.
	Before *Interval
	// BeforeFromSelf reports whether Before came from the receiver of
	// Compare. Meaningless when Before is nil.
	BeforeFromSelf bool
	// Intersection is the shared span, nil when the intervals are
	// disjoint.
	Intersection *Interval
	// After is the trailing fragment, starting the day after Intersection
	// ends. When the intervals are disjoint it is the later interval in
	// full. Nil when both ends are equal.
	After *Interval
	// AfterFromSelf reports whether After came from the receiver of
	// Compare. Meaningless when After is nil.
	AfterFromSelf bool
}

// Compare splits i and other into before/intersection/after. Swapping
// receiver and argument yields the same fragments with the two FromSelf
// flags inverted.
func (i Interval) Compare(other Interval) Comparison {
	cs := CompareAsStart(i.start, other.start)
	ce := CompareAsEnd(i.end, other.end)

	interStart := laterStart(i.start, other.start)
	interEnd := earlierEnd(i.end, other.end)

	if !interStart.IsUnbounded() && !interEnd.IsUnbounded() &&
		interEnd.date.Before(interStart.date) {
		// Disjoint. The starts cannot be equal here, so cs decides which
		// interval is the earlier one.
		earlier, later, fromSelf := i, other, true
		if cs > 0 {
			earlier, later, fromSelf = other, i, false
		}
		return Comparison{
			Before:         &earlier,
			BeforeFromSelf: fromSelf,
			After:          &later,
			AfterFromSelf:  !fromSelf,
		}
	}

	c := Comparison{
		Intersection: &Interval{start: interStart, end: interEnd},
	}
	if cs != 0 {
		// The later of two unequal starts is always a concrete date, so
		// the fragment ends the day before it.
		start := i.start
		if cs > 0 {
			start = other.start
		}
		before := Interval{start: start, end: BoundOf(interStart.date.AddDays(-1))}
		c.Before, c.BeforeFromSelf = &before, cs < 0
	}
	if ce != 0 {
		end := i.end
		if ce < 0 {
			end = other.end
		}
		after := Interval{start: BoundOf(interEnd.date.AddDays(1)), end: end}
		c.After, c.AfterFromSelf = &after, ce > 0
	}
	return c
}

// Intersect returns the span shared by i and other. The second return
// value is false when the intervals are disjoint.
func (i Interval) Intersect(other Interval) (Interval, bool) {
	start := laterStart(i.start, other.start)
	end := earlierEnd(i.end, other.end)
	if !start.IsUnbounded() && !end.IsUnbounded() && end.date.Before(start.date) {
		return Interval{}, false
	}
	return Interval{start: start, end: end}, true
}

// Subtract returns the dates of i not covered by other, as 0, 1 or 2
// fragments in ascending order.
func (i Interval) Subtract(other Interval) []Interval {
	c := i.Compare(other)
	var out []Interval
	if c.Before != nil && c.BeforeFromSelf {
		out = append(out, *c.Before)
	}
	if c.After != nil && c.AfterFromSelf {
		out = append(out, *c.After)
	}
	return out
}
