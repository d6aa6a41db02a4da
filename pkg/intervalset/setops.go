package intervalset

import (
	"github.com/henderiw/daterange/pkg/interval"
)

// Union returns a set covering the dates of s and other.
func (s Set) Union(other Set) Set {
	out := s
	for _, r := range other.ranges {
		out = out.Insert(r)
	}
	return out
}

// Subtract returns a set covering the dates of s not covered by other.
func (s Set) Subtract(other Set) Set {
	out := s
	for _, r := range other.ranges {
		out = out.Remove(r)
	}
	return out
}

// Intersect returns a set covering the dates shared by s and other. It
// walks both range lists once: each comparison emits the shared span,
// and the trailing fragment stays on as its owner's candidate while the
// other side moves to its next range.
func (s Set) Intersect(other Set) Set {
	if len(s.ranges) == 0 || len(other.ranges) == 0 {
		return Set{}
	}
	var out []interval.Interval
	a, b := s.ranges[0], other.ranges[0]
	i, j := 1, 1
	for {
		c := a.Compare(b)
		if c.Intersection != nil {
			out = append(out, *c.Intersection)
		}
		switch {
		case c.After != nil && c.AfterFromSelf:
			a = *c.After
			if j >= len(other.ranges) {
				return Set{ranges: out}
			}
			b = other.ranges[j]
			j++
		case c.After != nil:
			b = *c.After
			if i >= len(s.ranges) {
				return Set{ranges: out}
			}
			a = s.ranges[i]
			i++
		default:
			if i >= len(s.ranges) || j >= len(other.ranges) {
				return Set{ranges: out}
			}
			a, b = s.ranges[i], other.ranges[j]
			i, j = i+1, j+1
		}
	}
}
