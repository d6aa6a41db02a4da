package intervalset

import (
	"strings"

	"github.com/henderiw/daterange/pkg/interval"
)

// ToArray returns the bound pairs of every range of s, in ascending
// order, dates as YYYY-MM-DD with an empty string for an unbounded
// side.
func (s Set) ToArray() [][2]string {
	out := make([][2]string, 0, len(s.ranges))
	for _, r := range s.ranges {
		out = append(out, r.ToArray())
	}
	return out
}

// FromArray rebuilds a set by folding Insert over the decoded pairs.
// The input does not need to be sorted or disjoint.
func FromArray(pairs [][2]string) (Set, error) {
	var s Set
	for _, p := range pairs {
		r, err := interval.FromArray(p)
		if err != nil {
			return Set{}, err
		}
		s = s.Insert(r)
	}
	return s, nil
}

func (s Set) String() string {
	parts := make([]string, 0, len(s.ranges))
	for _, r := range s.ranges {
		parts = append(parts, r.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
