package intervalset

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/daterange/pkg/interval"
	"github.com/stretchr/testify/assert"
)

func mustDate(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func ival(s string) interval.Interval {
	i, err := interval.Parse(s)
	if err != nil {
		panic(err)
	}
	return i
}

func buildSet(ranges ...string) Set {
	var s Set
	for _, r := range ranges {
		s = s.Insert(ival(r))
	}
	return s
}

func rangeStrings(s Set) []string {
	out := []string{}
	for _, r := range s.Ranges() {
		out = append(out, r.String())
	}
	return out
}

// assertInvariants checks that the ranges of s are sorted, pairwise
// non-overlapping, and separated by at least one calendar day.
func assertInvariants(t *testing.T, s Set) {
	t.Helper()
	ranges := s.Ranges()
	for i := 1; i < len(ranges); i++ {
		prev, cur := ranges[i-1], ranges[i]
		if interval.CompareAsStart(prev.Start(), cur.Start()) >= 0 {
			t.Errorf("ranges out of order: %s before %s", prev, cur)
		}
		if prev.End().IsUnbounded() {
			t.Errorf("non-final range %s has an unbounded end", prev)
			continue
		}
		if cur.Start().IsUnbounded() {
			t.Errorf("non-first range %s has an unbounded start", cur)
			continue
		}
		if !prev.End().Date().AddDays(1).Before(cur.Start().Date()) {
			t.Errorf("ranges %s and %s overlap or touch", prev, cur)
		}
	}
}

func TestInsert(t *testing.T) {
	cases := map[string]struct {
		insert   []string
		expected []string
	}{
		"Empty": {
			insert:   nil,
			expected: []string{},
		},
		"Single": {
			insert:   []string{"2021-01-01..2021-01-31"},
			expected: []string{"2021-01-01..2021-01-31"},
		},
		"OverlapMerge": {
			insert:   []string{"2021-01-01..2021-01-31", "2021-01-15..2021-02-15"},
			expected: []string{"2021-01-01..2021-02-15"},
		},
		"AdjacentMerge": {
			insert:   []string{"2021-01-01..2021-01-31", "2021-02-01..2021-02-28"},
			expected: []string{"2021-01-01..2021-02-28"},
		},
		"GapKept": {
			insert:   []string{"2021-01-01..2021-01-31", "2021-03-01..2021-03-31"},
			expected: []string{"2021-01-01..2021-01-31", "2021-03-01..2021-03-31"},
		},
		"OneDayGapKept": {
			insert:   []string{"2021-01-01..2021-01-10", "2021-01-12..2021-01-20"},
			expected: []string{"2021-01-01..2021-01-10", "2021-01-12..2021-01-20"},
		},
		"Contained": {
			insert:   []string{"2021-01-01..2021-01-31", "2021-01-10..2021-01-20"},
			expected: []string{"2021-01-01..2021-01-31"},
		},
		"BridgesTwo": {
			insert: []string{
				"2021-01-01..2021-01-10",
				"2021-02-01..2021-02-10",
				"2021-01-05..2021-01-31",
			},
			expected: []string{"2021-01-01..2021-02-10"},
		},
		"SwallowsSeveral": {
			insert: []string{
				"2021-01-01..2021-01-05",
				"2021-02-01..2021-02-05",
				"2021-03-01..2021-03-05",
				"2021-01-03..2021-04-01",
			},
			expected: []string{"2021-01-01..2021-04-01"},
		},
		"UnboundedEndAbsorbsTail": {
			insert: []string{
				"2021-01-01..2021-01-10",
				"2021-03-01..2021-03-10",
				"2021-02-01..",
			},
			expected: []string{"2021-01-01..2021-01-10", "2021-02-01.."},
		},
		"CoveredByUnboundedEnd": {
			insert: []string{
				"2021-01-01..",
				"2021-06-01..2021-06-30",
			},
			expected: []string{"2021-01-01.."},
		},
		"UnboundedStartKeepsLaterGap": {
			insert: []string{
				"2021-03-01..2021-03-31",
				"..2021-01-15",
			},
			expected: []string{"..2021-01-15", "2021-03-01..2021-03-31"},
		},
		"GrowsUnboundedAtBothEnds": {
			insert: []string{
				"..2021-01-01",
				"..2021-01-15",
				"2021-03-01..",
				"2021-02-15..",
				"2021-01-16..2021-02-14",
			},
			expected: []string{".."},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := buildSet(tc.insert...)
			assertInvariants(t, s)
			if diff := cmp.Diff(tc.expected, rangeStrings(s)); diff != "" {
				t.Errorf("set mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInsertDoesNotMutate(t *testing.T) {
	s := buildSet("2021-01-01..2021-01-10", "2021-02-01..2021-02-10")
	before := rangeStrings(s)

	s.Insert(ival("2021-01-05..2021-02-05"))
	s.Remove(ival("2021-01-03..2021-01-07"))

	assert.Equal(t, before, rangeStrings(s))
}

func TestRemove(t *testing.T) {
	cases := map[string]struct {
		initial  []string
		remove   string
		expected []string
	}{
		"FromEmpty": {
			initial:  nil,
			remove:   "2021-01-01..2021-01-31",
			expected: []string{},
		},
		"MiddleSplit": {
			initial:  []string{"2021-01-01..2021-01-31"},
			remove:   "2021-01-10..2021-01-20",
			expected: []string{"2021-01-01..2021-01-09", "2021-01-21..2021-01-31"},
		},
		"ExactRange": {
			initial:  []string{"2021-01-01..2021-01-31", "2021-03-01..2021-03-31"},
			remove:   "2021-01-01..2021-01-31",
			expected: []string{"2021-03-01..2021-03-31"},
		},
		"AcrossTwoRanges": {
			initial:  []string{"2021-01-01..2021-01-31", "2021-03-01..2021-03-31"},
			remove:   "2021-01-20..2021-03-10",
			expected: []string{"2021-01-01..2021-01-19", "2021-03-11..2021-03-31"},
		},
		"AdjacentUntouched": {
			initial:  []string{"2021-01-01..2021-01-10"},
			remove:   "2021-01-11..2021-01-20",
			expected: []string{"2021-01-01..2021-01-10"},
		},
		"UnboundedRemovesAll": {
			initial:  []string{"2021-01-01..2021-01-10", "2021-02-01..2021-02-10"},
			remove:   "..",
			expected: []string{},
		},
		"TrimUnboundedStart": {
			initial:  []string{"..2021-01-31"},
			remove:   "..2021-01-15",
			expected: []string{"2021-01-16..2021-01-31"},
		},
		"PunchHoleInUnbounded": {
			initial:  []string{".."},
			remove:   "2021-01-10..2021-01-20",
			expected: []string{"..2021-01-09", "2021-01-21.."},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s := buildSet(tc.initial...).Remove(ival(tc.remove))
			assertInvariants(t, s)
			if diff := cmp.Diff(tc.expected, rangeStrings(s)); diff != "" {
				t.Errorf("set mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestContains(t *testing.T) {
	s := buildSet("2021-01-01..2021-01-10", "2021-02-01..2021-02-10")

	assert.True(t, s.Contains(mustDate("2021-01-01")))
	assert.True(t, s.Contains(mustDate("2021-02-10")))
	assert.False(t, s.Contains(mustDate("2021-01-15")))
	assert.False(t, s.Contains(mustDate("2020-12-31")))
	assert.False(t, s.Contains(mustDate("2021-03-01")))
	assert.False(t, Set{}.Contains(mustDate("2021-01-01")))
}

func TestContainsInterval(t *testing.T) {
	s := buildSet("2021-01-01..2021-01-10", "2021-02-01..2021-02-10")

	assert.True(t, s.ContainsInterval(ival("2021-01-02..2021-01-09")))
	assert.True(t, s.ContainsInterval(ival("2021-02-01..2021-02-10")))
	assert.False(t, s.ContainsInterval(ival("2021-01-05..2021-02-05")))
	assert.False(t, s.ContainsInterval(ival("2021-01-01..")))
}

func TestExtent(t *testing.T) {
	_, ok := Set{}.Extent()
	assert.False(t, ok)

	ext, ok := buildSet("2021-01-01..2021-01-10", "2021-03-01..2021-03-10").Extent()
	assert.True(t, ok)
	assert.Equal(t, "2021-01-01..2021-03-10", ext.String())

	ext, ok = buildSet("..2021-01-10", "2021-03-01..").Extent()
	assert.True(t, ok)
	assert.Equal(t, "..", ext.String())
}

func TestDays(t *testing.T) {
	n, err := buildSet("2021-01-01..2021-01-10", "2021-02-01..2021-02-10").Days()
	assert.NoError(t, err)
	assert.Equal(t, 20, n)

	n, err = Set{}.Days()
	assert.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = buildSet("2021-01-01..").Days()
	assert.ErrorIs(t, err, interval.ErrNotClosed)
}

func TestIterate(t *testing.T) {
	s := buildSet("2021-02-01..2021-02-10", "2021-01-01..2021-01-10")

	iter := s.Iterate()
	got := []string{}
	for iter.Next() {
		got = append(got, iter.Value().String())
	}
	assert.Equal(t, []string{"2021-01-01..2021-01-10", "2021-02-01..2021-02-10"}, got)
}

func TestFromArray(t *testing.T) {
	cases := map[string]struct {
		pairs       [][2]string
		expected    []string
		expectedErr bool
	}{
		"Unsorted": {
			pairs: [][2]string{
				{"2021-03-01", "2021-03-31"},
				{"2021-01-01", "2021-01-31"},
			},
			expected: []string{"2021-01-01..2021-01-31", "2021-03-01..2021-03-31"},
		},
		"GrowsUnbounded": {
			pairs: [][2]string{
				{"", "2021-01-01"},
				{"", "2021-01-15"},
				{"2021-03-01", ""},
				{"2021-02-15", ""},
				{"2021-01-16", "2021-02-14"},
			},
			expected: []string{".."},
		},
		"BadDate": {
			pairs:       [][2]string{{"garbage", "2021-01-31"}},
			expectedErr: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			s, err := FromArray(tc.pairs)
			if tc.expectedErr {
				assert.ErrorIs(t, err, interval.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
			assertInvariants(t, s)
			if diff := cmp.Diff(tc.expected, rangeStrings(s)); diff != "" {
				t.Errorf("set mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArrayRoundTrip(t *testing.T) {
	s := buildSet("..2021-01-10", "2021-02-01..2021-02-10", "2021-03-01..")

	decoded, err := FromArray(s.ToArray())
	assert.NoError(t, err)
	assert.True(t, s.Equal(decoded))
}
