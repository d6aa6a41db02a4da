package interval

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
)

// separator splits the two sides of the textual form. It cannot appear
// in a YYYY-MM-DD date.
const separator = ".."

// String renders i as "start..end" with dates as YYYY-MM-DD; an
// unbounded side is left empty.
func (i Interval) String() string {
	return i.start.String() + separator + i.end.String()
}

// Parse is the inverse of String.
func Parse(s string) (Interval, error) {
	start, end, ok := strings.Cut(s, separator)
	if !ok {
		return Interval{}, fmt.Errorf("%w: no %q in range %q", ErrInvalidInput, separator, s)
	}
	return FromArray([2]string{start, end})
}

// ToArray returns the two bounds of i as YYYY-MM-DD strings, an empty
// string standing for an unbounded side.
func (i Interval) ToArray() [2]string {
	return [2]string{i.start.String(), i.end.String()}
}

// FromArray is the exact inverse of ToArray. An empty string decodes as
// an unbounded side.
func FromArray(pair [2]string) (Interval, error) {
	start, err := parseBound(pair[0])
	if err != nil {
		return Interval{}, fmt.Errorf("%w: invalid start date %q", ErrInvalidInput, pair[0])
	}
	end, err := parseBound(pair[1])
	if err != nil {
		return Interval{}, fmt.Errorf("%w: invalid end date %q", ErrInvalidInput, pair[1])
	}
	return New(start, end)
}

func parseBound(s string) (Bound, error) {
	if s == "" {
		return Unbounded(), nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return Bound{}, err
	}
	return BoundOf(d), nil
}

func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Interval) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
