package interval

import (
	"fmt"

	"cloud.google.com/go/civil"
)

// Days returns the inclusive number of dates covered by i. It fails
// when either bound is unbounded.
func (i Interval) Days() (int, error) {
	if !i.IsClosed() {
		return 0, fmt.Errorf("%w: %s", ErrNotClosed, i)
	}
	return i.end.date.DaysSince(i.start.date) + 1, nil
}

// DateIterator walks every date of a closed interval in order, one day
// at a time.
type DateIterator struct {
	current civil.Date
	end     civil.Date
	started bool
}

// Dates returns an iterator over every date of i, start to end
// inclusive. It fails when either bound is unbounded. The sequence is
// restartable: each call returns a fresh iterator.
func (i Interval) Dates() (*DateIterator, error) {
	if !i.IsClosed() {
		return nil, fmt.Errorf("%w: %s", ErrNotClosed, i)
	}
	return &DateIterator{current: i.start.date, end: i.end.date}, nil
}

// Next advances to the next date. It returns false if there is none.
func (r *DateIterator) Next() bool {
	if !r.started {
		r.started = true
	} else {
		r.current = r.current.AddDays(1)
	}
	return !r.end.Before(r.current)
}

func (r *DateIterator) Date() civil.Date { return r.current }

// AllDates returns every date of a closed interval.
func (i Interval) AllDates() ([]civil.Date, error) {
	return i.AppendDates(nil)
}

// AppendDates appends every date of a closed interval to dst.
func (i Interval) AppendDates(dst []civil.Date) ([]civil.Date, error) {
	iter, err := i.Dates()
	if err != nil {
		return nil, err
	}
	for iter.Next() {
		dst = append(dst, iter.Date())
	}
	return dst, nil
}
