package datetable

import (
	"fmt"
	"sort"
	"sync"

	"cloud.google.com/go/civil"
	"github.com/henderiw/daterange/pkg/interval"
	"github.com/henderiw/daterange/pkg/intervalset"
	"k8s.io/apimachinery/pkg/labels"
)

// Claim is a claimed date range and its metadata.
type Claim struct {
	Range  interval.Interval
	Labels labels.Set
}

type DateTable interface {
	Claim(r interval.Interval, d labels.Set) error
	ClaimSize(days int, d labels.Set) (interval.Interval, error)
	Release(r interval.Interval) error

	Count() int
	Has(d civil.Date) bool

	IsFree(r interval.Interval) bool
	FindFree(days int) (interval.Interval, error)

	Claimed() intervalset.Set
	Free() intervalset.Set

	GetAll() []Claim
	GetByLabel(selector labels.Selector) []Claim
}

// New returns a table allocating date ranges within the given window.
// The window must be closed on both sides.
func New(window interval.Interval) (DateTable, error) {
	if !window.IsClosed() {
		return nil, fmt.Errorf("window %s must be closed on both sides", window)
	}
	return &dateTable{
		m:      new(sync.RWMutex),
		window: window,
		claims: map[string]Claim{},
	}, nil
}

type dateTable struct {
	m       *sync.RWMutex
	window  interval.Interval
	claimed intervalset.Set
	claims  map[string]Claim
}

func (r *dateTable) Claim(ival interval.Interval, d labels.Set) error {
	r.m.Lock()
	defer r.m.Unlock()

	return r.claim(ival, d)
}

func (r *dateTable) claim(ival interval.Interval, d labels.Set) error {
	if !ival.IsClosed() {
		return fmt.Errorf("claim %s must be closed on both sides", ival)
	}
	if !ival.CoveredBy(r.window) {
		return fmt.Errorf("claim %s does not fit in window %s", ival, r.window)
	}
	if !r.isFree(ival) {
		return fmt.Errorf("claim %s overlaps an existing claim", ival)
	}
	r.claimed = r.claimed.Insert(ival)
	r.claims[ival.String()] = Claim{Range: ival, Labels: d}
	return nil
}

func (r *dateTable) ClaimSize(days int, d labels.Set) (interval.Interval, error) {
	r.m.Lock()
	defer r.m.Unlock()

	ival, err := r.findFree(days)
	if err != nil {
		return interval.Interval{}, err
	}
	// getting an error is unlikely as we have a lock
	if err := r.claim(ival, d); err != nil {
		return interval.Interval{}, err
	}
	return ival, nil
}

func (r *dateTable) Release(ival interval.Interval) error {
	r.m.Lock()
	defer r.m.Unlock()

	key := ival.String()
	if _, ok := r.claims[key]; !ok {
		return fmt.Errorf("claim %s not found", ival)
	}
	delete(r.claims, key)
	r.claimed = r.claimed.Remove(ival)
	return nil
}

func (r *dateTable) Count() int {
	r.m.RLock()
	defer r.m.RUnlock()

	return len(r.claims)
}

func (r *dateTable) Has(d civil.Date) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.claimed.Contains(d)
}

func (r *dateTable) IsFree(ival interval.Interval) bool {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.isFree(ival)
}

func (r *dateTable) isFree(ival interval.Interval) bool {
	return r.claimed.Intersect(intervalset.New(ival)).IsEmpty()
}

func (r *dateTable) FindFree(days int) (interval.Interval, error) {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.findFree(days)
}

func (r *dateTable) findFree(days int) (interval.Interval, error) {
	if days < 1 {
		return interval.Interval{}, fmt.Errorf("size %d must be at least one day", days)
	}
	iter := r.free().Iterate()
	for iter.Next() {
		ival := iter.Value()
		// free ranges are inside the closed window
		n, err := ival.Days()
		if err != nil {
			return interval.Interval{}, err
		}
		if n < days {
			continue
		}
		return interval.Between(ival.Start().Date(), ival.Start().Date().AddDays(days-1))
	}
	return interval.Interval{}, fmt.Errorf("no free range of %d days found", days)
}

func (r *dateTable) Claimed() intervalset.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.claimed
}

func (r *dateTable) Free() intervalset.Set {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.free()
}

func (r *dateTable) free() intervalset.Set {
	return intervalset.New(r.window).Subtract(r.claimed)
}

func (r *dateTable) GetAll() []Claim {
	r.m.RLock()
	defer r.m.RUnlock()

	return r.getAll()
}

func (r *dateTable) getAll() []Claim {
	entries := make([]Claim, 0, len(r.claims))
	for _, c := range r.claims {
		entries = append(entries, c)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Range.Less(entries[j].Range)
	})
	return entries
}

func (r *dateTable) GetByLabel(selector labels.Selector) []Claim {
	r.m.RLock()
	defer r.m.RUnlock()

	entries := []Claim{}
	for _, c := range r.getAll() {
		if selector.Matches(c.Labels) {
			entries = append(entries, c)
		}
	}
	return entries
}
