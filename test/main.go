package main

import (
	"fmt"

	"cloud.google.com/go/civil"
	"github.com/henderiw/daterange/pkg/datetable"
	"github.com/henderiw/daterange/pkg/interval"
	"github.com/henderiw/daterange/pkg/intervalset"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/selection"
)

var bookings = []struct {
	rng    string
	labels map[string]string
}{
	{rng: "2021-01-10..2021-01-20", labels: map[string]string{"team": "blue"}},
	{rng: "2021-02-01..2021-02-05", labels: map[string]string{"team": "red"}},
	{rng: "2021-03-01..2021-03-05", labels: map[string]string{"team": "blue"}},
}

func main() {
	a := intervalset.New(
		mustParse("2021-01-01..2021-01-31"),
		mustParse("2021-01-15..2021-02-15"),
		mustParse("2021-03-01..2021-03-31"),
	)
	fmt.Println("set", a)

	b := intervalset.New(mustParse("2021-02-01..2021-03-10"))
	fmt.Println("union", a.Union(b))
	fmt.Println("subtract", a.Subtract(b))
	fmt.Println("intersect", a.Intersect(b))

	window := mustParse("2021-01-01..2021-12-31")
	tbl, err := datetable.New(window)
	if err != nil {
		panic(err)
	}
	for _, bk := range bookings {
		if err := tbl.Claim(mustParse(bk.rng), bk.labels); err != nil {
			fmt.Println("claim failed", bk.rng, err)
		}
	}

	req, err := labels.NewRequirement("team", selection.Equals, []string{"blue"})
	if err != nil {
		panic(err)
	}
	for _, c := range tbl.GetByLabel(labels.NewSelector().Add(*req)) {
		fmt.Println("blue booking", c.Range)
	}

	free, err := tbl.FindFree(14)
	if err != nil {
		panic(err)
	}
	fmt.Println("next free fortnight", free)
	fmt.Println("has feb 3", tbl.Has(civil.Date{Year: 2021, Month: 2, Day: 3}))
}

func mustParse(s string) interval.Interval {
	i, err := interval.Parse(s)
	if err != nil {
		panic(err)
	}
	return i
}
