// Package visible derives what the itinerary shows from the stores' state.
// Every function here is pure: the same points, filter, sort and reference
// time always yield the same result, and inputs are never modified.
package visible

import (
	"cmp"
	"slices"
	"time"

	"github.com/pkordes/big-trip/internal/domain"
)

// Matches reports whether p passes filter f at time now.
//
//	future:  DateFrom > now
//	present: DateFrom <= now <= DateTo
//	past:    DateTo < now
func Matches(p domain.Point, f domain.FilterType, now time.Time) bool {
	switch f {
	case domain.FilterFuture:
		return p.DateFrom.After(now)
	case domain.FilterPresent:
		return !p.DateFrom.After(now) && !p.DateTo.Before(now)
	case domain.FilterPast:
		return p.DateTo.Before(now)
	}
	return true
}

// Filter returns the points that pass f, keeping their relative order.
func Filter(points []domain.Point, f domain.FilterType, now time.Time) []domain.Point {
	out := make([]domain.Point, 0, len(points))
	for _, p := range points {
		if Matches(p, f, now) {
			out = append(out, p)
		}
	}
	return out
}

// Sort returns a stably sorted copy of points.
// Day sorts by DateFrom ascending, time by duration descending and price by
// BasePrice descending.
func Sort(points []domain.Point, s domain.SortType) []domain.Point {
	out := slices.Clone(points)
	slices.SortStableFunc(out, compareFunc(s))
	return out
}

func compareFunc(s domain.SortType) func(a, b domain.Point) int {
	switch s {
	case domain.SortTime:
		return func(a, b domain.Point) int { return cmp.Compare(b.Duration(), a.Duration()) }
	case domain.SortPrice:
		return func(a, b domain.Point) int { return cmp.Compare(b.BasePrice, a.BasePrice) }
	}
	return func(a, b domain.Point) int { return a.DateFrom.Compare(b.DateFrom) }
}

// Points is the visible list: all filtered by f, then sorted by s.
func Points(all []domain.Point, f domain.FilterType, s domain.SortType, now time.Time) []domain.Point {
	return Sort(Filter(all, f, now), s)
}

// Counts returns, for every filter, how many of all pass it. It always looks
// at the full set, never at the currently visible subset.
func Counts(all []domain.Point, now time.Time) map[domain.FilterType]int {
	counts := make(map[domain.FilterType]int, len(domain.FilterTypes))
	for _, f := range domain.FilterTypes {
		counts[f] = 0
		for _, p := range all {
			if Matches(p, f, now) {
				counts[f]++
			}
		}
	}
	return counts
}
