package domain

import "slices"

// FilterType selects which points are visible relative to the current time.
type FilterType string

const (
	FilterEverything FilterType = "everything"
	FilterFuture     FilterType = "future"
	FilterPresent    FilterType = "present"
	FilterPast       FilterType = "past"
)

// FilterTypes lists the filters in display order.
var FilterTypes = []FilterType{FilterEverything, FilterFuture, FilterPresent, FilterPast}

// Valid reports whether f is one of FilterTypes.
func (f FilterType) Valid() bool {
	return slices.Contains(FilterTypes, f)
}

// EmptyMessage is the text shown when a filter yields no points.
func (f FilterType) EmptyMessage() string {
	switch f {
	case FilterFuture:
		return "There are no future events now"
	case FilterPresent:
		return "There are no present events now"
	case FilterPast:
		return "There are no past events now"
	}
	return "Click New Event to create your first point"
}

// SortType orders the visible list.
type SortType string

const (
	SortDay   SortType = "day"
	SortTime  SortType = "time"
	SortPrice SortType = "price"
)

// DefaultSort is the sort applied on startup and after every major update.
const DefaultSort = SortDay

// SortTypes lists the sort options in display order.
var SortTypes = []SortType{SortDay, SortTime, SortPrice}

// Valid reports whether s is one of SortTypes.
func (s SortType) Valid() bool {
	return slices.Contains(SortTypes, s)
}
