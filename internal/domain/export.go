package domain

import "time"

// ExportRow is one point of the itinerary flattened for export, with its
// references resolved to display values.
type ExportRow struct {
	PointID     string
	Type        PointType
	Destination string
	DateFrom    time.Time
	DateTo      time.Time
	BasePrice   int
	// Offers holds the titles of the selected offers in selection order.
	Offers      []string
	OffersPrice int
	IsFavorite  bool
}

// Total is the base price plus every selected offer.
func (r ExportRow) Total() int { return r.BasePrice + r.OffersPrice }
