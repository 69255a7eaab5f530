// Package domain contains the core data types for the Big Trip itinerary.
// This package has no dependencies outside the standard library and is imported
// by every other internal package (model, presenter, remote, repo, handler).
package domain

import (
	"math"
	"slices"
	"time"
)

// PointType is the kind of a trip point. The catalog is fixed; see PointTypes.
type PointType string

const (
	TypeTaxi        PointType = "taxi"
	TypeBus         PointType = "bus"
	TypeTrain       PointType = "train"
	TypeShip        PointType = "ship"
	TypeDrive       PointType = "drive"
	TypeFlight      PointType = "flight"
	TypeCheckIn     PointType = "check-in"
	TypeSightseeing PointType = "sightseeing"
	TypeRestaurant  PointType = "restaurant"
)

// PointTypes lists every valid PointType in display order.
var PointTypes = []PointType{
	TypeTaxi, TypeBus, TypeTrain, TypeShip, TypeDrive,
	TypeFlight, TypeCheckIn, TypeSightseeing, TypeRestaurant,
}

// Valid reports whether t belongs to the fixed type catalog.
func (t PointType) Valid() bool {
	return slices.Contains(PointTypes, t)
}

// MaxBasePrice is the largest price the points table can store.
const MaxBasePrice = math.MaxInt32

// DefaultPointType is the type a freshly created draft starts with.
const DefaultPointType = TypeFlight

// Point is a single dated event of the itinerary.
// Invariants: DateFrom is not after DateTo, BasePrice is non-negative and
// OfferIDs holds no duplicates. Points are owned by the points store and are
// only ever replaced after the remote side confirms a mutation.
type Point struct {
	ID            string
	Type          PointType
	DestinationID string
	BasePrice     int
	DateFrom      time.Time
	DateTo        time.Time
	OfferIDs      []string
	IsFavorite    bool
}

// Duration returns DateTo - DateFrom.
func (p Point) Duration() time.Duration {
	return p.DateTo.Sub(p.DateFrom)
}

// HasOffer reports whether the offer with the given id is selected.
func (p Point) HasOffer(id string) bool {
	return slices.Contains(p.OfferIDs, id)
}

// Clone returns a deep copy so callers can mutate OfferIDs freely.
func (p Point) Clone() Point {
	p.OfferIDs = slices.Clone(p.OfferIDs)
	return p
}

// Equal reports whether two points carry the same values.
// Offer order is significant.
func (p Point) Equal(o Point) bool {
	return p.ID == o.ID &&
		p.Type == o.Type &&
		p.DestinationID == o.DestinationID &&
		p.BasePrice == o.BasePrice &&
		p.DateFrom.Equal(o.DateFrom) &&
		p.DateTo.Equal(o.DateTo) &&
		slices.Equal(p.OfferIDs, o.OfferIDs) &&
		p.IsFavorite == o.IsFavorite
}
