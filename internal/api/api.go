// Package api holds the JSON wire format shared by the HTTP server and the
// remote client, plus the OpenAPI document describing it.
package api

import (
	_ "embed"
	"slices"
	"time"

	"github.com/pkordes/big-trip/internal/domain"
)

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte

// Point is the wire shape of a route point.
type Point struct {
	ID          string    `json:"id,omitempty"`
	Type        string    `json:"type"`
	Destination string    `json:"destination"`
	BasePrice   int       `json:"base_price"`
	DateFrom    time.Time `json:"date_from"`
	DateTo      time.Time `json:"date_to"`
	Offers      []string  `json:"offers"`
	IsFavorite  bool      `json:"is_favorite"`
}

// Picture is one illustration of a destination.
type Picture struct {
	Src         string `json:"src"`
	Description string `json:"description"`
}

// Destination is the wire shape of a catalog destination.
type Destination struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Pictures    []Picture `json:"pictures"`
}

// Offer is a single selectable add-on.
type Offer struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price int    `json:"price"`
}

// OfferGroup lists the offers available to one point type.
type OfferGroup struct {
	Type   string  `json:"type"`
	Offers []Offer `json:"offers"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}

// ---- conversions -----------------------------------------------------------

// FromPoint converts a domain point to its wire shape. Offers is never null.
func FromPoint(p domain.Point) Point {
	offers := slices.Clone(p.OfferIDs)
	if offers == nil {
		offers = []string{}
	}
	return Point{
		ID:          p.ID,
		Type:        string(p.Type),
		Destination: p.DestinationID,
		BasePrice:   p.BasePrice,
		DateFrom:    p.DateFrom.UTC(),
		DateTo:      p.DateTo.UTC(),
		Offers:      offers,
		IsFavorite:  p.IsFavorite,
	}
}

// Domain converts the wire point back into the domain type.
func (p Point) Domain() domain.Point {
	return domain.Point{
		ID:            p.ID,
		Type:          domain.PointType(p.Type),
		DestinationID: p.Destination,
		BasePrice:     p.BasePrice,
		DateFrom:      p.DateFrom,
		DateTo:        p.DateTo,
		OfferIDs:      slices.Clone(p.Offers),
		IsFavorite:    p.IsFavorite,
	}
}

// FromDestination converts a domain destination to its wire shape.
func FromDestination(d domain.Destination) Destination {
	pics := make([]Picture, 0, len(d.Pictures))
	for _, p := range d.Pictures {
		pics = append(pics, Picture{Src: p.Src, Description: p.Description})
	}
	return Destination{ID: d.ID, Name: d.Name, Description: d.Description, Pictures: pics}
}

// Domain converts the wire destination back into the domain type.
func (d Destination) Domain() domain.Destination {
	var pics []domain.Picture
	for _, p := range d.Pictures {
		pics = append(pics, domain.Picture{Src: p.Src, Description: p.Description})
	}
	return domain.Destination{ID: d.ID, Name: d.Name, Description: d.Description, Pictures: pics}
}

// FromOfferGroup converts a domain offer group to its wire shape.
func FromOfferGroup(g domain.OfferGroup) OfferGroup {
	offers := make([]Offer, 0, len(g.Offers))
	for _, o := range g.Offers {
		offers = append(offers, Offer{ID: o.ID, Title: o.Title, Price: o.Price})
	}
	return OfferGroup{Type: string(g.Type), Offers: offers}
}

// Domain converts the wire offer group back into the domain type.
func (g OfferGroup) Domain() domain.OfferGroup {
	var offers []domain.Offer
	for _, o := range g.Offers {
		offers = append(offers, domain.Offer{ID: o.ID, Title: o.Title, Price: o.Price})
	}
	return domain.OfferGroup{Type: domain.PointType(g.Type), Offers: offers}
}

// ExportRow is one line of GET /export.
type ExportRow struct {
	PointID     string    `json:"point_id"`
	Type        string    `json:"type"`
	Destination string    `json:"destination"`
	DateFrom    time.Time `json:"date_from"`
	DateTo      time.Time `json:"date_to"`
	BasePrice   int       `json:"base_price"`
	Offers      []string  `json:"offers"`
	OffersPrice int       `json:"offers_price"`
	Total       int       `json:"total"`
	IsFavorite  bool      `json:"is_favorite"`
}

// FromExportRow converts a domain export row to its wire shape.
func FromExportRow(r domain.ExportRow) ExportRow {
	offers := r.Offers
	if offers == nil {
		offers = []string{}
	}
	return ExportRow{
		PointID:     r.PointID,
		Type:        string(r.Type),
		Destination: r.Destination,
		DateFrom:    r.DateFrom.UTC(),
		DateTo:      r.DateTo.UTC(),
		BasePrice:   r.BasePrice,
		Offers:      offers,
		OffersPrice: r.OffersPrice,
		Total:       r.Total(),
		IsFavorite:  r.IsFavorite,
	}
}
