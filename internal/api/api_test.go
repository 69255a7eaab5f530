package api_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/big-trip/internal/api"
	"github.com/pkordes/big-trip/internal/domain"
)

func TestPoint_WireShape(t *testing.T) {
	p := domain.Point{
		ID:            "p1",
		Type:          domain.TypeCheckIn,
		DestinationID: "d1",
		BasePrice:     300,
		DateFrom:      time.Date(2025, 7, 10, 22, 55, 0, 0, time.UTC),
		DateTo:        time.Date(2025, 7, 11, 11, 22, 0, 0, time.UTC),
		IsFavorite:    true,
	}

	b, err := json.Marshal(api.FromPoint(p))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"id": "p1",
		"type": "check-in",
		"destination": "d1",
		"base_price": 300,
		"date_from": "2025-07-10T22:55:00Z",
		"date_to": "2025-07-11T11:22:00Z",
		"offers": [],
		"is_favorite": true
	}`, string(b))
}

func TestPoint_NewPointOmitsID(t *testing.T) {
	b, err := json.Marshal(api.FromPoint(domain.Point{Type: domain.TypeBus}))
	require.NoError(t, err)
	assert.NotContains(t, string(b), `"id"`)
}

func TestPoint_DomainFromWire(t *testing.T) {
	var w api.Point
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "p2", "type": "taxi", "destination": "d2", "base_price": 20,
		"date_from": "2025-07-10T12:00:00+02:00", "date_to": "2025-07-10T13:00:00+02:00",
		"offers": ["o1", "o2"], "is_favorite": false
	}`), &w))

	got := w.Domain()

	assert.Equal(t, domain.TypeTaxi, got.Type)
	assert.Equal(t, "d2", got.DestinationID)
	assert.Equal(t, []string{"o1", "o2"}, got.OfferIDs)
	assert.True(t, got.DateFrom.Equal(time.Date(2025, 7, 10, 10, 0, 0, 0, time.UTC)))
}

func TestCatalog_Conversions(t *testing.T) {
	d := domain.Destination{ID: "d1", Name: "Chamonix", Pictures: []domain.Picture{{Src: "a.jpg", Description: "view"}}}
	assert.Equal(t, d, api.FromDestination(d).Domain())

	g := domain.OfferGroup{Type: domain.TypeTaxi, Offers: []domain.Offer{{ID: "o1", Title: "Upgrade", Price: 120}}}
	assert.Equal(t, g, api.FromOfferGroup(g).Domain())
}

func TestOpenAPI_Embedded(t *testing.T) {
	assert.Contains(t, string(api.OpenAPI), "openapi: 3.0.3")
	assert.Contains(t, string(api.OpenAPI), "/points/{pointId}")
}

func TestFromExportRow(t *testing.T) {
	row := domain.ExportRow{
		PointID:     "p1",
		Type:        domain.TypeBus,
		Destination: "Geneva",
		DateFrom:    time.Date(2025, 7, 10, 12, 0, 0, 0, time.FixedZone("CET", 3600)),
		DateTo:      time.Date(2025, 7, 10, 14, 0, 0, 0, time.FixedZone("CET", 3600)),
		BasePrice:   40,
		OffersPrice: 15,
	}

	got := api.FromExportRow(row)

	assert.Equal(t, 55, got.Total)
	assert.Equal(t, []string{}, got.Offers)
	assert.Equal(t, time.UTC, got.DateFrom.Location())
	assert.Equal(t, 11, got.DateFrom.Hour())
}
