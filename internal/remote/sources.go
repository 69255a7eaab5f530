package remote

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkordes/big-trip/internal/api"
	"github.com/pkordes/big-trip/internal/domain"
)

// Points is the /points collection.
type Points struct{ c *Client }

// FetchAll returns every stored point.
func (p *Points) FetchAll(ctx context.Context) ([]domain.Point, error) {
	wire, err := do[[]api.Point](ctx, p.c, http.MethodGet, "/points", nil)
	if err != nil {
		return nil, fmt.Errorf("remote.Points.FetchAll: %w", err)
	}
	out := make([]domain.Point, len(wire))
	for i, w := range wire {
		out[i] = w.Domain()
	}
	return out, nil
}

// Create posts a new point and returns it with the id the server assigned.
func (p *Points) Create(ctx context.Context, point domain.Point) (domain.Point, error) {
	body := api.FromPoint(point)
	body.ID = ""
	created, err := do[api.Point](ctx, p.c, http.MethodPost, "/points", body)
	if err != nil {
		return domain.Point{}, fmt.Errorf("remote.Points.Create: %w", err)
	}
	return created.Domain(), nil
}

// Update replaces the point with the given id and returns the stored result.
func (p *Points) Update(ctx context.Context, id string, point domain.Point) (domain.Point, error) {
	updated, err := do[api.Point](ctx, p.c, http.MethodPut, "/points/"+url.PathEscape(id), api.FromPoint(point))
	if err != nil {
		return domain.Point{}, fmt.Errorf("remote.Points.Update: %w", err)
	}
	return updated.Domain(), nil
}

// Delete removes the point with the given id.
func (p *Points) Delete(ctx context.Context, id string) error {
	if _, err := do[struct{}](ctx, p.c, http.MethodDelete, "/points/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("remote.Points.Delete: %w", err)
	}
	return nil
}

// Destinations is the /destinations catalog.
type Destinations struct{ c *Client }

// FetchAll returns the whole destination catalog.
func (d *Destinations) FetchAll(ctx context.Context) ([]domain.Destination, error) {
	wire, err := do[[]api.Destination](ctx, d.c, http.MethodGet, "/destinations", nil)
	if err != nil {
		return nil, fmt.Errorf("remote.Destinations.FetchAll: %w", err)
	}
	out := make([]domain.Destination, len(wire))
	for i, w := range wire {
		out[i] = w.Domain()
	}
	return out, nil
}

// Offers is the /offers catalog.
type Offers struct{ c *Client }

// FetchAll returns the offer catalog grouped by point type.
func (o *Offers) FetchAll(ctx context.Context) ([]domain.OfferGroup, error) {
	wire, err := do[[]api.OfferGroup](ctx, o.c, http.MethodGet, "/offers", nil)
	if err != nil {
		return nil, fmt.Errorf("remote.Offers.FetchAll: %w", err)
	}
	out := make([]domain.OfferGroup, len(wire))
	for i, w := range wire {
		out[i] = w.Domain()
	}
	return out, nil
}
