package service

import (
	"context"
	"fmt"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/repo"
)

// CatalogService serves the read-only destination and offer catalogs.
type CatalogService struct {
	destinations repo.DestinationRepo
	offers       repo.OfferRepo
}

// NewCatalogService constructs a CatalogService backed by the provided repos.
func NewCatalogService(destinations repo.DestinationRepo, offers repo.OfferRepo) *CatalogService {
	return &CatalogService{destinations: destinations, offers: offers}
}

// Destinations returns every destination ordered by name, never nil.
func (s *CatalogService) Destinations(ctx context.Context) ([]domain.Destination, error) {
	out, err := s.destinations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Destinations: %w", err)
	}
	if out == nil {
		return []domain.Destination{}, nil
	}
	return out, nil
}

// Offers returns one group per point type. Types without offers get an
// empty group so clients can rely on every type being present.
func (s *CatalogService) Offers(ctx context.Context) ([]domain.OfferGroup, error) {
	groups, err := s.offers.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.Offers: %w", err)
	}

	byType := make(map[domain.PointType]domain.OfferGroup, len(groups))
	for _, g := range groups {
		byType[g.Type] = g
	}
	out := make([]domain.OfferGroup, 0, len(domain.PointTypes))
	for _, t := range domain.PointTypes {
		g, ok := byType[t]
		if !ok {
			g = domain.OfferGroup{Type: t, Offers: []domain.Offer{}}
		}
		out = append(out, g)
	}
	return out, nil
}
