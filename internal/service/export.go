package service

import (
	"context"
	"fmt"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/repo"
	"github.com/pkordes/big-trip/internal/visible"
)

// ExportService assembles a flat export of the whole itinerary.
type ExportService struct {
	points       repo.PointRepo
	destinations repo.DestinationRepo
	offers       repo.OfferRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(points repo.PointRepo, destinations repo.DestinationRepo, offers repo.OfferRepo) *ExportService {
	return &ExportService{points: points, destinations: destinations, offers: offers}
}

// Export returns one row per point in day order. References that no longer
// resolve export as empty values instead of failing the whole export.
func (s *ExportService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	points, err := s.points.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: points: %w", err)
	}
	destinations, err := s.destinations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: destinations: %w", err)
	}
	groups, err := s.offers.ListGroups(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Export: offers: %w", err)
	}

	names := make(map[string]string, len(destinations))
	for _, d := range destinations {
		names[d.ID] = d.Name
	}
	byType := make(map[domain.PointType]domain.OfferGroup, len(groups))
	for _, g := range groups {
		byType[g.Type] = g
	}

	rows := make([]domain.ExportRow, 0, len(points))
	for _, p := range visible.Sort(points, domain.SortDay) {
		row := domain.ExportRow{
			PointID:     p.ID,
			Type:        p.Type,
			Destination: names[p.DestinationID],
			DateFrom:    p.DateFrom,
			DateTo:      p.DateTo,
			BasePrice:   p.BasePrice,
			IsFavorite:  p.IsFavorite,
		}
		for _, id := range p.OfferIDs {
			if o, ok := byType[p.Type].Find(id); ok {
				row.Offers = append(row.Offers, o.Title)
				row.OffersPrice += o.Price
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
