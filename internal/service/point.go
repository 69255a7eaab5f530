// Package service contains the business logic for the Big Trip API.
// Services check data invariants and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/repo"
)

// PointService implements the point operations behind /points.
// It holds the catalog repos because a point must reference an existing
// destination and offers of its own type.
type PointService struct {
	points       repo.PointRepo
	destinations repo.DestinationRepo
	offers       repo.OfferRepo
}

// NewPointService constructs a PointService backed by the provided repos.
func NewPointService(points repo.PointRepo, destinations repo.DestinationRepo, offers repo.OfferRepo) *PointService {
	return &PointService{points: points, destinations: destinations, offers: offers}
}

// List returns every point in insertion order.
// Always returns a non-nil slice so the JSON body is [] rather than null.
func (s *PointService) List(ctx context.Context) ([]domain.Point, error) {
	points, err := s.points.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.PointService.List: %w", err)
	}
	if points == nil {
		return []domain.Point{}, nil
	}
	return points, nil
}

// Create checks and persists a new point. Any client-supplied id is ignored.
// Returns domain.ErrValidation if the point breaks a data invariant.
func (s *PointService) Create(ctx context.Context, p domain.Point) (domain.Point, error) {
	if err := s.check(ctx, p); err != nil {
		return domain.Point{}, fmt.Errorf("service.PointService.Create: %w", err)
	}
	created, err := s.points.Create(ctx, p)
	if err != nil {
		return domain.Point{}, fmt.Errorf("service.PointService.Create: %w", err)
	}
	return created, nil
}

// Update replaces the point with the given id. The id in the body, if any,
// must match the path.
// Returns domain.ErrNotFound if no such point exists.
func (s *PointService) Update(ctx context.Context, id uuid.UUID, p domain.Point) (domain.Point, error) {
	if p.ID != "" && p.ID != id.String() {
		return domain.Point{}, fmt.Errorf("service.PointService.Update: %w: body id %q does not match path", domain.ErrValidation, p.ID)
	}
	if err := s.check(ctx, p); err != nil {
		return domain.Point{}, fmt.Errorf("service.PointService.Update: %w", err)
	}
	updated, err := s.points.Update(ctx, id, p)
	if err != nil {
		return domain.Point{}, fmt.Errorf("service.PointService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a point by id.
// Returns domain.ErrNotFound if no such point exists.
func (s *PointService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.points.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PointService.Delete: %w", err)
	}
	return nil
}

// check enforces the invariants common to Create and Update:
//   - Type is a known point type and BasePrice is non-negative.
//   - DateFrom and DateTo are set and DateTo is not before DateFrom.
//   - DestinationID names a stored destination.
//   - OfferIDs are offers of Type, each at most once.
func (s *PointService) check(ctx context.Context, p domain.Point) error {
	if err := validatePoint(p); err != nil {
		return err
	}

	destID, err := uuid.Parse(p.DestinationID)
	if err != nil {
		return fmt.Errorf("%w: destination %q is not a valid id", domain.ErrValidation, p.DestinationID)
	}
	if _, err := s.destinations.GetByID(ctx, destID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: destination %q does not exist", domain.ErrValidation, p.DestinationID)
		}
		return err
	}

	if len(p.OfferIDs) == 0 {
		return nil
	}
	available, err := s.offers.ListByType(ctx, p.Type)
	if err != nil {
		return err
	}
	group := domain.OfferGroup{Type: p.Type, Offers: available}
	for _, id := range p.OfferIDs {
		if _, ok := group.Find(id); !ok {
			return fmt.Errorf("%w: offer %q is not available for %s", domain.ErrValidation, id, p.Type)
		}
	}
	return nil
}

// validatePoint checks the fields that need no lookup.
func validatePoint(p domain.Point) error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w: unknown type %q", domain.ErrValidation, p.Type)
	}
	if p.BasePrice < 0 {
		return fmt.Errorf("%w: base_price must not be negative", domain.ErrValidation)
	}
	if p.BasePrice > domain.MaxBasePrice {
		return fmt.Errorf("%w: base_price must not exceed %d", domain.ErrValidation, domain.MaxBasePrice)
	}
	if p.DateFrom.IsZero() || p.DateTo.IsZero() {
		return fmt.Errorf("%w: date_from and date_to are required", domain.ErrValidation)
	}
	if p.DateTo.Before(p.DateFrom) {
		return fmt.Errorf("%w: date_to must not be before date_from", domain.ErrValidation)
	}
	seen := make([]string, 0, len(p.OfferIDs))
	for _, id := range p.OfferIDs {
		if slices.Contains(seen, id) {
			return fmt.Errorf("%w: offer %q selected twice", domain.ErrValidation, id)
		}
		seen = append(seen, id)
	}
	return nil
}
