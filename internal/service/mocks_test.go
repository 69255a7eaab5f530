package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/repo"
)

// ---- mock repos ------------------------------------------------------------

// mockPointRepo is a hand-written test double for repo.PointRepo.
type mockPointRepo struct {
	list    func(ctx context.Context) ([]domain.Point, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Point, error)
	create  func(ctx context.Context, p domain.Point) (domain.Point, error)
	update  func(ctx context.Context, id uuid.UUID, p domain.Point) (domain.Point, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPointRepo) List(ctx context.Context) ([]domain.Point, error) { return m.list(ctx) }
func (m *mockPointRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Point, error) {
	return m.getByID(ctx, id)
}
func (m *mockPointRepo) Create(ctx context.Context, p domain.Point) (domain.Point, error) {
	return m.create(ctx, p)
}
func (m *mockPointRepo) Update(ctx context.Context, id uuid.UUID, p domain.Point) (domain.Point, error) {
	return m.update(ctx, id, p)
}
func (m *mockPointRepo) Delete(ctx context.Context, id uuid.UUID) error { return m.delete(ctx, id) }

// mockDestinationRepo is a hand-written test double for repo.DestinationRepo.
type mockDestinationRepo struct {
	list    func(ctx context.Context) ([]domain.Destination, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Destination, error)
	create  func(ctx context.Context, d domain.Destination) (domain.Destination, error)
}

func (m *mockDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	return m.list(ctx)
}
func (m *mockDestinationRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Destination, error) {
	return m.getByID(ctx, id)
}
func (m *mockDestinationRepo) Create(ctx context.Context, d domain.Destination) (domain.Destination, error) {
	return m.create(ctx, d)
}

// mockOfferRepo is a hand-written test double for repo.OfferRepo.
type mockOfferRepo struct {
	listGroups func(ctx context.Context) ([]domain.OfferGroup, error)
	listByType func(ctx context.Context, t domain.PointType) ([]domain.Offer, error)
	create     func(ctx context.Context, t domain.PointType, o domain.Offer) (domain.Offer, error)
}

func (m *mockOfferRepo) ListGroups(ctx context.Context) ([]domain.OfferGroup, error) {
	return m.listGroups(ctx)
}
func (m *mockOfferRepo) ListByType(ctx context.Context, t domain.PointType) ([]domain.Offer, error) {
	return m.listByType(ctx, t)
}
func (m *mockOfferRepo) Create(ctx context.Context, t domain.PointType, o domain.Offer) (domain.Offer, error) {
	return m.create(ctx, t, o)
}

// compile-time checks: mocks must satisfy the repo interfaces.
var (
	_ repo.PointRepo       = (*mockPointRepo)(nil)
	_ repo.DestinationRepo = (*mockDestinationRepo)(nil)
	_ repo.OfferRepo       = (*mockOfferRepo)(nil)
)
