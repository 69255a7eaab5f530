package model

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/observable"
)

// OffersSource is the remote collection backing OffersModel.
type OffersSource interface {
	FetchAll(ctx context.Context) ([]domain.OfferGroup, error)
}

// OffersModel holds the offer catalog grouped by point type.
// It only ever notifies UpdateInit.
type OffersModel struct {
	observable.Observable[struct{}]

	source OffersSource
	log    *slog.Logger

	mu     sync.RWMutex
	groups []domain.OfferGroup
	loaded bool
}

// NewOffersModel constructs an empty, not yet loaded store.
func NewOffersModel(source OffersSource, log *slog.Logger) *OffersModel {
	if log == nil {
		log = slog.Default()
	}
	return &OffersModel{source: source, log: log.With("store", "offers")}
}

// Init loads the catalog. See PointsModel.Init for the failure policy.
func (m *OffersModel) Init(ctx context.Context) error {
	groups, err := m.source.FetchAll(ctx)
	if err != nil {
		m.log.WarnContext(ctx, "offers fetch failed, continuing empty", "error", err)
		groups = nil
		err = fmt.Errorf("model.OffersModel.Init: %w: %w", domain.ErrFetchFailed, err)
	}

	m.mu.Lock()
	m.groups = slices.Clone(groups)
	m.loaded = true
	m.mu.Unlock()

	m.Notify(domain.UpdateInit, struct{}{})
	return err
}

// Loaded reports whether Init has completed.
func (m *OffersModel) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

// Groups returns every offer group in remote order.
func (m *OffersModel) Groups() []domain.OfferGroup {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.groups)
}

// OffersByType returns the offers available to t, or nil if t has none.
func (m *OffersModel) OffersByType(t domain.PointType) []domain.Offer {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, g := range m.groups {
		if g.Type == t {
			return slices.Clone(g.Offers)
		}
	}
	return nil
}

// Offer returns a single offer of type t.
func (m *OffersModel) Offer(t domain.PointType, id string) (domain.Offer, bool) {
	for _, o := range m.OffersByType(t) {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Offer{}, false
}
