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

// DestinationsSource is the remote collection backing DestinationsModel.
type DestinationsSource interface {
	FetchAll(ctx context.Context) ([]domain.Destination, error)
}

// DestinationsModel holds the immutable destination catalog.
// It only ever notifies UpdateInit.
type DestinationsModel struct {
	observable.Observable[struct{}]

	source DestinationsSource
	log    *slog.Logger

	mu           sync.RWMutex
	destinations []domain.Destination
	loaded       bool
}

// NewDestinationsModel constructs an empty, not yet loaded store.
func NewDestinationsModel(source DestinationsSource, log *slog.Logger) *DestinationsModel {
	if log == nil {
		log = slog.Default()
	}
	return &DestinationsModel{source: source, log: log.With("store", "destinations")}
}

// Init loads the catalog. See PointsModel.Init for the failure policy.
func (m *DestinationsModel) Init(ctx context.Context) error {
	destinations, err := m.source.FetchAll(ctx)
	if err != nil {
		m.log.WarnContext(ctx, "destinations fetch failed, continuing empty", "error", err)
		destinations = nil
		err = fmt.Errorf("model.DestinationsModel.Init: %w: %w", domain.ErrFetchFailed, err)
	}

	m.mu.Lock()
	m.destinations = slices.Clone(destinations)
	m.loaded = true
	m.mu.Unlock()

	m.Notify(domain.UpdateInit, struct{}{})
	return err
}

// Loaded reports whether Init has completed.
func (m *DestinationsModel) Loaded() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loaded
}

// Destinations returns the catalog in remote order.
func (m *DestinationsModel) Destinations() []domain.Destination {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.destinations)
}

// Destination looks a destination up by id.
func (m *DestinationsModel) Destination(id string) (domain.Destination, bool) {
	return m.find(func(d domain.Destination) bool { return d.ID == id })
}

// DestinationByName looks a destination up by its unique display name.
func (m *DestinationsModel) DestinationByName(name string) (domain.Destination, bool) {
	return m.find(func(d domain.Destination) bool { return d.Name == name })
}

func (m *DestinationsModel) find(match func(domain.Destination) bool) (domain.Destination, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := slices.IndexFunc(m.destinations, match); i >= 0 {
		return m.destinations[i], true
	}
	return domain.Destination{}, false
}
