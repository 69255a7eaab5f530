// Package model contains the observable stores the presenters render from.
// Each store wraps a remote data source, keeps the last confirmed state of its
// collection and announces every change with a domain.UpdateType.
// Stores never apply a change before the remote side confirmed it.
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

// PointsSource is the remote collection backing PointsModel.
// The remote package implements it over HTTP.
type PointsSource interface {
	FetchAll(ctx context.Context) ([]domain.Point, error)
	Create(ctx context.Context, point domain.Point) (domain.Point, error)
	Update(ctx context.Context, id string, point domain.Point) (domain.Point, error)
	Delete(ctx context.Context, id string) error
}

// creationKey reserves the in-flight slot for creations, which have no id
// until the remote side assigns one. At most one creation runs at a time.
const creationKey = "\x00create"

// PointsModel is the store of committed trip points.
// Subscribers receive the affected point as payload for PATCH, MINOR and MAJOR
// notifications and a zero Point for INIT.
type PointsModel struct {
	observable.Observable[domain.Point]

	source PointsSource
	log    *slog.Logger

	mu       sync.Mutex
	points   []domain.Point
	inFlight map[string]struct{}
	loaded   bool
}

// NewPointsModel constructs an empty, not yet loaded store.
func NewPointsModel(source PointsSource, log *slog.Logger) *PointsModel {
	if log == nil {
		log = slog.Default()
	}
	return &PointsModel{
		source:   source,
		log:      log.With("store", "points"),
		inFlight: map[string]struct{}{},
	}
}

// Init fetches the whole collection and announces UpdateInit.
// A failed fetch leaves the store empty; INIT is still emitted so dependents
// leave their loading state, and the returned error wraps domain.ErrFetchFailed.
func (m *PointsModel) Init(ctx context.Context) error {
	points, err := m.source.FetchAll(ctx)
	if err != nil {
		m.log.WarnContext(ctx, "points fetch failed, continuing empty", "error", err)
		points = nil
		err = fmt.Errorf("model.PointsModel.Init: %w: %w", domain.ErrFetchFailed, err)
	}

	m.mu.Lock()
	m.points = clonePoints(points)
	m.loaded = true
	m.mu.Unlock()

	m.Notify(domain.UpdateInit, domain.Point{})
	return err
}

// Loaded reports whether Init has completed.
func (m *PointsModel) Loaded() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loaded
}

// Points returns a copy of the stored points in store order.
func (m *PointsModel) Points() []domain.Point {
	m.mu.Lock()
	defer m.mu.Unlock()
	return clonePoints(m.points)
}

// Point returns the stored point with the given id.
func (m *PointsModel) Point(id string) (domain.Point, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if i := m.index(id); i >= 0 {
		return m.points[i].Clone(), true
	}
	return domain.Point{}, false
}

// IsBusy reports whether a mutation of the point with the given id is in flight.
func (m *PointsModel) IsBusy(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.inFlight[id]
	return ok
}

// AddPoint creates point remotely and, once confirmed, appends the returned
// entity and notifies with kind. On failure the store is untouched and the
// error wraps domain.ErrFailedToAdd.
func (m *PointsModel) AddPoint(ctx context.Context, kind domain.UpdateType, point domain.Point) (domain.Point, error) {
	if err := m.begin(creationKey); err != nil {
		return domain.Point{}, fmt.Errorf("model.PointsModel.AddPoint: %w", err)
	}

	created, err := m.source.Create(ctx, point)
	if err != nil {
		m.end(creationKey)
		m.log.WarnContext(ctx, "add rejected", "error", err)
		return domain.Point{}, fmt.Errorf("model.PointsModel.AddPoint: %w: %w", domain.ErrFailedToAdd, err)
	}

	m.mu.Lock()
	delete(m.inFlight, creationKey)
	m.points = append(m.points, created.Clone())
	m.mu.Unlock()

	m.log.DebugContext(ctx, "point added", "id", created.ID, "update", kind)
	m.Notify(kind, created.Clone())
	return created, nil
}

// UpdatePoint replaces the stored point with the same id once the remote side
// confirmed the change, then notifies with kind. The point must exist locally.
func (m *PointsModel) UpdatePoint(ctx context.Context, kind domain.UpdateType, point domain.Point) (domain.Point, error) {
	if err := m.beginExisting(point.ID); err != nil {
		return domain.Point{}, fmt.Errorf("model.PointsModel.UpdatePoint: %w", err)
	}

	updated, err := m.source.Update(ctx, point.ID, point)
	if err != nil {
		m.end(point.ID)
		m.log.WarnContext(ctx, "update rejected", "id", point.ID, "error", err)
		return domain.Point{}, fmt.Errorf("model.PointsModel.UpdatePoint: %w: %w", domain.ErrFailedToUpdate, err)
	}

	m.mu.Lock()
	delete(m.inFlight, point.ID)
	i := m.index(point.ID)
	if i >= 0 {
		m.points[i] = updated.Clone()
	}
	m.mu.Unlock()

	if i < 0 {
		// The store was reloaded while the request was running.
		m.log.DebugContext(ctx, "updated point no longer stored", "id", point.ID)
		return updated, nil
	}
	m.log.DebugContext(ctx, "point updated", "id", updated.ID, "update", kind)
	m.Notify(kind, updated.Clone())
	return updated, nil
}

// DeletePoint removes the point remotely and, once confirmed, locally.
// Subscribers receive the removed point as payload.
func (m *PointsModel) DeletePoint(ctx context.Context, kind domain.UpdateType, id string) error {
	if err := m.beginExisting(id); err != nil {
		return fmt.Errorf("model.PointsModel.DeletePoint: %w", err)
	}

	if err := m.source.Delete(ctx, id); err != nil {
		m.end(id)
		m.log.WarnContext(ctx, "delete rejected", "id", id, "error", err)
		return fmt.Errorf("model.PointsModel.DeletePoint: %w: %w", domain.ErrFailedToDelete, err)
	}

	m.mu.Lock()
	delete(m.inFlight, id)
	var removed domain.Point
	i := m.index(id)
	if i >= 0 {
		removed = m.points[i]
		m.points = slices.Delete(m.points, i, i+1)
	}
	m.mu.Unlock()

	if i < 0 {
		m.log.DebugContext(ctx, "deleted point no longer stored", "id", id)
		return nil
	}
	m.log.DebugContext(ctx, "point deleted", "id", id, "update", kind)
	m.Notify(kind, removed)
	return nil
}

// beginExisting checks that id is stored and has nothing in flight, then
// marks it busy.
func (m *PointsModel) beginExisting(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.index(id) < 0 {
		return fmt.Errorf("point %q: %w", id, domain.ErrNotFound)
	}
	return m.markLocked(id)
}

func (m *PointsModel) begin(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.markLocked(key)
}

func (m *PointsModel) markLocked(key string) error {
	if _, busy := m.inFlight[key]; busy {
		return domain.ErrConcurrentEdit
	}
	m.inFlight[key] = struct{}{}
	return nil
}

func (m *PointsModel) end(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inFlight, key)
}

// index must be called with mu held.
func (m *PointsModel) index(id string) int {
	return slices.IndexFunc(m.points, func(p domain.Point) bool { return p.ID == id })
}

func clonePoints(points []domain.Point) []domain.Point {
	out := make([]domain.Point, len(points))
	for i, p := range points {
		out[i] = p.Clone()
	}
	return out
}
