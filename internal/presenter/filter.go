package presenter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/visible"
)

// FilterPresenter keeps the filter selector in sync with the points store.
// Counts are taken over the full point set, never the filtered one.
type FilterPresenter struct {
	points  PointsReader
	filter  FilterStore
	surface FilterSurface
	now     func() time.Time
	log     *slog.Logger

	items       []FilterItem
	unsubscribe []func()
}

// NewFilterPresenter subscribes to points and filter and renders once.
func NewFilterPresenter(points PointsReader, filter FilterStore, surface FilterSurface, now func() time.Time, log *slog.Logger) *FilterPresenter {
	if now == nil {
		now = time.Now
	}
	if log == nil {
		log = slog.Default()
	}
	f := &FilterPresenter{
		points:  points,
		filter:  filter,
		surface: surface,
		now:     now,
		log:     log.With("presenter", "filter"),
	}
	f.unsubscribe = []func(){
		points.Subscribe(func(domain.UpdateType, domain.Point) { f.render() }),
		filter.Subscribe(func(domain.UpdateType, domain.FilterType) { f.render() }),
	}
	f.render()
	return f
}

// Close unsubscribes from both stores.
func (f *FilterPresenter) Close() {
	for _, u := range f.unsubscribe {
		u()
	}
	f.unsubscribe = nil
}

// Items returns the last rendered filter items.
func (f *FilterPresenter) Items() []FilterItem {
	out := make([]FilterItem, len(f.items))
	copy(out, f.items)
	return out
}

// Select switches the active filter. Re-selecting the current filter does
// nothing; a filter with no matching points cannot be selected.
func (f *FilterPresenter) Select(t domain.FilterType) error {
	if !t.Valid() {
		return fmt.Errorf("presenter.FilterPresenter.Select: %w: unknown filter %q", domain.ErrValidation, t)
	}
	if t == f.filter.Filter() {
		return nil
	}
	for _, it := range f.items {
		if it.Type == t && it.Disabled {
			return fmt.Errorf("presenter.FilterPresenter.Select: %w: filter %q matches no points", domain.ErrValidation, t)
		}
	}
	f.filter.SetFilter(domain.UpdateMajor, t)
	return nil
}

func (f *FilterPresenter) render() {
	counts := visible.Counts(f.points.Points(), f.now())
	items := make([]FilterItem, 0, len(domain.FilterTypes))
	for _, t := range domain.FilterTypes {
		items = append(items, FilterItem{Type: t, Count: counts[t], Disabled: counts[t] == 0})
	}
	f.items = items
	f.surface.RenderFilters(items, f.filter.Filter())
}
