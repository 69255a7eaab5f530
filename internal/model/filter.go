package model

import (
	"sync"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/observable"
)

// FilterModel holds the single active filter. It starts at FilterEverything
// and has no remote side.
type FilterModel struct {
	observable.Observable[domain.FilterType]

	mu     sync.Mutex
	filter domain.FilterType
}

// NewFilterModel returns a FilterModel set to FilterEverything.
func NewFilterModel() *FilterModel {
	return &FilterModel{filter: domain.FilterEverything}
}

// Filter returns the active filter.
func (m *FilterModel) Filter() domain.FilterType {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.filter
}

// SetFilter stores f and notifies with kind, even when f is already active.
func (m *FilterModel) SetFilter(kind domain.UpdateType, f domain.FilterType) {
	m.mu.Lock()
	m.filter = f
	m.mu.Unlock()

	m.Notify(kind, f)
}
