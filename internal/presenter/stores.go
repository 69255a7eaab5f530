// Package presenter turns store notifications into surface updates and user
// intent into store mutations.
//
// TripPresenter owns the list: it decides between loading, empty and
// populated states, keeps one PointController per visible point keyed by id
// and holds the single open-draft slot. Editors never touch a store directly;
// every mutation goes through a Dispatcher and only becomes visible once the
// store confirms it with a notification.
//
// Presenters are not safe for concurrent use. Drive them from one goroutine,
// the same one that calls into the stores.
package presenter

import (
	"context"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/observable"
)

// PointsReader is the read side of the points store.
type PointsReader interface {
	Subscribe(l observable.Listener[domain.Point]) (unsubscribe func())
	Points() []domain.Point
}

// PointsMutator is the write side of the points store.
type PointsMutator interface {
	AddPoint(ctx context.Context, kind domain.UpdateType, point domain.Point) (domain.Point, error)
	UpdatePoint(ctx context.Context, kind domain.UpdateType, point domain.Point) (domain.Point, error)
	DeletePoint(ctx context.Context, kind domain.UpdateType, id string) error
}

// PointsStore is satisfied by *model.PointsModel.
type PointsStore interface {
	PointsReader
	PointsMutator
}

// DestinationsStore is satisfied by *model.DestinationsModel.
type DestinationsStore interface {
	Subscribe(l observable.Listener[struct{}]) (unsubscribe func())
	Destinations() []domain.Destination
}

// OffersStore is satisfied by *model.OffersModel.
type OffersStore interface {
	Subscribe(l observable.Listener[struct{}]) (unsubscribe func())
	Groups() []domain.OfferGroup
}

// FilterStore is satisfied by *model.FilterModel.
type FilterStore interface {
	Subscribe(l observable.Listener[domain.FilterType]) (unsubscribe func())
	Filter() domain.FilterType
	SetFilter(kind domain.UpdateType, f domain.FilterType)
}
