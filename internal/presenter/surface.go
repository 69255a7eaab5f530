package presenter

import (
	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/visible"
)

// Catalog is the reference data a surface needs to draw a point or a draft.
type Catalog struct {
	Destinations []domain.Destination
	Offers       []domain.OfferGroup
}

// Destination looks a destination up by id.
func (c Catalog) Destination(id string) (domain.Destination, bool) {
	for _, d := range c.Destinations {
		if d.ID == id {
			return d, true
		}
	}
	return domain.Destination{}, false
}

// DestinationByName looks a destination up by its display name.
func (c Catalog) DestinationByName(name string) (domain.Destination, bool) {
	for _, d := range c.Destinations {
		if d.Name == name {
			return d, true
		}
	}
	return domain.Destination{}, false
}

// OfferGroup returns the offers available to t.
func (c Catalog) OfferGroup(t domain.PointType) domain.OfferGroup {
	for _, g := range c.Offers {
		if g.Type == t {
			return g
		}
	}
	return domain.OfferGroup{Type: t}
}

// Surface is where TripPresenter draws the list. Implementations own layout;
// the presenter only decides what is shown.
type Surface interface {
	ShowLoading()
	ShowEmpty(filter domain.FilterType)
	ShowSort(current domain.SortType)
	// NewItem allocates the fragment for one point. Items are requested in
	// visible order.
	NewItem(id string) ItemSurface
	// NewCreator allocates the fragment for the new-point form.
	NewCreator() ItemSurface
	// Clear removes the loading, empty and sort fragments.
	Clear()
}

// ItemSurface is the fragment owned by a single controller.
type ItemSurface interface {
	RenderPoint(point domain.Point, catalog Catalog)
	RenderEditor(frame EditorFrame)
	Destroy()
}

// EditorFrame is everything needed to draw an open editor.
type EditorFrame struct {
	Mode    Mode
	Status  Status
	Draft   Draft
	Err     error
	Catalog Catalog
}

// FilterItem is one selectable filter with the number of points it matches.
type FilterItem struct {
	Type     domain.FilterType
	Count    int
	Disabled bool
}

// FilterSurface draws the filter selector.
type FilterSurface interface {
	RenderFilters(items []FilterItem, current domain.FilterType)
}

// SummarySurface draws the trip header.
type SummarySurface interface {
	RenderSummary(summary visible.TripSummary)
	HideSummary()
}
