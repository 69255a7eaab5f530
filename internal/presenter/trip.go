package presenter

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/visible"
)

// ListState is the coarse state of the itinerary list.
type ListState int

const (
	StateLoading ListState = iota
	StateEmpty
	StatePopulated
)

func (s ListState) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StatePopulated:
		return "populated"
	}
	return "loading"
}

// loaded bits, one per store that must report INIT before the list renders.
const (
	loadedPoints = 1 << iota
	loadedDestinations
	loadedOffers

	loadedAll = loadedPoints | loadedDestinations | loadedOffers
)

// TripPresenterParams wires a TripPresenter.
type TripPresenterParams struct {
	Points       PointsStore
	Destinations DestinationsStore
	Offers       OffersStore
	Filter       FilterStore
	Surface      Surface

	// Dispatcher defaults to one writing to Points.
	Dispatcher *Dispatcher
	// Now defaults to time.Now. Filters are evaluated against it on every rebuild.
	Now func() time.Time
	Log *slog.Logger
}

// TripPresenter is the list orchestrator. It reacts to every store:
//
//	INIT   counts towards leaving the loading state
//	PATCH  re-renders the one controller with the patched id
//	MINOR  destroys all controllers and rebuilds the list
//	MAJOR  same as MINOR and resets the sort to day
//
// It also owns the single open-draft slot shared by all controllers and the
// new-point form.
type TripPresenter struct {
	points       PointsStore
	destinations DestinationsStore
	offers       OffersStore
	filter       FilterStore
	surface      Surface
	dispatcher   *Dispatcher
	now          func() time.Time
	log          *slog.Logger

	loaded  int
	state   ListState
	sort    domain.SortType
	items   map[string]*PointController
	order   []string
	creator *PointCreator
	draft   draftOwner

	unsubscribe []func()
}

// NewTripPresenter subscribes to all four stores and shows the loading state.
func NewTripPresenter(p TripPresenterParams) *TripPresenter {
	if p.Log == nil {
		p.Log = slog.Default()
	}
	if p.Now == nil {
		p.Now = time.Now
	}
	if p.Dispatcher == nil {
		p.Dispatcher = NewDispatcher(p.Points, p.Log)
	}

	t := &TripPresenter{
		points:       p.Points,
		destinations: p.Destinations,
		offers:       p.Offers,
		filter:       p.Filter,
		surface:      p.Surface,
		dispatcher:   p.Dispatcher,
		now:          p.Now,
		log:          p.Log.With("presenter", "trip"),
		state:        StateLoading,
		sort:         domain.DefaultSort,
		items:        map[string]*PointController{},
	}

	t.unsubscribe = []func(){
		t.offers.Subscribe(func(kind domain.UpdateType, _ struct{}) { t.handleCatalogEvent(loadedOffers, kind) }),
		t.destinations.Subscribe(func(kind domain.UpdateType, _ struct{}) { t.handleCatalogEvent(loadedDestinations, kind) }),
		t.points.Subscribe(t.handlePointsEvent),
		t.filter.Subscribe(t.handleFilterEvent),
	}

	t.surface.ShowLoading()
	return t
}

// Close unsubscribes from every store and destroys all controllers.
func (t *TripPresenter) Close() {
	for _, u := range t.unsubscribe {
		u()
	}
	t.unsubscribe = nil
	t.clear(false)
}

// State returns the current list state.
func (t *TripPresenter) State() ListState { return t.state }

// Sort returns the active sort.
func (t *TripPresenter) Sort() domain.SortType { return t.sort }

// Visible returns the ids of the rendered points in display order.
func (t *TripPresenter) Visible() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Controller returns the live controller for id.
func (t *TripPresenter) Controller(id string) (*PointController, bool) {
	c, ok := t.items[id]
	return c, ok
}

// Creator returns the open new-point form, or nil.
func (t *TripPresenter) Creator() *PointCreator { return t.creator }

// HasOpenDraft reports whether any editor currently holds the draft slot.
func (t *TripPresenter) HasOpenDraft() bool { return t.draft != nil }

// SetSort re-orders the list. Selecting the active sort does nothing.
func (t *TripPresenter) SetSort(s domain.SortType) error {
	if !s.Valid() {
		return fmt.Errorf("presenter.TripPresenter.SetSort: %w: unknown sort %q", domain.ErrValidation, s)
	}
	if s == t.sort {
		return nil
	}
	t.sort = s
	t.rebuild(false)
	return nil
}

// CreatePoint opens the new-point form. The list is first reset to the
// everything filter and the default sort, which also closes any other editor.
func (t *TripPresenter) CreatePoint() (*PointCreator, error) {
	if t.state == StateLoading {
		return nil, fmt.Errorf("presenter.TripPresenter.CreatePoint: %w: itinerary is still loading", domain.ErrValidation)
	}
	t.sort = domain.DefaultSort
	t.filter.SetFilter(domain.UpdateMajor, domain.FilterEverything)

	t.creator = newPointCreator(t.surface.NewCreator(), t.dispatcher, t.catalog, t)
	t.creator.open(t.now())
	return t.creator, nil
}

func (t *TripPresenter) handleCatalogEvent(bit int, kind domain.UpdateType) {
	if kind == domain.UpdateInit {
		t.markLoaded(bit)
		return
	}
	t.rebuild(kind == domain.UpdateMajor)
}

func (t *TripPresenter) handlePointsEvent(kind domain.UpdateType, p domain.Point) {
	switch kind {
	case domain.UpdateInit:
		t.markLoaded(loadedPoints)
	case domain.UpdatePatch:
		c, ok := t.items[p.ID]
		if !ok {
			t.log.Debug("patch for point not on screen", "id", p.ID)
			return
		}
		t.log.Debug("patch", "id", p.ID)
		c.Refresh(p)
	case domain.UpdateMinor:
		t.rebuild(false)
	case domain.UpdateMajor:
		t.rebuild(true)
	}
}

func (t *TripPresenter) handleFilterEvent(kind domain.UpdateType, _ domain.FilterType) {
	t.rebuild(kind == domain.UpdateMajor)
}

// markLoaded records an INIT. The first time all stores have reported the
// list leaves the loading state; a later INIT is a reload and rebuilds.
func (t *TripPresenter) markLoaded(bit int) {
	t.loaded |= bit
	if t.loaded != loadedAll {
		return
	}
	if t.state == StateLoading {
		t.log.Debug("all stores loaded")
	}
	t.rebuild(false)
}

func (t *TripPresenter) rebuild(resetSort bool) {
	t.clear(resetSort)
	t.render()
}

// clear destroys every controller and the new-point form.
func (t *TripPresenter) clear(resetSort bool) {
	if t.creator != nil {
		t.creator.destroy()
		t.creator = nil
	}
	for _, id := range t.order {
		t.items[id].destroy()
	}
	t.items = map[string]*PointController{}
	t.order = nil
	t.draft = nil
	t.surface.Clear()
	if resetSort {
		t.sort = domain.DefaultSort
	}
}

func (t *TripPresenter) render() {
	if t.loaded != loadedAll {
		t.state = StateLoading
		t.surface.ShowLoading()
		return
	}

	filter := t.filter.Filter()
	points := visible.Points(t.points.Points(), filter, t.sort, t.now())
	if len(points) == 0 {
		t.state = StateEmpty
		t.surface.ShowEmpty(filter)
		return
	}

	t.state = StatePopulated
	t.surface.ShowSort(t.sort)
	for _, p := range points {
		c := newPointController(t.surface.NewItem(p.ID), t.dispatcher, t.catalog, t)
		c.init(p)
		t.items[p.ID] = c
		t.order = append(t.order, p.ID)
	}
	t.log.Debug("list rebuilt", "count", len(points), "filter", filter, "sort", t.sort)
}

func (t *TripPresenter) catalog() Catalog {
	return Catalog{
		Destinations: t.destinations.Destinations(),
		Offers:       t.offers.Groups(),
	}
}

// openDraft gives the slot to owner, discarding whoever held it.
func (t *TripPresenter) openDraft(owner draftOwner) {
	prev := t.draft
	t.draft = owner
	if prev != nil && prev != owner {
		prev.discardDraft()
	}
}

// closeDraft releases the slot if owner holds it.
func (t *TripPresenter) closeDraft(owner draftOwner) {
	if t.draft == owner {
		t.draft = nil
	}
	if t.creator != nil && draftOwner(t.creator) == owner {
		t.creator = nil
	}
}
