package presenter_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/model"
	"github.com/pkordes/big-trip/internal/presenter"
	"github.com/pkordes/big-trip/internal/visible"
)

// ---- mock sources ----------------------------------------------------------

type mockPointsSource struct {
	fetchAll func(ctx context.Context) ([]domain.Point, error)
	create   func(ctx context.Context, p domain.Point) (domain.Point, error)
	update   func(ctx context.Context, id string, p domain.Point) (domain.Point, error)
	delete   func(ctx context.Context, id string) error
}

func (m *mockPointsSource) FetchAll(ctx context.Context) ([]domain.Point, error) {
	return m.fetchAll(ctx)
}
func (m *mockPointsSource) Create(ctx context.Context, p domain.Point) (domain.Point, error) {
	return m.create(ctx, p)
}
func (m *mockPointsSource) Update(ctx context.Context, id string, p domain.Point) (domain.Point, error) {
	return m.update(ctx, id, p)
}
func (m *mockPointsSource) Delete(ctx context.Context, id string) error {
	return m.delete(ctx, id)
}

type mockDestinationsSource struct {
	fetchAll func(ctx context.Context) ([]domain.Destination, error)
}

func (m *mockDestinationsSource) FetchAll(ctx context.Context) ([]domain.Destination, error) {
	return m.fetchAll(ctx)
}

type mockOffersSource struct {
	fetchAll func(ctx context.Context) ([]domain.OfferGroup, error)
}

func (m *mockOffersSource) FetchAll(ctx context.Context) ([]domain.OfferGroup, error) {
	return m.fetchAll(ctx)
}

var (
	_ model.PointsSource       = (*mockPointsSource)(nil)
	_ model.DestinationsSource = (*mockDestinationsSource)(nil)
	_ model.OffersSource       = (*mockOffersSource)(nil)
)

// ---- fake surfaces ---------------------------------------------------------

// fakeItem records everything drawn into one fragment.
type fakeItem struct {
	id        string
	points    []domain.Point
	frames    []presenter.EditorFrame
	destroyed bool
}

func (f *fakeItem) RenderPoint(p domain.Point, _ presenter.Catalog) { f.points = append(f.points, p) }
func (f *fakeItem) RenderEditor(fr presenter.EditorFrame)         { f.frames = append(f.frames, fr) }
func (f *fakeItem) Destroy()                                       { f.destroyed = true }

func (f *fakeItem) renders() int { return len(f.points) + len(f.frames) }

func (f *fakeItem) lastPoint() domain.Point { return f.points[len(f.points)-1] }

func (f *fakeItem) lastFrame() presenter.EditorFrame { return f.frames[len(f.frames)-1] }

type fakeSurface struct {
	loading  int
	empty    []domain.FilterType
	sorts    []domain.SortType
	clears   int
	items    map[string][]*fakeItem
	creators []*fakeItem
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{items: map[string][]*fakeItem{}}
}

func (s *fakeSurface) ShowLoading()                 { s.loading++ }
func (s *fakeSurface) ShowEmpty(f domain.FilterType) { s.empty = append(s.empty, f) }
func (s *fakeSurface) ShowSort(c domain.SortType)    { s.sorts = append(s.sorts, c) }
func (s *fakeSurface) Clear()                       { s.clears++ }

func (s *fakeSurface) NewItem(id string) presenter.ItemSurface {
	it := &fakeItem{id: id}
	s.items[id] = append(s.items[id], it)
	return it
}

func (s *fakeSurface) NewCreator() presenter.ItemSurface {
	it := &fakeItem{}
	s.creators = append(s.creators, it)
	return it
}

// item returns the most recent fragment allocated for id.
func (s *fakeSurface) item(t *testing.T, id string) *fakeItem {
	t.Helper()
	got := s.items[id]
	require.NotEmpty(t, got, "no fragment for %s", id)
	return got[len(got)-1]
}

type fakeFilterSurface struct {
	items   []presenter.FilterItem
	current domain.FilterType
	renders int
}

func (s *fakeFilterSurface) RenderFilters(items []presenter.FilterItem, current domain.FilterType) {
	s.items = items
	s.current = current
	s.renders++
}

type fakeSummarySurface struct {
	summary visible.TripSummary
	shown   bool
	renders int
}

func (s *fakeSummarySurface) RenderSummary(summary visible.TripSummary) {
	s.summary = summary
	s.shown = true
	s.renders++
}

func (s *fakeSummarySurface) HideSummary() {
	s.summary = visible.TripSummary{}
	s.shown = false
	s.renders++
}

var (
	_ presenter.Surface        = (*fakeSurface)(nil)
	_ presenter.ItemSurface    = (*fakeItem)(nil)
	_ presenter.FilterSurface  = (*fakeFilterSurface)(nil)
	_ presenter.SummarySurface = (*fakeSummarySurface)(nil)
)

// ---- fixtures --------------------------------------------------------------

// now sits inside p1, before p2 and after p3.
var now = time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC)

func clock() time.Time { return now }

func destinationsFixture() []domain.Destination {
	return []domain.Destination{
		{ID: "d1", Name: "Amsterdam"},
		{ID: "d2", Name: "Geneva"},
		{ID: "d3", Name: "Chamonix"},
	}
}

func offersFixture() []domain.OfferGroup {
	return []domain.OfferGroup{
		{Type: domain.TypeTaxi, Offers: []domain.Offer{
			{ID: "o1", Title: "Upgrade", Price: 20},
			{ID: "o2", Title: "Child seat", Price: 30},
		}},
		{Type: domain.TypeFlight, Offers: []domain.Offer{
			{ID: "f1", Title: "Extra luggage", Price: 50},
		}},
	}
}

func p1() domain.Point {
	return domain.Point{
		ID: "p1", Type: domain.TypeTaxi, DestinationID: "d1", BasePrice: 100,
		DateFrom: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		OfferIDs: []string{"o1"},
	}
}

func p2() domain.Point {
	return domain.Point{
		ID: "p2", Type: domain.TypeFlight, DestinationID: "d2", BasePrice: 500,
		DateFrom: time.Date(2025, 6, 3, 8, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 6, 3, 9, 30, 0, 0, time.UTC),
	}
}

func p3() domain.Point {
	return domain.Point{
		ID: "p3", Type: domain.TypeTaxi, DestinationID: "d3", BasePrice: 50,
		DateFrom: time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2025, 5, 20, 18, 0, 0, 0, time.UTC),
	}
}

// ---- harness ---------------------------------------------------------------

type harness struct {
	src          *mockPointsSource
	points       *model.PointsModel
	destinations *model.DestinationsModel
	offers       *model.OffersModel
	filter       *model.FilterModel
	surface      *fakeSurface
	trip         *presenter.TripPresenter

	// kinds records every points notification after load.
	kinds []domain.UpdateType
}

// newHarness wires real stores over mock sources to a TripPresenter. The
// remote echoes updates, assigns "new" to created points and accepts deletes.
func newHarness(t *testing.T, points ...domain.Point) *harness {
	t.Helper()
	h := &harness{
		src: &mockPointsSource{
			fetchAll: func(context.Context) ([]domain.Point, error) { return points, nil },
			create: func(_ context.Context, p domain.Point) (domain.Point, error) {
				p.ID = "new"
				return p, nil
			},
			update: func(_ context.Context, _ string, p domain.Point) (domain.Point, error) { return p, nil },
			delete: func(context.Context, string) error { return nil },
		},
		filter:  model.NewFilterModel(),
		surface: newFakeSurface(),
	}
	h.points = model.NewPointsModel(h.src, nil)
	h.destinations = model.NewDestinationsModel(&mockDestinationsSource{
		fetchAll: func(context.Context) ([]domain.Destination, error) { return destinationsFixture(), nil },
	}, nil)
	h.offers = model.NewOffersModel(&mockOffersSource{
		fetchAll: func(context.Context) ([]domain.OfferGroup, error) { return offersFixture(), nil },
	}, nil)

	h.trip = presenter.NewTripPresenter(presenter.TripPresenterParams{
		Points:       h.points,
		Destinations: h.destinations,
		Offers:       h.offers,
		Filter:       h.filter,
		Surface:      h.surface,
		Now:          clock,
	})
	return h
}

// load runs the three Init calls in bootstrap order.
func (h *harness) load(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, h.offers.Init(ctx))
	require.NoError(t, h.destinations.Init(ctx))
	require.NoError(t, h.points.Init(ctx))
	h.points.Subscribe(func(kind domain.UpdateType, _ domain.Point) { h.kinds = append(h.kinds, kind) })
}

func (h *harness) controller(t *testing.T, id string) *presenter.PointController {
	t.Helper()
	c, ok := h.trip.Controller(id)
	require.True(t, ok, "no controller for %s", id)
	return c
}

func (h *harness) storedPoint(t *testing.T, id string) domain.Point {
	t.Helper()
	p, ok := h.points.Point(id)
	require.True(t, ok, "point %s not stored", id)
	return p
}
