package main

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/model"
	"github.com/pkordes/big-trip/internal/presenter"
	"github.com/pkordes/big-trip/internal/render"
)

type pastPoints struct{}

func (pastPoints) FetchAll(context.Context) ([]domain.Point, error) {
	return []domain.Point{{
		ID: "p1", Type: domain.TypeTaxi, DestinationID: "d1", BasePrice: 20,
		DateFrom: time.Date(2020, 3, 1, 9, 0, 0, 0, time.UTC),
		DateTo:   time.Date(2020, 3, 1, 10, 0, 0, 0, time.UTC),
	}}, nil
}
func (pastPoints) Create(_ context.Context, p domain.Point) (domain.Point, error) { return p, nil }
func (pastPoints) Update(_ context.Context, _ string, p domain.Point) (domain.Point, error) {
	return p, nil
}
func (pastPoints) Delete(context.Context, string) error { return nil }

type oneDestination struct{}

func (oneDestination) FetchAll(context.Context) ([]domain.Destination, error) {
	return []domain.Destination{{ID: "d1", Name: "Amsterdam"}}, nil
}

type noOffers struct{}

func (noOffers) FetchAll(context.Context) ([]domain.OfferGroup, error) { return nil, nil }

func loadedPage(t *testing.T) (*render.Text, *presenter.TripPresenter, *model.FilterModel) {
	t.Helper()
	ctx := context.Background()
	points := model.NewPointsModel(pastPoints{}, nil)
	destinations := model.NewDestinationsModel(oneDestination{}, nil)
	offers := model.NewOffersModel(noOffers{}, nil)
	filters := model.NewFilterModel()

	page := render.NewText(io.Discard)
	trip := presenter.NewTripPresenter(presenter.TripPresenterParams{
		Points: points, Destinations: destinations, Offers: offers, Filter: filters, Surface: page,
	})
	t.Cleanup(trip.Close)
	fp := presenter.NewFilterPresenter(points, filters, page, nil, nil)
	t.Cleanup(fp.Close)

	require.NoError(t, offers.Init(ctx))
	require.NoError(t, destinations.Init(ctx))
	require.NoError(t, points.Init(ctx))
	return page, trip, filters
}

func TestApplyView_FilterWithoutMatchesShowsEmptyMessage(t *testing.T) {
	page, trip, filters := loadedPage(t)

	err := applyView(trip, filters, domain.FilterFuture, domain.DefaultSort)

	require.NoError(t, err)
	assert.Equal(t, domain.FilterFuture, filters.Filter())
	assert.Equal(t, presenter.StateEmpty, trip.State())
	assert.Contains(t, page.String(), domain.FilterFuture.EmptyMessage())
	assert.NotContains(t, page.String(), "Taxi Amsterdam")
}

func TestApplyView_SortAfterFilter(t *testing.T) {
	_, trip, filters := loadedPage(t)

	require.NoError(t, applyView(trip, filters, domain.FilterPast, domain.SortPrice))

	assert.Equal(t, domain.SortPrice, trip.Sort())
	assert.Equal(t, []string{"p1"}, trip.Visible())
}

func TestApplyView_RejectsUnknownValues(t *testing.T) {
	_, trip, filters := loadedPage(t)

	assert.ErrorIs(t, applyView(trip, filters, "someday", domain.DefaultSort), domain.ErrValidation)
	assert.ErrorIs(t, applyView(trip, filters, domain.FilterEverything, "alphabetical"), domain.ErrValidation)
	assert.Equal(t, domain.FilterEverything, filters.Filter())
}
