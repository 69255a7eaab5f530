package presenter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/presenter"
)

func TestSummaryPresenter_RendersAfterPointsLoad(t *testing.T) {
	h := newHarness(t, p1(), p2(), p3())
	s := &fakeSummarySurface{}
	presenter.NewSummaryPresenter(h.points, h.destinations, h.offers, s)
	ctx := context.Background()

	require.NoError(t, h.offers.Init(ctx))
	require.NoError(t, h.destinations.Init(ctx))
	assert.Zero(t, s.renders, "nothing drawn before points are loaded")

	require.NoError(t, h.points.Init(ctx))

	require.True(t, s.shown)
	assert.Equal(t, "Chamonix — Amsterdam — Geneva", s.summary.Route)
	assert.Equal(t, p3().DateFrom, s.summary.Start)
	assert.Equal(t, p2().DateTo, s.summary.End)
	// 100 + 500 + 50 base, plus o1 (20) on p1
	assert.Equal(t, 670, s.summary.Cost)
}

func TestSummaryPresenter_FollowsMutations(t *testing.T) {
	h := newHarness(t, p1())
	s := &fakeSummarySurface{}
	presenter.NewSummaryPresenter(h.points, h.destinations, h.offers, s)
	h.load(t)
	require.Equal(t, 120, s.summary.Cost)

	require.NoError(t, h.points.DeletePoint(context.Background(), domain.UpdateMinor, "p1"))

	assert.False(t, s.shown)
}

func TestSummaryPresenter_HiddenWhenNoPoints(t *testing.T) {
	h := newHarness(t)
	s := &fakeSummarySurface{}
	presenter.NewSummaryPresenter(h.points, h.destinations, h.offers, s)
	h.load(t)

	assert.False(t, s.shown)
	assert.Equal(t, 1, s.renders)
}
