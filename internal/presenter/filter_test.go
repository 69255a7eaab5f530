package presenter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/presenter"
)

func newFilterPresenter(t *testing.T, points ...domain.Point) (*harness, *presenter.FilterPresenter, *fakeFilterSurface) {
	t.Helper()
	h := newHarness(t, points...)
	s := &fakeFilterSurface{}
	f := presenter.NewFilterPresenter(h.points, h.filter, s, clock, nil)
	h.load(t)
	return h, f, s
}

func TestFilterPresenter_CountsOverFullSet(t *testing.T) {
	h, _, s := newFilterPresenter(t, p1(), p2(), p3())

	h.filter.SetFilter(domain.UpdateMajor, domain.FilterFuture)

	assert.Equal(t, domain.FilterFuture, s.current)
	assert.Equal(t, []presenter.FilterItem{
		{Type: domain.FilterEverything, Count: 3},
		{Type: domain.FilterFuture, Count: 1},
		{Type: domain.FilterPresent, Count: 1},
		{Type: domain.FilterPast, Count: 1},
	}, s.items)
}

func TestFilterPresenter_EmptyFilterIsDisabled(t *testing.T) {
	_, f, s := newFilterPresenter(t, p1(), p2())

	assert.Equal(t, presenter.FilterItem{Type: domain.FilterPast, Count: 0, Disabled: true}, s.items[3])

	err := f.Select(domain.FilterPast)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFilterPresenter_Select(t *testing.T) {
	h, f, _ := newFilterPresenter(t, p1(), p2(), p3())
	var kinds []domain.UpdateType
	h.filter.Subscribe(func(kind domain.UpdateType, _ domain.FilterType) { kinds = append(kinds, kind) })

	require.NoError(t, f.Select(domain.FilterEverything))
	assert.Empty(t, kinds, "re-selecting the current filter is a no-op")

	require.NoError(t, f.Select(domain.FilterPresent))
	assert.Equal(t, []domain.UpdateType{domain.UpdateMajor}, kinds)
	assert.Equal(t, domain.FilterPresent, h.filter.Filter())
	assert.Equal(t, []string{"p1"}, h.trip.Visible())

	assert.ErrorIs(t, f.Select("someday"), domain.ErrValidation)
}

func TestFilterPresenter_RecountsAfterMutation(t *testing.T) {
	h, f, s := newFilterPresenter(t, p1())
	require.True(t, f.Items()[3].Disabled)

	p := p3()
	p.ID = ""
	_, err := h.points.AddPoint(context.Background(), domain.UpdateMajor, p)
	require.NoError(t, err)

	assert.Equal(t, 2, s.items[0].Count)
	assert.False(t, s.items[3].Disabled)
}
