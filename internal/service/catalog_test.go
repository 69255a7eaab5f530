package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/big-trip/internal/domain"
	"github.com/pkordes/big-trip/internal/service"
)

func TestCatalogService_Destinations_NeverNil(t *testing.T) {
	svc := service.NewCatalogService(&mockDestinationRepo{
		list: func(context.Context) ([]domain.Destination, error) { return nil, nil },
	}, nil)

	got, err := svc.Destinations(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestCatalogService_Offers_EveryTypePresent(t *testing.T) {
	svc := service.NewCatalogService(nil, &mockOfferRepo{
		listGroups: func(context.Context) ([]domain.OfferGroup, error) {
			return []domain.OfferGroup{
				{Type: domain.TypeTaxi, Offers: []domain.Offer{{ID: "o1", Title: "Upgrade", Price: 120}}},
			}, nil
		},
	})

	got, err := svc.Offers(context.Background())

	require.NoError(t, err)
	require.Len(t, got, len(domain.PointTypes))
	for i, g := range got {
		assert.Equal(t, domain.PointTypes[i], g.Type)
	}
	assert.Len(t, got[0].Offers, 1, "taxi keeps its offers")
	assert.Empty(t, got[1].Offers)
}
