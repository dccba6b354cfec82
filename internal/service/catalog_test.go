package service_test

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/vacation-planner/internal/domain"
	"github.com/pkordes/vacation-planner/internal/service"
)

func intPtr(v int) *int { return &v }

func threeDestinations() *mockCatalog {
	dests := []*domain.Destination{
		domain.NewDestination("Paris", "France", dec(150)),
		domain.NewDestination("Tokyo", "Japan", dec(200)),
		domain.NewDestination("New York", "USA", dec(180)),
	}
	return &mockCatalog{destinations: func() []*domain.Destination { return dests }}
}

func TestCatalogService_ListDestinations_Paged(t *testing.T) {
	svc := service.NewCatalogService(threeDestinations())

	page, total, err := svc.ListDestinations(context.Background(), domain.PaginationParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "New York", page[0].Name)
}

func TestCatalogService_ListDestinations_PastEnd(t *testing.T) {
	svc := service.NewCatalogService(threeDestinations())

	page, total, err := svc.ListDestinations(context.Background(), domain.PaginationParams{Page: 9, Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	// Should return an empty slice, not nil.
	assert.NotNil(t, page)
	assert.Empty(t, page)
}

func TestCatalogService_ListDestinations_HugePage(t *testing.T) {
	svc := service.NewCatalogService(threeDestinations())
	params := domain.NewPaginationParams(intPtr(math.MaxInt), intPtr(100))

	page, total, err := svc.ListDestinations(context.Background(), params)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, page)
}

func TestCatalogService_GetDestination_NotFound(t *testing.T) {
	svc := service.NewCatalogService(&mockCatalog{
		destination: func(name string) (*domain.Destination, error) {
			return nil, fmt.Errorf("lookup %q: %w", name, domain.ErrNotFound)
		},
	})

	_, err := svc.GetDestination(context.Background(), "Atlantis")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_ListHotels(t *testing.T) {
	svc := service.NewCatalogService(tokyoCatalog())

	hotels, err := svc.ListHotels(context.Background(), "Tokyo")

	require.NoError(t, err)
	assert.Len(t, hotels, 2)
}

func TestCatalogService_ListHotels_NilBecomesEmpty(t *testing.T) {
	svc := service.NewCatalogService(&mockCatalog{
		hotels: func(string) ([]domain.Hotel, error) { return nil, nil },
	})

	hotels, err := svc.ListHotels(context.Background(), "Nowhere")

	require.NoError(t, err)
	assert.NotNil(t, hotels)
	assert.Empty(t, hotels)
}
