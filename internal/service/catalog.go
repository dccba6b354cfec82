package service

import (
	"context"
	"fmt"

	"github.com/pkordes/vacation-planner/internal/domain"
)

// CatalogService exposes the catalog for browsing: paged destination lists
// and per-destination hotel suggestions.
type CatalogService struct {
	catalog Catalog
}

// NewCatalogService constructs a CatalogService backed by the provided catalog.
func NewCatalogService(c Catalog) *CatalogService {
	return &CatalogService{catalog: c}
}

// ListDestinations returns one page of destinations in catalog order and the
// total number of destinations. Always returns a non-nil slice.
func (s *CatalogService) ListDestinations(ctx context.Context, p domain.PaginationParams) ([]*domain.Destination, int, error) {
	all := s.catalog.Destinations()
	lo, hi := p.Bounds(len(all))
	page := make([]*domain.Destination, 0, hi-lo)
	page = append(page, all[lo:hi]...)
	return page, len(all), nil
}

// GetDestination returns a destination by name.
// Returns domain.ErrNotFound if it does not exist.
func (s *CatalogService) GetDestination(ctx context.Context, name string) (*domain.Destination, error) {
	d, err := s.catalog.Destination(name)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.GetDestination: %w", err)
	}
	return d, nil
}

// ListHotels returns the hotels suggested for the named destination.
// Returns domain.ErrNotFound if the destination does not exist.
func (s *CatalogService) ListHotels(ctx context.Context, destination string) ([]domain.Hotel, error) {
	hotels, err := s.catalog.Hotels(destination)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.ListHotels: %w", err)
	}
	if hotels == nil {
		return []domain.Hotel{}, nil
	}
	return hotels, nil
}
