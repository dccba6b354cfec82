// Package service contains the planning logic for the vacation planner.
// Services validate choices, resolve them against the catalog and build
// domain values. Nothing here reads the console or speaks HTTP.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pkordes/vacation-planner/internal/domain"
)

// Catalog is the read-only lookup table the services resolve choices against.
// *catalog.Catalog satisfies it; tests pass a stub.
type Catalog interface {
	Destinations() []*domain.Destination
	Destination(name string) (*domain.Destination, error)
	Hotels(destination string) ([]domain.Hotel, error)
}

// PlannerService turns a TripRequest into a Trip recorded against a user.
type PlannerService struct {
	catalog Catalog
	log     *slog.Logger
}

// NewPlannerService constructs a PlannerService backed by the provided catalog.
func NewPlannerService(c Catalog, log *slog.Logger) *PlannerService {
	return &PlannerService{catalog: c, log: log}
}

// Plan validates req, resolves the destination, hotel and activities it names,
// and plans the trip for user with the chosen hotel and activities attached.
// Returns domain.ErrValidation if a value or index is out of range, and
// domain.ErrNotFound if the destination does not exist. On error the user is
// left untouched.
func (s *PlannerService) Plan(ctx context.Context, user *domain.User, req domain.TripRequest) (*domain.Trip, error) {
	if err := validateRequest(req); err != nil {
		return nil, fmt.Errorf("service.PlannerService.Plan: %w", err)
	}

	dest, err := s.catalog.Destination(req.Destination)
	if err != nil {
		return nil, fmt.Errorf("service.PlannerService.Plan: %w", err)
	}
	hotels, err := s.catalog.Hotels(dest.Name)
	if err != nil {
		return nil, fmt.Errorf("service.PlannerService.Plan: %w", err)
	}

	var hotel *domain.Hotel
	if req.HotelIndex != domain.NoHotel {
		if req.HotelIndex < 0 || req.HotelIndex >= len(hotels) {
			return nil, fmt.Errorf("service.PlannerService.Plan: %w: hotel choice %d outside 1-%d",
				domain.ErrValidation, req.HotelIndex+1, len(hotels))
		}
		hotel = &hotels[req.HotelIndex]
	}

	catalogActivities := dest.ListActivities()
	activities := make([]domain.Activity, 0, len(req.ActivityIndexes))
	for _, idx := range req.ActivityIndexes {
		if idx < 0 || idx >= len(catalogActivities) {
			return nil, fmt.Errorf("service.PlannerService.Plan: %w: activity choice %d outside 1-%d",
				domain.ErrValidation, idx+1, len(catalogActivities))
		}
		activities = append(activities, catalogActivities[idx])
	}

	trip := user.PlanTrip(dest, req.Days, req.Budget, req.StartDate)
	if hotel != nil {
		trip.AddHotel(*hotel)
	}
	for _, a := range activities {
		trip.AddActivity(a)
	}

	s.log.InfoContext(ctx, "trip planned",
		"trip_id", trip.ID,
		"destination", dest.Name,
		"days", trip.Days,
		"total_cost", trip.TotalCost().StringFixed(2),
		"within_budget", trip.IsWithinBudget(),
	)
	return trip, nil
}

// validateRequest enforces the range rules that do not need the catalog.
//   - Days must be at least 1.
//   - Budget must not be negative.
func validateRequest(req domain.TripRequest) error {
	if req.Days < 1 {
		return fmt.Errorf("%w: days must be at least 1", domain.ErrValidation)
	}
	if req.Budget.IsNegative() {
		return fmt.Errorf("%w: budget must not be negative", domain.ErrValidation)
	}
	return nil
}
