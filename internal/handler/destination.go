package handler

import (
	"context"
	"errors"

	"github.com/pkordes/vacation-planner/internal/domain"
	"github.com/pkordes/vacation-planner/internal/handler/gen"
)

// ListDestinations handles GET /destinations.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListDestinations(ctx context.Context, req gen.ListDestinationsRequestObject) (gen.ListDestinationsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	dests, total, err := s.catalog.ListDestinations(ctx, params)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.ListDestinations422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	data := make([]gen.DestinationSummary, len(dests))
	for i, d := range dests {
		data[i] = destinationToSummary(d)
	}
	return gen.ListDestinations200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	}, nil
}

// GetDestination handles GET /destinations/{name}.
func (s *Server) GetDestination(ctx context.Context, req gen.GetDestinationRequestObject) (gen.GetDestinationResponseObject, error) {
	dest, err := s.catalog.GetDestination(ctx, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetDestination404JSONResponse(notFoundBody("destination not found")), nil
		}
		return nil, err
	}

	return gen.GetDestination200JSONResponse{
		Name:       dest.Name,
		Country:    dest.Country,
		CostPerDay: dest.CostPerDay.StringFixed(2),
		Details:    dest.Details(),
		Activities: activitiesToResponse(dest.ListActivities()),
	}, nil
}

// ListHotels handles GET /destinations/{name}/hotels.
func (s *Server) ListHotels(ctx context.Context, req gen.ListHotelsRequestObject) (gen.ListHotelsResponseObject, error) {
	hotels, err := s.catalog.ListHotels(ctx, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListHotels404JSONResponse(notFoundBody("destination not found")), nil
		}
		return nil, err
	}

	return gen.ListHotels200JSONResponse(hotelsToResponse(hotels)), nil
}

// --- mapping helpers --------------------------------------------------------

func destinationToSummary(d *domain.Destination) gen.DestinationSummary {
	return gen.DestinationSummary{
		Name:       d.Name,
		Country:    d.Country,
		CostPerDay: d.CostPerDay.StringFixed(2),
		Details:    d.Details(),
	}
}

// activitiesToResponse numbers acts from 1, the numbering quote requests use.
func activitiesToResponse(acts []domain.Activity) []gen.Activity {
	out := make([]gen.Activity, len(acts))
	for i, a := range acts {
		out[i] = gen.Activity{Number: i + 1, Name: a.Name, Cost: a.Cost.StringFixed(2), Display: a.String()}
	}
	return out
}

// hotelsToResponse numbers hotels from 1, the numbering quote requests use.
func hotelsToResponse(hotels []domain.Hotel) []gen.Hotel {
	out := make([]gen.Hotel, len(hotels))
	for i, h := range hotels {
		out[i] = gen.Hotel{
			Number:        i + 1,
			Name:          h.Name,
			Country:       h.Country,
			PricePerNight: h.PricePerNight.StringFixed(2),
			Rating:        h.Rating,
			Details:       h.Details(),
		}
	}
	return out
}
