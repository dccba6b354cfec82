package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/vacation-planner/internal/domain"
	"github.com/pkordes/vacation-planner/internal/handler/gen"
)

// defaultTraveller names the throw-away user a quote is planned for when the
// request does not say.
const defaultTraveller = "Guest"

// CreateQuote handles POST /quotes.
// It plans a trip for a throw-away user and returns its cost. Nothing is kept
// after the response is written. ?format=csv returns the cost breakdown as
// CSV; ?format=text returns the plain-text trip summary.
func (s *Server) CreateQuote(ctx context.Context, req gen.CreateQuoteRequestObject) (gen.CreateQuoteResponseObject, error) {
	format := gen.Json
	if req.Params.Format != nil {
		format = *req.Params.Format
	}
	switch format {
	case gen.Json, gen.Csv, gen.Text:
	default:
		return gen.CreateQuote422JSONResponse(requestBody("format must be one of json, csv, text")), nil
	}

	tripReq, err := requestToTrip(req.Body)
	if err != nil {
		return gen.CreateQuote422JSONResponse(requestBody(err.Error())), nil
	}

	user := domain.NewUser(travellerName(req.Body.Traveller))
	trip, err := s.planner.Plan(ctx, user, tripReq)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.CreateQuote404JSONResponse(notFoundBody("destination not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateQuote422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	switch format {
	case gen.Csv:
		return buildCSVResponse(trip), nil
	case gen.Text:
		var buf bytes.Buffer
		if err := user.ViewTrips(&buf); err != nil {
			return nil, fmt.Errorf("handler.CreateQuote: render trips: %w", err)
		}
		return gen.CreateQuote200TextResponse(buf.String()), nil
	default:
		return gen.CreateQuote200JSONResponse(tripToQuote(user.Name, trip, req.Body)), nil
	}
}

// --- mapping helpers --------------------------------------------------------

// requestToTrip converts a QuoteRequest into a domain.TripRequest, turning the
// 1-based choice numbers into 0-based indexes. Range checks are left to the
// service, which knows the catalog.
func requestToTrip(body *gen.QuoteRequest) (domain.TripRequest, error) {
	if body == nil {
		return domain.TripRequest{}, errors.New("request body is required")
	}
	if strings.TrimSpace(body.Destination) == "" {
		return domain.TripRequest{}, errors.New("destination is required")
	}
	if body.StartDate.Time.IsZero() {
		return domain.TripRequest{}, errors.New("start_date is required")
	}
	if body.Budget == nil {
		return domain.TripRequest{}, errors.New("budget is required")
	}

	req := domain.TripRequest{
		Destination:     body.Destination,
		StartDate:       body.StartDate.Time,
		Days:            body.Days,
		Budget:          *body.Budget,
		HotelIndex:      domain.NoHotel,
		ActivityIndexes: []int{},
	}
	if body.Hotel != nil {
		if *body.Hotel < 1 {
			return domain.TripRequest{}, errors.New("hotel must be 1 or more")
		}
		req.HotelIndex = *body.Hotel - 1
	}
	if body.Activities != nil {
		for _, n := range *body.Activities {
			req.ActivityIndexes = append(req.ActivityIndexes, n-1)
		}
	}
	return req, nil
}

func travellerName(name *string) string {
	if name != nil {
		if t := strings.TrimSpace(*name); t != "" {
			return t
		}
	}
	return defaultTraveller
}

// tripToQuote converts a planned trip into the JSON quote body. Hotel and
// activity numbers are echoed from the request, which the service honoured
// in order.
func tripToQuote(traveller string, t *domain.Trip, body *gen.QuoteRequest) gen.Quote {
	hotels := hotelsToResponse(t.Hotels())
	if body.Hotel != nil {
		for i := range hotels {
			hotels[i].Number = *body.Hotel
		}
	}
	acts := activitiesToResponse(t.Activities())
	if body.Activities != nil {
		requested := *body.Activities
		for i := range acts {
			if i < len(requested) {
				acts[i].Number = requested[i]
			}
		}
	}

	return gen.Quote{
		Id:           t.ID,
		Traveller:    traveller,
		Destination:  t.Destination.Name,
		Country:      t.Destination.Country,
		StartDate:    openapi_types.Date{Time: t.StartDate},
		Days:         t.Days,
		Budget:       t.Budget.StringFixed(2),
		Hotels:       hotels,
		Activities:   acts,
		TotalCost:    t.TotalCost().StringFixed(2),
		WithinBudget: t.IsWithinBudget(),
		Summary:      t.Details(),
	}
}
