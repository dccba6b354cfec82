package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/vacation-planner/internal/catalog"
	"github.com/pkordes/vacation-planner/internal/domain"
	"github.com/pkordes/vacation-planner/internal/handler"
	"github.com/pkordes/vacation-planner/internal/handler/gen"
	"github.com/pkordes/vacation-planner/internal/service"
)

// mockCatalogServicer is a test double for handler.CatalogServicer.
// Set only the method fields your test needs.
type mockCatalogServicer struct {
	listDestinations func(ctx context.Context, p domain.PaginationParams) ([]*domain.Destination, int, error)
	getDestination   func(ctx context.Context, name string) (*domain.Destination, error)
	listHotels       func(ctx context.Context, destination string) ([]domain.Hotel, error)
}

func (m *mockCatalogServicer) ListDestinations(ctx context.Context, p domain.PaginationParams) ([]*domain.Destination, int, error) {
	return m.listDestinations(ctx, p)
}
func (m *mockCatalogServicer) GetDestination(ctx context.Context, name string) (*domain.Destination, error) {
	return m.getDestination(ctx, name)
}
func (m *mockCatalogServicer) ListHotels(ctx context.Context, destination string) ([]domain.Hotel, error) {
	return m.listHotels(ctx, destination)
}

// compile-time check: mockCatalogServicer must satisfy handler.CatalogServicer.
var _ handler.CatalogServicer = (*mockCatalogServicer)(nil)

// ---- helpers ---------------------------------------------------------------

func discardLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func newCatalogHTTPHandler(svc handler.CatalogServicer) http.Handler {
	return handler.NewServer(nil, svc, nil, discardLogger()).Handler()
}

func newYork() *domain.Destination {
	return domain.NewDestination("New York", "USA", dec(180),
		domain.NewActivity("Statue of Liberty", dec(25)),
		domain.NewActivity("Broadway Show", dec(120)),
	)
}

// ---- GET /destinations -----------------------------------------------------

func TestListDestinations_200(t *testing.T) {
	var got domain.PaginationParams
	svc := &mockCatalogServicer{
		listDestinations: func(_ context.Context, p domain.PaginationParams) ([]*domain.Destination, int, error) {
			got = p
			return []*domain.Destination{newYork()}, 3, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/destinations?page=3&limit=1", nil)
	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 3, Limit: 1}, got)

	var body gen.DestinationList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "New York", body.Data[0].Name)
	assert.Equal(t, "180.00", body.Data[0].CostPerDay)
	assert.Equal(t, "Destination: New York, USA, Cost/Day: $180.00", body.Data[0].Details)
	assert.Equal(t, gen.Pagination{Page: 3, Limit: 1, Total: 3}, body.Pagination)
}

func TestListDestinations_422_BadPage(t *testing.T) {
	svc := &mockCatalogServicer{}

	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/destinations?page=two", nil))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestListDestinations_500(t *testing.T) {
	svc := &mockCatalogServicer{
		listDestinations: func(context.Context, domain.PaginationParams) ([]*domain.Destination, int, error) {
			return nil, 0, errors.New("catalog unavailable")
		},
	}

	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/destinations", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "internal_error", body.Error.Code)
}

func TestListDestinations_200_PageFarPastTheEnd(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	h := newCatalogHTTPHandler(service.NewCatalogService(cat))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/destinations?page=9223372036854775807&limit=100", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body gen.DestinationList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Empty(t, body.Data)
	assert.Equal(t, 3, body.Pagination.Total)
}

// ---- GET /destinations/{name} ----------------------------------------------

func TestGetDestination_200_NameWithSpace(t *testing.T) {
	var asked string
	svc := &mockCatalogServicer{
		getDestination: func(_ context.Context, name string) (*domain.Destination, error) {
			asked = name
			return newYork(), nil
		},
	}

	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/destinations/New%20York", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "New York", asked)

	var body gen.DestinationDetail
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Activities, 2)
	assert.Equal(t, gen.Activity{
		Number:  2,
		Name:    "Broadway Show",
		Cost:    "120.00",
		Display: "Broadway Show (Cost: $120.00)",
	}, body.Activities[1])
}

func TestGetDestination_404(t *testing.T) {
	svc := &mockCatalogServicer{
		getDestination: func(_ context.Context, name string) (*domain.Destination, error) {
			return nil, fmt.Errorf("lookup %q: %w", name, domain.ErrNotFound)
		},
	}

	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/destinations/Atlantis", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "not_found", body.Error.Code)
	assert.Equal(t, "destination not found", body.Error.Message)
}

// ---- GET /destinations/{name}/hotels ---------------------------------------

func TestListHotels_200(t *testing.T) {
	svc := &mockCatalogServicer{
		listHotels: func(context.Context, string) ([]domain.Hotel, error) {
			return []domain.Hotel{
				domain.NewHotel("NYC Grand", "USA", dec(220), 5),
				domain.NewHotel("Budget Inn NYC", "USA", dec(120), 3),
			}, nil
		},
	}

	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/destinations/New%20York/hotels", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []gen.Hotel
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, 2, body[1].Number)
	assert.Equal(t, "120.00", body[1].PricePerNight)
	assert.Equal(t, "Hotel: Budget Inn NYC, USA, Price/Night: $120.00, Rating: 3⭐", body[1].Details)
}

func TestListHotels_404(t *testing.T) {
	svc := &mockCatalogServicer{
		listHotels: func(context.Context, string) ([]domain.Hotel, error) {
			return nil, domain.ErrNotFound
		},
	}

	rec := httptest.NewRecorder()
	newCatalogHTTPHandler(svc).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/destinations/Atlantis/hotels", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
