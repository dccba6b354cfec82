// Package handler implements the HTTP handlers for the trip quote API.
// All handlers are methods on Server, which implements
// gen.StrictServerInterface. Methods are split into resource files
// (health.go, destination.go, quote.go) but share the same Server struct so
// they can reach its dependencies.
//
// internal/handler/gen is generated from spec/openapi.yaml; run
// `go generate ./spec` after changing the document.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/vacation-planner/internal/domain"
	"github.com/pkordes/vacation-planner/internal/handler/gen"
)

// PlannerServicer defines the planning operation the quote handler depends on.
// It is declared here, in the consumer package, so handler tests can inject a
// mock without touching the catalog.
type PlannerServicer interface {
	Plan(ctx context.Context, user *domain.User, req domain.TripRequest) (*domain.Trip, error)
}

// CatalogServicer defines the catalog browsing operations.
type CatalogServicer interface {
	ListDestinations(ctx context.Context, p domain.PaginationParams) ([]*domain.Destination, int, error)
	GetDestination(ctx context.Context, name string) (*domain.Destination, error)
	ListHotels(ctx context.Context, destination string) ([]domain.Hotel, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via Handler.
type Server struct {
	planner PlannerServicer
	catalog CatalogServicer
	openAPI []byte
	log     *slog.Logger
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
// openAPI is the document served at /openapi.yaml.
func NewServer(planner PlannerServicer, catalog CatalogServicer, openAPI []byte, log *slog.Logger) *Server {
	return &Server{planner: planner, catalog: catalog, openAPI: openAPI, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, slog.Default())
}

// Handler returns the generated chi routes for every operation, plus
// /openapi.yaml. gen.NewStrictHandlerWithOptions adapts the
// StrictServerInterface implementation to the ServerInterface chi expects;
// the options route binding and decoding failures to the JSON error bodies.
// Cross-cutting middleware (request IDs, logging, CORS) is applied by the caller.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Get("/openapi.yaml", s.GetOpenAPI)

	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.requestError,
	})
}

// GetOpenAPI handles GET /openapi.yaml.
func (s *Server) GetOpenAPI(w http.ResponseWriter, r *http.Request) {
	if len(s.openAPI) == 0 {
		writeError(w, http.StatusNotFound, notFoundBody("api description not available"))
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(s.openAPI)
}
