package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/pkordes/vacation-planner/internal/domain"
	"github.com/pkordes/vacation-planner/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because the handler is the layer that knows
// what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a request rejected before reaching
// the service layer (e.g. malformed JSON).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

func internalBody() gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "internal_error", Message: "internal server error"}}
}

// unwrapMessage extracts the human-readable part of a wrapped validation error.
// e.g. "service.PlannerService.Plan: validation error: days must be at least 1" → "days must be at least 1"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.Index(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}

// requestError answers requests the generated layer could not bind: a query
// parameter of the wrong type or a body that is not a valid QuoteRequest.
// A body cut off by the size limit is reported as 413.
func (s *Server) requestError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, requestBody("request body too large"))
		return
	}
	s.log.DebugContext(r.Context(), "request rejected", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
}

// responseError answers requests whose handler returned an error instead of
// a typed response. The cause is logged; the client only sees a 500.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	writeError(w, http.StatusInternalServerError, internalBody())
}

// writeError writes body as JSON for the paths that bypass the typed
// responses.
func writeError(w http.ResponseWriter, status int, body gen.ErrorResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
