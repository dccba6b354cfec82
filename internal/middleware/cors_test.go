package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/vacation-planner/internal/middleware"
)

const allowedOrigin = "http://localhost:5173"

// okHandler always answers 200.
var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func preflight(method string) *http.Request {
	req := httptest.NewRequest(http.MethodOptions, "/quotes", nil)
	req.Header.Set("Origin", allowedOrigin)
	req.Header.Set("Access-Control-Request-Method", method)
	// Browsers send requested header names in lowercase.
	req.Header.Set("Access-Control-Request-Headers", "content-type")
	return req
}

func TestCORSHandler_GET_AllowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{allowedOrigin})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	req.Header.Set("Origin", allowedOrigin)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
}

// TestCORSHandler_Preflight_POST verifies a browser may POST a JSON quote request.
func TestCORSHandler_Preflight_POST(t *testing.T) {
	h := middleware.NewCORSHandler([]string{allowedOrigin})(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, preflight(http.MethodPost))

	assert.True(t, rec.Code == http.StatusNoContent || rec.Code == http.StatusOK,
		"expected 2xx for OPTIONS preflight, got %d", rec.Code)
	assert.Equal(t, allowedOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

// TestCORSHandler_Preflight_DELETE_NotAllowed verifies that methods the API
// does not serve are not granted to cross-origin callers.
func TestCORSHandler_Preflight_DELETE_NotAllowed(t *testing.T) {
	h := middleware.NewCORSHandler([]string{allowedOrigin})(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, preflight(http.MethodDelete))

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSHandler_GET_DisallowedOrigin(t *testing.T) {
	h := middleware.NewCORSHandler([]string{allowedOrigin})(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/destinations", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
