package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthEndpoint(t *testing.T) {
	s, _, _, _, _, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestRoutes_RequireAuthentication(t *testing.T) {
	s, _, _, _, _, _ := newTestServer(t)
	handler := s.routes()

	routes := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/v1/resume"},
		{http.MethodPut, "/v1/resume"},
		{http.MethodPatch, "/v1/resume"},
		{http.MethodPost, "/v1/analyzer"},
		{http.MethodPost, "/v1/jobs/search"},
		{http.MethodGet, "/v1/chat/messages"},
		{http.MethodPost, "/v1/chat/messages"},
		{http.MethodGet, "/v1/dashboard"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.target, func(t *testing.T) {
			req := httptest.NewRequest(rt.method, rt.target, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRoutes_AcceptBearerToken(t *testing.T) {
	s, _, _, _, _, _ := newTestServer(t)

	userID := uuid.New()
	token, err := s.jwtService.GenerateToken(userID)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/v1/resume", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestRoutes_AuthEndpointsOpen(t *testing.T) {
	s, _, _, _, _, _ := newTestServer(t)

	// A malformed body should reach the handler and fail validation, not
	// bounce off the auth middleware.
	req := httptest.NewRequest(http.MethodPost, "/v1/auth/register", nil)
	w := httptest.NewRecorder()
	s.routes().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	s, _, _, _, _, _ := newTestServer(t)
	handler := s.withCORS(s.routes())

	req := httptest.NewRequest(http.MethodOptions, "/v1/resume", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
