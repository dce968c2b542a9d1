package server

import (
	"log"
	"net/http"

	"github.com/jonathan/careerhub/internal/server/middleware"
)

// handleDashboard returns the assembled dashboard for the caller.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	dash, err := s.dashboard.Load(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load dashboard for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}

	s.jsonResponse(w, http.StatusOK, dash)
}
