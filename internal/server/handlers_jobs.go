package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/careerhub/internal/jobsearch"
	"github.com/jonathan/careerhub/internal/server/middleware"
	"github.com/jonathan/careerhub/internal/types"
)

// handleJobSearch runs an ad-hoc job search with the caller's filters. It
// never touches the cached job feed.
func (s *Server) handleJobSearch(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.JobSearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	filters := jobsearch.Filters{
		Query:           req.Query,
		Location:        req.Location,
		DatePosted:      jobsearch.DatePostedWindow(req.DatePosted),
		WorkFromHome:    req.WorkFromHome,
		EmploymentTypes: req.EmploymentTypes,
	}

	listings, err := s.searcher.Search(r.Context(), filters)
	if err != nil {
		log.Printf("Job search failed for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusBadGateway, "Job search failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"listings": listings})
}
