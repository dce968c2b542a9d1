package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jonathan/careerhub/internal/analyzer"
	"github.com/jonathan/careerhub/internal/server/middleware"
	"github.com/jonathan/careerhub/internal/types"
)

// handleAnalyze scores the caller's resume against a job description.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	state, err := s.resumes.LoadOrInit(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load resume for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume")
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), state, req.JobDescription)
	if err != nil {
		switch {
		case errors.Is(err, analyzer.ErrDescriptionTooShort):
			s.errorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, analyzer.ErrResumeIncomplete):
			s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		default:
			log.Printf("Analysis failed for user %s: %v", userID, err)
			s.errorResponse(w, http.StatusBadGateway, "Analysis failed")
		}
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}
