package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/jonathan/careerhub/internal/resume"
	"github.com/jonathan/careerhub/internal/server/middleware"
	"github.com/jonathan/careerhub/internal/types"
	"github.com/jonathan/careerhub/internal/validation"
)

// handleGetResume returns the caller's resume, initializing an empty one for
// first-time users.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	state, err := s.resumes.LoadOrInit(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load resume for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, state)
}

// handlePutResume replaces the caller's resume with the submitted state.
// Cached job feed fields in the payload are ignored; only the dashboard
// refresh path writes those.
func (s *Server) handlePutResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var payload resume.State
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// The authenticated user owns the resume regardless of what the
	// payload claims.
	payload.UserID = userID
	state := resume.Reduce(resume.NewState(userID), resume.SetResume{Payload: payload})
	state.Skills = validation.NormalizeSkills(state.Skills)

	if err := validation.CheckState(state); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.resumes.SaveResume(r.Context(), userID, state); err != nil {
		log.Printf("Failed to save resume for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume")
		return
	}

	saved, err := s.resumes.LoadOrInit(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to reload resume for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, saved)
}

// handlePatchResume updates a single scalar profile field without touching
// the rest of the resume.
func (s *Server) handlePatchResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.PersonalInfoPatch
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	field := resume.ScalarField(req.Field)
	if !field.Valid() {
		s.errorResponse(w, http.StatusBadRequest, "unknown field: "+req.Field)
		return
	}

	state, err := s.resumes.LoadOrInit(r.Context(), userID)
	if err != nil {
		log.Printf("Failed to load resume for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load resume")
		return
	}

	state = resume.Reduce(state, resume.UpdatePersonalInfo{Field: field, Value: req.Value})

	if err := s.resumes.SaveResume(r.Context(), userID, state); err != nil {
		log.Printf("Failed to save resume for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to save resume")
		return
	}

	s.jsonResponse(w, http.StatusOK, state)
}
