package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/jonathan/careerhub/internal/chat"
	"github.com/jonathan/careerhub/internal/server/middleware"
	"github.com/jonathan/careerhub/internal/types"
)

// handleChatSend records a user message and returns the model's reply.
func (s *Server) handleChatSend(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	reply, err := s.chat.Send(r.Context(), userID, req.Message)
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			s.errorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("Chat send failed for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusBadGateway, "Failed to generate reply")
		return
	}

	s.jsonResponse(w, http.StatusCreated, reply)
}

// handleChatHistory returns the caller's recent chat messages in
// chronological order. An optional "limit" query parameter caps the count.
func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
	}

	messages, err := s.chat.History(r.Context(), userID, limit)
	if err != nil {
		log.Printf("Failed to load chat history for user %s: %v", userID, err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load chat history")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"messages": messages})
}
