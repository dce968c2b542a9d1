// Package chat implements the career-advice chat service: it persists both
// sides of the conversation and replays recent history to the model.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/careerhub/internal/db"
	"github.com/jonathan/careerhub/internal/llm"
	"github.com/jonathan/careerhub/internal/prompts"
)

// ErrEmptyMessage is returned when the user submits a blank message.
var ErrEmptyMessage = errors.New("message must not be empty")

// Store is the persistence surface the chat service needs.
type Store interface {
	CreateChatMessage(ctx context.Context, userID uuid.UUID, role, content string) (*db.ChatMessage, error)
	ListChatMessages(ctx context.Context, userID uuid.UUID, limit int) ([]db.ChatMessage, error)
}

// Service runs chat turns against the LLM.
type Service struct {
	store Store
	llm   llm.Client
}

// New creates a chat service.
func New(store Store, client llm.Client) *Service {
	return &Service{store: store, llm: client}
}

// Send records the user's message, generates a reply conditioned on the most
// recent history, records the reply, and returns it. The user message is
// persisted before the model call so a model failure never loses it.
func (s *Service) Send(ctx context.Context, userID uuid.UUID, content string) (*db.ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrEmptyMessage
	}

	if _, err := s.store.CreateChatMessage(ctx, userID, db.RoleUser, content); err != nil {
		return nil, fmt.Errorf("failed to record message: %w", err)
	}

	history, err := s.store.ListChatMessages(ctx, userID, db.ChatHistoryWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	msgs := make([]llm.Message, 0, len(history))
	for _, m := range history {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := s.llm.Complete(ctx, prompts.MustGet("chat.json", "system"), msgs, llm.TierStandard)
	if err != nil {
		return nil, fmt.Errorf("failed to generate reply: %w", err)
	}

	saved, err := s.store.CreateChatMessage(ctx, userID, db.RoleModel, reply)
	if err != nil {
		return nil, fmt.Errorf("failed to record reply: %w", err)
	}
	return saved, nil
}

// History returns the user's recent messages in chronological order.
func (s *Service) History(ctx context.Context, userID uuid.UUID, limit int) ([]db.ChatMessage, error) {
	if limit <= 0 || limit > db.ChatHistoryWindow {
		limit = db.ChatHistoryWindow
	}
	messages, err := s.store.ListChatMessages(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	return messages, nil
}
