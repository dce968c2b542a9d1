package db

import (
	"time"

	"github.com/google/uuid"
)

// Chat transcript roles. "model" matches the role tag the chat collaborator
// uses for assistant turns.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// ChatHistoryWindow caps how many of the most recent messages are loaded as
// context for a new turn.
const ChatHistoryWindow = 50

// ChatMessage is one persisted transcript entry
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
