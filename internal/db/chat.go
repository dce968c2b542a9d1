package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// -----------------------------------------------------------------------------
// Chat Message Methods
// -----------------------------------------------------------------------------

// CreateChatMessage appends one transcript entry and returns the stored row
func (db *DB) CreateChatMessage(ctx context.Context, userID uuid.UUID, role, content string) (*ChatMessage, error) {
	if role != RoleUser && role != RoleModel {
		return nil, fmt.Errorf("invalid chat role: %s", role)
	}

	var m ChatMessage
	err := db.pool.QueryRow(ctx,
		`INSERT INTO chat_messages (user_id, role, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, user_id, role, content, created_at`,
		userID, role, content,
	).Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat message: %w", err)
	}
	return &m, nil
}

// ListChatMessages retrieves the most recent messages for a user in
// chronological order. Limit is capped at ChatHistoryWindow; zero or
// negative means the full window.
func (db *DB) ListChatMessages(ctx context.Context, userID uuid.UUID, limit int) ([]ChatMessage, error) {
	if limit <= 0 || limit > ChatHistoryWindow {
		limit = ChatHistoryWindow
	}

	// Newest-first to apply the cap, then reversed into dispatch order.
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, role, content, created_at
		 FROM chat_messages
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	var messages []ChatMessage
	for rows.Next() {
		var m ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}

	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// GetLatestModelMessage returns the most recent assistant turn, or (nil, nil)
// when the user has no chat history yet.
func (db *DB) GetLatestModelMessage(ctx context.Context, userID uuid.UUID) (*ChatMessage, error) {
	var m ChatMessage
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, role, content, created_at
		 FROM chat_messages
		 WHERE user_id = $1 AND role = $2
		 ORDER BY created_at DESC
		 LIMIT 1`,
		userID, RoleModel,
	).Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest model message: %w", err)
	}
	return &m, nil
}
