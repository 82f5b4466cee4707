package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"esporte-social/internal/models"
)

// ChatMessageRepository defines interactions with the chat log.
type ChatMessageRepository interface {
	CreateMessage(ctx context.Context, userID int64, roomID, message, messageType string) (models.ChatMessage, error)
	RecentMessages(ctx context.Context, roomID string, limit int) ([]models.RoomMessage, error)
}

// ChatMessageRepo is a sqlx-backed repository.
type ChatMessageRepo struct {
	db *sqlx.DB
}

// NewChatMessageRepo constructs ChatMessageRepo.
func NewChatMessageRepo(db *sqlx.DB) *ChatMessageRepo {
	return &ChatMessageRepo{db: db}
}

// CreateMessage appends a message to a room's log. The timestamp is assigned
// by the database, never taken from the client.
func (r *ChatMessageRepo) CreateMessage(ctx context.Context, userID int64, roomID, message, messageType string) (models.ChatMessage, error) {
	var msg models.ChatMessage
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO chat_messages (user_id, room_id, message, message_type)
         VALUES ($1, $2, $3, $4)
         RETURNING id, user_id, room_id, message, message_type, created_at`,
		userID, roomID, message, messageType,
	).StructScan(&msg)
	return msg, err
}

// RecentMessages returns the limit most recent messages of a room, newest
// first, each joined with its author for display.
func (r *ChatMessageRepo) RecentMessages(ctx context.Context, roomID string, limit int) ([]models.RoomMessage, error) {
	query := `SELECT m.id, m.user_id, m.room_id, m.message, m.message_type, m.created_at,
            u.username, COALESCE(u.favorite_team, '') AS favorite_team
        FROM chat_messages m
        JOIN users u ON u.id = m.user_id
        WHERE m.room_id = $1
        ORDER BY m.created_at DESC
        LIMIT $2`
	var msgs []models.RoomMessage
	err := r.db.SelectContext(ctx, &msgs, query, roomID, limit)
	return msgs, err
}
