package models

import "time"

// DefaultMessageType is assumed when a client does not declare a kind.
const DefaultMessageType = "text"

// TeamColors is the display color pair attached to chat messages.
type TeamColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// ChatMessage is an append-only chat log entry.
type ChatMessage struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	RoomID      string    `db:"room_id" json:"room_id"`
	Message     string    `db:"message" json:"message"`
	MessageType string    `db:"message_type" json:"message_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// RoomMessage is a chat message joined with its author for display.
type RoomMessage struct {
	ChatMessage
	Username     string `db:"username" json:"username"`
	FavoriteTeam string `db:"favorite_team" json:"-"`
}

// MessagePayload is the message body fanned out to a room.
type MessagePayload struct {
	Username    string     `json:"username"`
	Message     string     `json:"message"`
	MessageType string     `json:"type"`
	Timestamp   string     `json:"timestamp"`
	TeamColors  TeamColors `json:"team_colors"`
}

// ChatEvent is broadcasted through websockets.
type ChatEvent struct {
	Type    string          `json:"type"`
	Msg     string          `json:"msg,omitempty"`
	Message *MessagePayload `json:"message,omitempty"`
}

// ClientEvent is what a connected client sends over the websocket.
type ClientEvent struct {
	Event   string `json:"event"`
	Room    string `json:"room"`
	Message string `json:"message"`
	Kind    string `json:"type"`
}
