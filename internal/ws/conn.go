package ws

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// Conn is the write side of one live client channel. *websocket.Conn
// satisfies it; tests substitute fakes.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// ConnInfo describes one websocket connection for logging and events.
type ConnInfo struct {
	ConnID      string
	UserID      int64
	Username    string
	DeviceID    string
	IP          string
	RequestID   string
	TraceID     string
	ConnectedAt time.Time
}

func newConnID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return ""
	}
	return hex.EncodeToString(buf)
}
