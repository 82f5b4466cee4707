package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"esporte-social/internal/models"
	"esporte-social/internal/repositories"
	"esporte-social/internal/teams"
)

// historyLimit caps how many messages a room backfill returns.
const historyLimit = 50

// ChatHistoryHandler serves the room message backfill.
type ChatHistoryHandler struct {
	messages repositories.ChatMessageRepository
}

// NewChatHistoryHandler constructs a ChatHistoryHandler.
func NewChatHistoryHandler(messages repositories.ChatMessageRepository) *ChatHistoryHandler {
	return &ChatHistoryHandler{messages: messages}
}

// RoomMessages returns the latest messages of a room, oldest first, in the
// same shape the live relay broadcasts.
func (h *ChatHistoryHandler) RoomMessages(c *gin.Context) {
	roomID := c.Param("room_id")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sala inválida"})
		return
	}

	recent, err := h.messages.RecentMessages(c.Request.Context(), roomID, historyLimit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "não foi possível carregar as mensagens"})
		return
	}

	// RecentMessages returns newest first; the client renders top down.
	payloads := make([]models.MessagePayload, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		msg := recent[i]
		payloads = append(payloads, models.MessagePayload{
			Username:    msg.Username,
			Message:     msg.Message,
			MessageType: msg.MessageType,
			Timestamp:   msg.CreatedAt.Format("15:04"),
			TeamColors:  teams.Colors(msg.FavoriteTeam),
		})
	}

	c.JSON(http.StatusOK, gin.H{"room_id": roomID, "messages": payloads})
}
