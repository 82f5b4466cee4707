package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"esporte-social/internal/mocks"
	"esporte-social/internal/models"
)

func setupChatRouter(handler *ChatHistoryHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", int64(1))
		c.Next()
	})
	r.GET("/chat/:room_id/messages", handler.RoomMessages)
	return r
}

func TestRoomMessagesOldestFirstWithColors(t *testing.T) {
	messages := new(mocks.ChatMessageRepositoryMock)
	router := setupChatRouter(NewChatHistoryHandler(messages))

	base := time.Date(2025, 5, 10, 19, 0, 0, 0, time.UTC)
	messages.On("RecentMessages", mock.Anything, "flamengo-vs-corinthians", 50).
		Return([]models.RoomMessage{
			{
				ChatMessage:  models.ChatMessage{Message: "segunda", MessageType: "text", CreatedAt: base.Add(time.Minute)},
				Username:     "joana",
				FavoriteTeam: "Flamengo",
			},
			{
				ChatMessage: models.ChatMessage{Message: "primeira", MessageType: "text", CreatedAt: base},
				Username:    "ze",
			},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/flamengo-vs-corinthians/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		RoomID   string                  `json:"room_id"`
		Messages []models.MessagePayload `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "flamengo-vs-corinthians", resp.RoomID)
	require.Len(t, resp.Messages, 2)

	// Repository returns newest first; the response reads oldest first.
	assert.Equal(t, "primeira", resp.Messages[0].Message)
	assert.Equal(t, "ze", resp.Messages[0].Username)
	assert.Equal(t, "#007BFF", resp.Messages[0].TeamColors.Primary)
	assert.Equal(t, "19:00", resp.Messages[0].Timestamp)

	assert.Equal(t, "segunda", resp.Messages[1].Message)
	assert.Equal(t, "joana", resp.Messages[1].Username)
	assert.Equal(t, "#E60026", resp.Messages[1].TeamColors.Primary)
	assert.Equal(t, "19:01", resp.Messages[1].Timestamp)

	messages.AssertExpectations(t)
}

func TestRoomMessagesEmptyRoom(t *testing.T) {
	messages := new(mocks.ChatMessageRepositoryMock)
	router := setupChatRouter(NewChatHistoryHandler(messages))

	messages.On("RecentMessages", mock.Anything, "sala-vazia", 50).
		Return([]models.RoomMessage{}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/sala-vazia/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Messages []models.MessagePayload `json:"messages"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Empty(t, resp.Messages)
}

func TestRoomMessagesRepoError(t *testing.T) {
	messages := new(mocks.ChatMessageRepositoryMock)
	router := setupChatRouter(NewChatHistoryHandler(messages))

	messages.On("RecentMessages", mock.Anything, "r1", 50).
		Return(nil, assert.AnError).Once()

	req := httptest.NewRequest(http.MethodGet, "/chat/r1/messages", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	messages.AssertExpectations(t)
}
