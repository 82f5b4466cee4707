package ws

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"esporte-social/internal/mocks"
	"esporte-social/internal/models"
)

func newTestRelay(messages *mocks.ChatMessageRepositoryMock) *Relay {
	return &Relay{hub: NewHub(), messages: messages}
}

func identifiedSession(userID int64, username, favoriteTeam string) *session {
	user := models.User{ID: userID, Username: username}
	if favoriteTeam != "" {
		user.FavoriteTeam.String = favoriteTeam
		user.FavoriteTeam.Valid = true
	}
	return &session{user: user, identified: true}
}

func TestHandleEventAnonymousDropped(t *testing.T) {
	messages := new(mocks.ChatMessageRepositoryMock)
	relay := newTestRelay(messages)
	conn := &fakeConn{}
	sess := &session{}

	relay.HandleEvent(context.Background(), conn, sess, models.ClientEvent{
		Event:   "message",
		Room:    "flamengo-vs-corinthians",
		Message: "hello",
	})

	messages.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Empty(t, conn.events(t))
}

func TestHandleEventJoinAnnounced(t *testing.T) {
	relay := newTestRelay(new(mocks.ChatMessageRepositoryMock))
	resident := &fakeConn{}
	relay.hub.Join("flamengo-vs-corinthians", resident)

	conn := &fakeConn{}
	relay.HandleEvent(context.Background(), conn, identifiedSession(7, "joana", ""), models.ClientEvent{
		Event: "join",
		Room:  "flamengo-vs-corinthians",
	})

	require.Len(t, relay.hub.Members("flamengo-vs-corinthians"), 2)
	events := resident.events(t)
	require.Len(t, events, 1)
	assert.Equal(t, "status", events[0].Type)
	assert.Equal(t, "joana entrou no chat", events[0].Msg)
}

func TestHandleEventLeaveAnnounced(t *testing.T) {
	relay := newTestRelay(new(mocks.ChatMessageRepositoryMock))
	resident := &fakeConn{}
	conn := &fakeConn{}
	relay.hub.Join("r1", resident)
	relay.hub.Join("r1", conn)

	relay.HandleEvent(context.Background(), conn, identifiedSession(7, "joana", ""), models.ClientEvent{
		Event: "leave",
		Room:  "r1",
	})

	require.Len(t, relay.hub.Members("r1"), 1)
	events := resident.events(t)
	require.Len(t, events, 1)
	assert.Equal(t, "joana saiu do chat", events[0].Msg)
}

func TestHandleEventRoomlessJoinIgnored(t *testing.T) {
	relay := newTestRelay(new(mocks.ChatMessageRepositoryMock))
	conn := &fakeConn{}

	relay.HandleEvent(context.Background(), conn, identifiedSession(7, "joana", ""), models.ClientEvent{
		Event: "join",
	})

	assert.Empty(t, conn.events(t))
}

func TestHandleEventMessagePersistedAndBroadcast(t *testing.T) {
	messages := new(mocks.ChatMessageRepositoryMock)
	created := time.Date(2025, 5, 10, 19, 30, 0, 0, time.UTC)
	messages.On("CreateMessage", mock.Anything, int64(7), "flamengo-vs-corinthians", "hello", "text").
		Return(models.ChatMessage{
			ID:          1,
			UserID:      7,
			RoomID:      "flamengo-vs-corinthians",
			Message:     "hello",
			MessageType: "text",
			CreatedAt:   created,
		}, nil).Once()

	relay := newTestRelay(messages)
	sender := &fakeConn{}
	other := &fakeConn{}
	relay.hub.Join("flamengo-vs-corinthians", sender)
	relay.hub.Join("flamengo-vs-corinthians", other)

	relay.HandleEvent(context.Background(), sender, identifiedSession(7, "joana", "Flamengo"), models.ClientEvent{
		Event:   "message",
		Room:    "flamengo-vs-corinthians",
		Message: "hello",
	})

	messages.AssertExpectations(t)
	for _, conn := range []*fakeConn{sender, other} {
		events := conn.events(t)
		require.Len(t, events, 1)
		assert.Equal(t, "message", events[0].Type)
		require.NotNil(t, events[0].Message)
		assert.Equal(t, "joana", events[0].Message.Username)
		assert.Equal(t, "hello", events[0].Message.Message)
		assert.Equal(t, "text", events[0].Message.MessageType)
		assert.Equal(t, "19:30", events[0].Message.Timestamp)
		assert.Equal(t, "#E60026", events[0].Message.TeamColors.Primary)
		assert.Equal(t, "#000000", events[0].Message.TeamColors.Secondary)
	}
}

func TestHandleEventMessageWithoutFavoriteTeamFallsBack(t *testing.T) {
	messages := new(mocks.ChatMessageRepositoryMock)
	messages.On("CreateMessage", mock.Anything, int64(7), "r1", "oi", "text").
		Return(models.ChatMessage{Message: "oi", MessageType: "text", CreatedAt: time.Now()}, nil).Once()

	relay := newTestRelay(messages)
	sender := &fakeConn{}
	relay.hub.Join("r1", sender)

	relay.HandleEvent(context.Background(), sender, identifiedSession(7, "joana", ""), models.ClientEvent{
		Event:   "message",
		Room:    "r1",
		Message: "oi",
	})

	events := sender.events(t)
	require.Len(t, events, 1)
	require.NotNil(t, events[0].Message)
	assert.Equal(t, "#007BFF", events[0].Message.TeamColors.Primary)
	assert.Equal(t, "#FFFFFF", events[0].Message.TeamColors.Secondary)
}

func TestHandleEventPersistFailureOnlyTellsSender(t *testing.T) {
	messages := new(mocks.ChatMessageRepositoryMock)
	messages.On("CreateMessage", mock.Anything, int64(7), "r1", "oi", "text").
		Return(nil, errors.New("connection refused")).Once()

	relay := newTestRelay(messages)
	sender := &fakeConn{}
	other := &fakeConn{}
	relay.hub.Join("r1", sender)
	relay.hub.Join("r1", other)

	relay.HandleEvent(context.Background(), sender, identifiedSession(7, "joana", "Flamengo"), models.ClientEvent{
		Event:   "message",
		Room:    "r1",
		Message: "oi",
	})

	messages.AssertExpectations(t)
	events := sender.events(t)
	require.Len(t, events, 1)
	assert.Equal(t, "error", events[0].Type)
	assert.Equal(t, "não foi possível enviar a mensagem", events[0].Msg)
	assert.Empty(t, other.events(t))
}

func TestHandleEventUnknownKindDropped(t *testing.T) {
	messages := new(mocks.ChatMessageRepositoryMock)
	relay := newTestRelay(messages)
	conn := &fakeConn{}
	relay.hub.Join("r1", conn)

	relay.HandleEvent(context.Background(), conn, identifiedSession(7, "joana", ""), models.ClientEvent{
		Event: "typing",
		Room:  "r1",
	})

	assert.Empty(t, conn.events(t))
}

func TestDisconnectAnnouncesDepartures(t *testing.T) {
	relay := newTestRelay(new(mocks.ChatMessageRepositoryMock))
	conn := &fakeConn{}
	witness1 := &fakeConn{}
	witness2 := &fakeConn{}
	relay.hub.Join("r1", conn)
	relay.hub.Join("r2", conn)
	relay.hub.Join("r1", witness1)
	relay.hub.Join("r2", witness2)

	sess := identifiedSession(7, "joana", "")
	sess.info.ConnectedAt = time.Now()
	relay.disconnect(conn, sess, "read timeout")

	for _, witness := range []*fakeConn{witness1, witness2} {
		events := witness.events(t)
		require.Len(t, events, 1)
		assert.Equal(t, "joana saiu do chat", events[0].Msg)
	}
	require.Len(t, relay.hub.Members("r1"), 1)
	require.Len(t, relay.hub.Members("r2"), 1)
}

func TestDisconnectAnonymousIsSilent(t *testing.T) {
	relay := newTestRelay(new(mocks.ChatMessageRepositoryMock))
	conn := &fakeConn{}
	witness := &fakeConn{}
	relay.hub.Join("r1", conn)
	relay.hub.Join("r1", witness)

	sess := &session{}
	sess.info.ConnectedAt = time.Now()
	relay.disconnect(conn, sess, "")

	assert.Empty(t, witness.events(t))
	require.Len(t, relay.hub.Members("r1"), 1)
}

func TestDecodeClientEvent(t *testing.T) {
	event, err := decodeClientEvent([]byte(`{"event":"message","room":"r1","message":"oi","type":"text"}`))
	require.NoError(t, err)
	assert.Equal(t, "message", event.Event)
	assert.Equal(t, "r1", event.Room)
	assert.Equal(t, "oi", event.Message)
	assert.Equal(t, "text", event.Kind)

	_, err = decodeClientEvent([]byte("not json"))
	assert.Error(t, err)
}
