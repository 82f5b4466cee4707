package ws

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"

	"esporte-social/internal/models"
	"esporte-social/internal/observability"
	"esporte-social/internal/repositories"
	"esporte-social/internal/teams"
)

const wsEventsRoutingKey = "ws_events.rooms"

// IdentityResolver maps a session token to a user; auth.Directory satisfies
// it.
type IdentityResolver interface {
	Resolve(ctx context.Context, token string) (models.User, error)
}

// Relay orchestrates the room chat: it upgrades connections, resolves the
// sender identity, persists messages and fans events out to room members.
type Relay struct {
	hub       *Hub
	directory IdentityResolver
	messages  repositories.ChatMessageRepository
}

// NewRelay constructs a Relay.
func NewRelay(hub *Hub, directory IdentityResolver, messages repositories.ChatMessageRepository) *Relay {
	return &Relay{hub: hub, directory: directory, messages: messages}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// session is the per-connection relay state. A connection whose token did
// not resolve stays anonymous; its events are dropped without feedback.
type session struct {
	user       models.User
	identified bool
	info       ConnInfo
}

// Handle upgrades the connection and serves its event loop.
func (r *Relay) Handle(c *gin.Context) {
	ctx, span := otel.Tracer("esporte-social/ws").Start(c.Request.Context(), "ws.handshake")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	token := bearerToken(c)
	user, err := r.directory.Resolve(ctx, token)
	identified := err == nil

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	sess := &session{
		user:       user,
		identified: identified,
		info: ConnInfo{
			ConnID:      newConnID(),
			UserID:      user.ID,
			Username:    user.Username,
			DeviceID:    observability.DeviceIDFromRequest(c.Request),
			IP:          observability.IPFromRequest(c.Request),
			RequestID:   observability.RequestIDFromRequest(c.Request),
			TraceID:     span.SpanContext().TraceID().String(),
			ConnectedAt: time.Now(),
		},
	}

	observability.IncWSActive()
	observability.IncWSEvent("ws_connect")
	r.publishWSEvent(context.Background(), "ws_connect", sess.info, "")

	go r.readLoop(conn, sess)
}

func (r *Relay) readLoop(conn *websocket.Conn, sess *session) {
	var closeReason string
	defer func() {
		r.disconnect(conn, sess, closeReason)
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			closeReason = err.Error()
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				observability.IncWSEvent("ws_error")
				r.publishWSEvent(context.Background(), "ws_error", sess.info, closeReason)
			}
			return
		}

		event, err := decodeClientEvent(data)
		if err != nil {
			observability.IncWSEvent("malformed")
			continue
		}
		r.HandleEvent(context.Background(), conn, sess, event)
	}
}

// HandleEvent processes one client event. Unauthenticated and malformed
// events are dropped without any feedback to the room.
func (r *Relay) HandleEvent(ctx context.Context, conn Conn, sess *session, event models.ClientEvent) {
	if !sess.identified {
		observability.IncWSEvent("unauthenticated")
		return
	}

	switch event.Event {
	case "join":
		r.handleJoin(conn, sess, event)
	case "leave":
		r.handleLeave(conn, sess, event)
	case "message":
		r.handleMessage(ctx, conn, sess, event)
	default:
		observability.IncWSEvent("malformed")
	}
}

func (r *Relay) handleJoin(conn Conn, sess *session, event models.ClientEvent) {
	if event.Room == "" {
		return
	}
	r.hub.Join(event.Room, conn)
	observability.IncWSEvent("join")
	r.hub.Broadcast(event.Room, models.ChatEvent{
		Type: "status",
		Msg:  fmt.Sprintf("%s entrou no chat", sess.user.Username),
	})
}

func (r *Relay) handleLeave(conn Conn, sess *session, event models.ClientEvent) {
	if event.Room == "" {
		return
	}
	r.hub.Leave(event.Room, conn)
	observability.IncWSEvent("leave")
	r.hub.Broadcast(event.Room, models.ChatEvent{
		Type: "status",
		Msg:  fmt.Sprintf("%s saiu do chat", sess.user.Username),
	})
}

func (r *Relay) handleMessage(ctx context.Context, conn Conn, sess *session, event models.ClientEvent) {
	if event.Room == "" || event.Message == "" {
		return
	}
	kind := event.Kind
	if kind == "" {
		kind = models.DefaultMessageType
	}

	// Persist first; a message that failed to record durably is never
	// fanned out. The failure is reported to the sender only.
	msg, err := r.messages.CreateMessage(ctx, sess.user.ID, event.Room, event.Message, kind)
	if err != nil {
		log.Printf("chat message persist failed room=%s user=%d: %v", event.Room, sess.user.ID, err)
		observability.IncWSEvent("persist_error")
		_ = r.hub.SendTo(conn, models.ChatEvent{
			Type: "error",
			Msg:  "não foi possível enviar a mensagem",
		})
		return
	}

	observability.IncWSEvent("message")
	r.hub.Broadcast(event.Room, models.ChatEvent{
		Type: "message",
		Message: &models.MessagePayload{
			Username:    sess.user.Username,
			Message:     msg.Message,
			MessageType: msg.MessageType,
			Timestamp:   msg.CreatedAt.Format("15:04"),
			TeamColors:  teams.Colors(sess.user.Team()),
		},
	})
}

// disconnect deregisters the connection everywhere and announces the
// departure to each room it was still a member of.
func (r *Relay) disconnect(conn Conn, sess *session, reason string) {
	rooms := r.hub.RemoveEverywhere(conn)
	if sess.identified {
		for _, room := range rooms {
			r.hub.Broadcast(room, models.ChatEvent{
				Type: "status",
				Msg:  fmt.Sprintf("%s saiu do chat", sess.user.Username),
			})
		}
	}

	observability.DecWSActive()
	observability.IncWSEvent("ws_disconnect")
	r.publishWSEvent(context.Background(), "ws_disconnect", sess.info, reason)
}

func (r *Relay) publishWSEvent(ctx context.Context, event string, info ConnInfo, reason string) {
	payload := map[string]any{
		"ws": map[string]any{
			"event":       event,
			"conn_id":     info.ConnID,
			"duration_ms": time.Since(info.ConnectedAt).Milliseconds(),
			"reason":      reason,
		},
		"identity": map[string]any{
			"user_id":   info.UserID,
			"username":  info.Username,
			"device_id": info.DeviceID,
			"ip":        info.IP,
		},
	}

	headers := observability.BuildHeaders(info.RequestID, info.TraceID)
	_ = observability.PublishEvent(ctx, wsEventsRoutingKey, observability.EventEnvelope{
		EventType: "ws_events",
		EventName: event,
		Payload:   payload,
	}, headers)
}

func decodeClientEvent(data []byte) (models.ClientEvent, error) {
	var event models.ClientEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return models.ClientEvent{}, err
	}
	return event, nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		// Browser websocket clients cannot set headers; accept ?token=.
		return c.Query("token")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
