package ws

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"mindcare/internal/model"
	"mindcare/internal/service"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8192
	handleTimeout  = 10 * time.Second
)

// TokenValidator resolves the ?token= query parameter (implemented by service.AuthService)
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*model.UserClaims, error)
}

// DirectMessenger delivers chat_message events sent by clients (implemented by service.ChatService)
type DirectMessenger interface {
	SendDirect(ctx context.Context, actor *model.UserClaims, to, text string) (*model.ChatMessage, error)
}

// Handler handles WebSocket connections
type Handler struct {
	hub      *Hub
	auth     TokenValidator
	chat     DirectMessenger
	upgrader websocket.Upgrader
}

// NewHandler creates a new WebSocket handler. origins is the CORS
// origin list; "*" accepts any origin.
func NewHandler(hub *Hub, auth TokenValidator, chat DirectMessenger, origins []string) *Handler {
	return &Handler{
		hub:  hub,
		auth: auth,
		chat: chat,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || lo.Contains(origins, "*") || lo.Contains(origins, origin)
			},
		},
	}
}

// ServeWS handles GET /v1/ws?token=
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "missing token", http.StatusUnauthorized)
		return
	}

	claims, err := h.auth.ValidateToken(r.Context(), token)
	if err != nil {
		http.Error(w, "invalid token", http.StatusUnauthorized)
		return
	}

	wsConn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	conn := &Connection{
		UserID:  claims.UserID,
		Role:    claims.Role,
		College: claims.College,
		Send:    make(chan []byte, 256),
		Hub:     h.hub,
	}
	h.hub.Register(conn)

	go h.writePump(wsConn, conn)
	go h.readPump(wsConn, conn, claims)
}

func (h *Handler) readPump(wsConn *websocket.Conn, conn *Connection, claims *model.UserClaims) {
	defer func() {
		h.hub.Unregister(conn)
		wsConn.Close()
	}()

	wsConn.SetReadLimit(maxMessageSize)
	wsConn.SetReadDeadline(time.Now().Add(pongWait))
	wsConn.SetPongHandler(func(string) error {
		wsConn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := wsConn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithError(err).WithField("user_id", conn.UserID).Warn("websocket read error")
			}
			break
		}
		h.handle(conn, claims, data)
	}
}

// handle processes one client event and answers on the same connection
func (h *Handler) handle(conn *Connection, claims *model.UserClaims, data []byte) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		h.hub.Reply(conn, model.EventError, errorPayload("malformed message"))
		return
	}

	switch msg.Type {
	case model.EventChatMessage:
		var dm model.DirectMessage
		if err := json.Unmarshal(msg.Payload, &dm); err != nil || dm.To == "" {
			h.hub.Reply(conn, model.EventError, errorPayload("chat_message needs to and text"))
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
		defer cancel()
		sent, err := h.chat.SendDirect(ctx, claims, dm.To, dm.Text)
		if err != nil {
			h.hub.Reply(conn, model.EventError, errorPayload(clientError(err)))
			return
		}
		h.hub.Reply(conn, model.EventChatMessage, sent)
	default:
		h.hub.Reply(conn, model.EventError, errorPayload("unsupported message type "+msg.Type))
	}
}

func (h *Handler) writePump(wsConn *websocket.Conn, conn *Connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		wsConn.Close()
	}()

	for {
		select {
		case message, ok := <-conn.Send:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				wsConn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := wsConn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			wsConn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := wsConn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func errorPayload(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// clientError hides internal failures from the client
func clientError(err error) string {
	for _, public := range []error{service.ErrInvalidInput, service.ErrForbidden, service.ErrNotFound, service.ErrConflict} {
		if errors.Is(err, public) {
			return err.Error()
		}
	}
	log.WithError(err).Error("websocket chat_message failed")
	return "internal error"
}
