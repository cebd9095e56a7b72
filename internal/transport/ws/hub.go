package ws

import (
	"encoding/json"
	"sync"

	log "github.com/sirupsen/logrus"

	"mindcare/internal/model"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub tracks the connections of every signed in user
type Hub struct {
	// userID -> connections (one per open tab or device)
	conns map[string]map[*Connection]bool
	// college -> counsellor connections
	counsellors map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	disconnect chan string
	done       chan struct{}
	closeOnce  sync.Once
}

// Connection represents a WebSocket connection
type Connection struct {
	UserID  string
	Role    model.Role
	College string
	Send    chan []byte
	Hub     *Hub
}

// BroadcastMessage is a message to deliver. Exactly one of ToConn, ToUser
// and ToCollege is set.
type BroadcastMessage struct {
	ToConn    *Connection
	ToUser    string
	ToCollege string
	Message   *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:       make(map[string]map[*Connection]bool),
		counsellors: make(map[string]map[*Connection]bool),
		register:    make(chan *Connection),
		unregister:  make(chan *Connection),
		broadcast:   make(chan *BroadcastMessage, 256),
		disconnect:  make(chan string),
		done:        make(chan struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			first := len(h.conns[conn.UserID]) == 0
			addConn(h.conns, conn.UserID, conn)
			if conn.Role == model.RoleCounsellor {
				addConn(h.counsellors, conn.College, conn)
			}
			if first && conn.Role == model.RoleStudent {
				h.notifyPresence(conn, true)
			}
			h.mu.Unlock()
			log.WithFields(log.Fields{"user_id": conn.UserID, "role": conn.Role}).Debug("websocket connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.conns[conn.UserID][conn] {
				removeConn(h.conns, conn.UserID, conn)
				removeConn(h.counsellors, conn.College, conn)
				close(conn.Send)
				if len(h.conns[conn.UserID]) == 0 && conn.Role == model.RoleStudent {
					h.notifyPresence(conn, false)
				}
				log.WithField("user_id", conn.UserID).Debug("websocket disconnected")
			}
			h.mu.Unlock()

		case userID := <-h.disconnect:
			h.mu.Lock()
			for conn := range h.conns[userID] {
				removeConn(h.conns, userID, conn)
				removeConn(h.counsellors, conn.College, conn)
				close(conn.Send)
				if len(h.conns[userID]) == 0 && conn.Role == model.RoleStudent {
					h.notifyPresence(conn, false)
				}
			}
			h.mu.Unlock()
			log.WithField("user_id", userID).Info("websocket connections dropped")

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg.Message)
			if err != nil {
				log.WithError(err).Error("failed to encode websocket message")
				continue
			}
			h.mu.RLock()
			switch {
			case msg.ToConn != nil:
				if h.conns[msg.ToConn.UserID][msg.ToConn] {
					deliver(map[*Connection]bool{msg.ToConn: true}, data)
				}
			case msg.ToUser != "":
				deliver(h.conns[msg.ToUser], data)
			default:
				deliver(h.counsellors[msg.ToCollege], data)
			}
			h.mu.RUnlock()

		case <-h.done:
			h.mu.Lock()
			for _, set := range h.conns {
				for conn := range set {
					close(conn.Send)
				}
			}
			h.conns = make(map[string]map[*Connection]bool)
			h.counsellors = make(map[string]map[*Connection]bool)
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// DisconnectUser closes every connection of a user (implements service.Broadcaster)
func (h *Hub) DisconnectUser(userID string) {
	select {
	case h.disconnect <- userID:
	case <-h.done:
	}
}

// Close disconnects every client and stops the hub
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// Online reports whether a user has at least one open connection
func (h *Hub) Online(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns[userID]) > 0
}

// SendToUser sends a message to every connection of a user (implements service.Broadcaster)
func (h *Hub) SendToUser(userID string, msgType string, payload interface{}) {
	h.enqueue(&BroadcastMessage{ToUser: userID}, msgType, payload)
}

// BroadcastToCounsellors sends a message to the connected counsellors of a
// college (implements service.Broadcaster)
func (h *Hub) BroadcastToCounsellors(college string, msgType string, payload interface{}) {
	h.enqueue(&BroadcastMessage{ToCollege: college}, msgType, payload)
}

// Reply sends a message to a single connection
func (h *Hub) Reply(conn *Connection, msgType string, payload interface{}) {
	h.enqueue(&BroadcastMessage{ToConn: conn}, msgType, payload)
}

func (h *Hub) enqueue(msg *BroadcastMessage, msgType string, payload interface{}) {
	m, err := newMessage(msgType, payload)
	if err != nil {
		log.WithError(err).WithField("type", msgType).Error("failed to encode websocket payload")
		return
	}
	msg.Message = m
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// notifyPresence tells the counsellors of a student's college that the
// student came online or went away. Caller holds h.mu.
func (h *Hub) notifyPresence(conn *Connection, online bool) {
	m, err := newMessage(model.EventPresence, model.Presence{UserID: conn.UserID, Online: online})
	if err != nil {
		return
	}
	data, _ := json.Marshal(m)
	deliver(h.counsellors[conn.College], data)
}

func newMessage(msgType string, payload interface{}) (*Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Type: msgType, Payload: data}, nil
}

func deliver(set map[*Connection]bool, data []byte) {
	for conn := range set {
		select {
		case conn.Send <- data:
		default:
			// Drop message if buffer full
		}
	}
}

func addConn(index map[string]map[*Connection]bool, key string, conn *Connection) {
	if index[key] == nil {
		index[key] = make(map[*Connection]bool)
	}
	index[key][conn] = true
}

func removeConn(index map[string]map[*Connection]bool, key string, conn *Connection) {
	if set, ok := index[key]; ok {
		delete(set, conn)
		if len(set) == 0 {
			delete(index, key)
		}
	}
}
