package model

// Realtime event types pushed over the WebSocket hub
const (
	EventChatMessage   = "chat_message"
	EventCrisisAlert   = "crisis_alert"
	EventPresence      = "presence"
	EventSessionUpdate = "session_update"
	EventError         = "error"
)

// Presence is sent to counsellors when a student of their college connects or leaves
type Presence struct {
	UserID string `json:"userId"`
	Online bool   `json:"online"`
}

// DirectMessage is the client payload for a chat_message event
type DirectMessage struct {
	To   string `json:"to"`
	Text string `json:"text"`
}
