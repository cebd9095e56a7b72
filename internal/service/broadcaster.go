package service

// Broadcaster pushes realtime events to connected users (implemented by ws.Hub)
type Broadcaster interface {
	SendToUser(userID string, msgType string, payload interface{})
	BroadcastToCounsellors(college string, msgType string, payload interface{})
	// DisconnectUser drops the user's open connections
	DisconnectUser(userID string)
}

type noopBroadcaster struct{}

func (noopBroadcaster) SendToUser(string, string, interface{})             {}
func (noopBroadcaster) BroadcastToCounsellors(string, string, interface{}) {}
func (noopBroadcaster) DisconnectUser(string)                              {}
