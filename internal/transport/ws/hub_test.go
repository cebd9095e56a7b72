package ws

import (
	"encoding/json"
	"testing"
	"time"

	"mindcare/internal/model"
)

func newConn(h *Hub, userID string, role model.Role, college string) *Connection {
	return &Connection{UserID: userID, Role: role, College: college, Send: make(chan []byte, 16), Hub: h}
}

func recv(t *testing.T, conn *Connection) Message {
	t.Helper()
	select {
	case data, ok := <-conn.Send:
		if !ok {
			t.Fatalf("%s: send channel closed", conn.UserID)
		}
		var m Message
		if err := json.Unmarshal(data, &m); err != nil {
			t.Fatalf("bad message %s: %v", data, err)
		}
		return m
	case <-time.After(time.Second):
		t.Fatalf("%s: no message", conn.UserID)
	}
	return Message{}
}

func TestHub_SendToUserReachesEveryConnection(t *testing.T) {
	h := NewHub()
	defer h.Close()

	tab1 := newConn(h, "stu-1", model.RoleStudent, "Riverside")
	tab2 := newConn(h, "stu-1", model.RoleStudent, "Riverside")
	h.Register(tab1)
	h.Register(tab2)

	h.SendToUser("stu-1", model.EventChatMessage, map[string]string{"text": "hi"})

	for _, c := range []*Connection{tab1, tab2} {
		m := recv(t, c)
		if m.Type != model.EventChatMessage || string(m.Payload) != `{"text":"hi"}` {
			t.Errorf("got %s %s", m.Type, m.Payload)
		}
	}
}

func TestHub_BroadcastToCounsellorsOfCollege(t *testing.T) {
	h := NewHub()
	defer h.Close()

	here := newConn(h, "coun-1", model.RoleCounsellor, "Riverside")
	elsewhere := newConn(h, "coun-9", model.RoleCounsellor, "Hilltop")
	studentConn := newConn(h, "stu-7", model.RoleStudent, "Riverside")
	h.Register(here)
	h.Register(elsewhere)
	h.Register(studentConn)
	recv(t, here) // presence of stu-7

	h.BroadcastToCounsellors("Riverside", model.EventCrisisAlert, model.CrisisAlert{StudentID: "stu-1"})
	// Messages are delivered in order, so these mark that the broadcast has been processed
	h.SendToUser("coun-9", "marker", nil)
	h.SendToUser("stu-7", "marker", nil)

	if m := recv(t, here); m.Type != model.EventCrisisAlert {
		t.Errorf("counsellor got %s", m.Type)
	}
	if m := recv(t, elsewhere); m.Type != "marker" {
		t.Errorf("other college got %s", m.Type)
	}
	if m := recv(t, studentConn); m.Type != "marker" {
		t.Errorf("student got %s", m.Type)
	}
}

func TestHub_PresenceForStudents(t *testing.T) {
	h := NewHub()
	defer h.Close()

	coun := newConn(h, "coun-1", model.RoleCounsellor, "Riverside")
	h.Register(coun)

	stu := newConn(h, "stu-1", model.RoleStudent, "Riverside")
	h.Register(stu)

	m := recv(t, coun)
	var p model.Presence
	if err := json.Unmarshal(m.Payload, &p); err != nil {
		t.Fatal(err)
	}
	if m.Type != model.EventPresence || p.UserID != "stu-1" || !p.Online {
		t.Errorf("online presence = %s %+v", m.Type, p)
	}

	h.Unregister(stu)
	m = recv(t, coun)
	if err := json.Unmarshal(m.Payload, &p); err != nil {
		t.Fatal(err)
	}
	if p.Online {
		t.Errorf("offline presence = %+v", p)
	}
	if _, ok := <-stu.Send; ok {
		t.Error("unregistered connection still open")
	}
}

func TestHub_ReplyTargetsOneConnection(t *testing.T) {
	h := NewHub()
	defer h.Close()

	tab1 := newConn(h, "stu-1", model.RoleStudent, "Riverside")
	tab2 := newConn(h, "stu-1", model.RoleStudent, "Riverside")
	h.Register(tab1)
	h.Register(tab2)

	h.Reply(tab1, model.EventError, map[string]string{"error": "nope"})
	h.SendToUser("stu-1", "marker", nil)

	if m := recv(t, tab1); m.Type != model.EventError {
		t.Errorf("tab1 got %s", m.Type)
	}
	if m := recv(t, tab2); m.Type != "marker" {
		t.Errorf("tab2 got %s", m.Type)
	}
}

func TestHub_CloseDisconnectsClients(t *testing.T) {
	h := NewHub()
	conn := newConn(h, "stu-1", model.RoleStudent, "Riverside")
	h.Register(conn)
	h.Close()

	select {
	case _, ok := <-conn.Send:
		if ok {
			t.Error("unexpected message after close")
		}
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}

	// Safe to call after close
	h.Close()
	h.Unregister(conn)
	h.SendToUser("stu-1", model.EventChatMessage, nil)
}

func TestHub_DisconnectUser(t *testing.T) {
	h := NewHub()
	defer h.Close()

	counsellor := newConn(h, "coun-1", model.RoleCounsellor, "Riverside")
	tab := newConn(h, "stu-1", model.RoleStudent, "Riverside")
	h.Register(counsellor)
	h.Register(tab)
	recv(t, counsellor) // online

	h.DisconnectUser("stu-1")

	select {
	case _, ok := <-tab.Send:
		if ok {
			t.Fatal("expected the send channel to be closed")
		}
	case <-time.After(time.Second):
		t.Fatal("connection still open")
	}
	m := recv(t, counsellor)
	var p model.Presence
	if err := json.Unmarshal(m.Payload, &p); err != nil || m.Type != model.EventPresence || p.Online {
		t.Errorf("presence = %s %s", m.Type, m.Payload)
	}
	if h.Online("stu-1") {
		t.Error("stu-1 still online")
	}

	// The read pump unregisters afterwards; that must be a no-op
	h.Unregister(tab)
}
