package model

import "time"

type SessionStatus string

const (
	SessionRequested SessionStatus = "requested"
	SessionConfirmed SessionStatus = "confirmed"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

type SessionMode string

const (
	SessionInPerson SessionMode = "in_person"
	SessionVideo    SessionMode = "video"
	SessionChat     SessionMode = "chat"
)

// Session is a counselling appointment between a student and a counsellor
type Session struct {
	ID           string        `json:"id" bson:"_id"`
	StudentID    string        `json:"studentId" bson:"studentId"`
	CounsellorID string        `json:"counsellorId" bson:"counsellorId"`
	College      string        `json:"college" bson:"college"`
	ScheduledAt  time.Time     `json:"scheduledAt" bson:"scheduledAt"`
	DurationMin  int           `json:"durationMin" bson:"durationMin"`
	Mode         SessionMode   `json:"mode" bson:"mode"`
	Status       SessionStatus `json:"status" bson:"status"`
	Notes        string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt    time.Time     `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt" bson:"updatedAt"`
}

// Open is true while the session can still take place
func (s *Session) Open() bool {
	return s.Status == SessionRequested || s.Status == SessionConfirmed
}

// HasParticipant reports whether userID is the student or the counsellor
func (s *Session) HasParticipant(userID string) bool {
	return s.StudentID == userID || s.CounsellorID == userID
}

// BookSessionRequest is the body for POST /v1/sessions
type BookSessionRequest struct {
	CounsellorID string      `json:"counsellorId"`
	ScheduledAt  time.Time   `json:"scheduledAt"`
	DurationMin  int         `json:"durationMin"`
	Mode         SessionMode `json:"mode"`
	Notes        string      `json:"notes"`
}
