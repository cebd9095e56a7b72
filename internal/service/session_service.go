package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"mindcare/internal/model"
	"mindcare/internal/repository"
)

const (
	defaultSessionMinutes = 50
	minSessionMinutes     = 15
	maxSessionMinutes     = 180
)

var sessionModes = []model.SessionMode{model.SessionInPerson, model.SessionVideo, model.SessionChat}

// SessionService books counselling sessions and moves them through their lifecycle
type SessionService struct {
	sessions    repository.SessionRepo
	users       repository.UserRepo
	broadcaster Broadcaster
	now         func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(sessions repository.SessionRepo, users repository.UserRepo) *SessionService {
	return &SessionService{
		sessions:    sessions,
		users:       users,
		broadcaster: noopBroadcaster{},
		now:         time.Now,
	}
}

// SetBroadcaster sets the realtime broadcaster (set after hub is created)
func (s *SessionService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Book requests a session with a counsellor of the student's college
func (s *SessionService) Book(ctx context.Context, actor *model.UserClaims, req *model.BookSessionRequest) (*model.Session, error) {
	if actor.Role != model.RoleStudent {
		return nil, ErrForbidden
	}
	if !req.ScheduledAt.After(s.now()) {
		return nil, fmt.Errorf("%w: session must be scheduled in the future", ErrInvalidInput)
	}

	duration := req.DurationMin
	if duration == 0 {
		duration = defaultSessionMinutes
	}
	if duration < minSessionMinutes || duration > maxSessionMinutes {
		return nil, fmt.Errorf("%w: duration must be between %d and %d minutes", ErrInvalidInput, minSessionMinutes, maxSessionMinutes)
	}

	mode := req.Mode
	if mode == "" {
		mode = model.SessionInPerson
	}
	if !lo.Contains(sessionModes, mode) {
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, mode)
	}

	counsellor, err := s.users.GetByID(ctx, req.CounsellorID)
	if err != nil {
		return nil, err
	}
	if counsellor == nil || !counsellor.Active || counsellor.Role != model.RoleCounsellor {
		return nil, fmt.Errorf("%w: counsellor", ErrNotFound)
	}
	if counsellor.College != actor.College {
		return nil, ErrForbidden
	}

	session := &model.Session{
		StudentID:    actor.UserID,
		CounsellorID: counsellor.ID,
		College:      actor.College,
		ScheduledAt:  req.ScheduledAt.UTC(),
		DurationMin:  duration,
		Mode:         mode,
		Status:       model.SessionRequested,
		Notes:        strings.TrimSpace(req.Notes),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	s.broadcaster.SendToUser(counsellor.ID, model.EventSessionUpdate, session)
	log.WithFields(log.Fields{"session_id": session.ID, "student_id": actor.UserID, "counsellor_id": counsellor.ID}).Info("session requested")
	return session, nil
}

// Confirm accepts a requested session (the session's counsellor only)
func (s *SessionService) Confirm(ctx context.Context, actor *model.UserClaims, id string) (*model.Session, error) {
	return s.transition(ctx, actor, id, model.SessionConfirmed, "", func(sess *model.Session) bool {
		return sess.CounsellorID == actor.UserID
	}, model.SessionRequested)
}

// Complete closes a confirmed session with optional notes (the session's counsellor only)
func (s *SessionService) Complete(ctx context.Context, actor *model.UserClaims, id, notes string) (*model.Session, error) {
	return s.transition(ctx, actor, id, model.SessionCompleted, notes, func(sess *model.Session) bool {
		return sess.CounsellorID == actor.UserID
	}, model.SessionConfirmed)
}

// Cancel withdraws an open session (either participant)
func (s *SessionService) Cancel(ctx context.Context, actor *model.UserClaims, id string) (*model.Session, error) {
	return s.transition(ctx, actor, id, model.SessionCancelled, "", func(sess *model.Session) bool {
		return sess.HasParticipant(actor.UserID)
	}, model.SessionRequested, model.SessionConfirmed)
}

func (s *SessionService) transition(
	ctx context.Context,
	actor *model.UserClaims,
	id string,
	to model.SessionStatus,
	notes string,
	allowed func(*model.Session) bool,
	from ...model.SessionStatus,
) (*model.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrNotFound
	}
	if !allowed(session) {
		return nil, ErrForbidden
	}
	if !lo.Contains(from, session.Status) {
		return nil, fmt.Errorf("%w: session is %s", ErrConflict, session.Status)
	}

	prev := session.Status
	session.Status = to
	if notes = strings.TrimSpace(notes); notes != "" {
		session.Notes = notes
	}
	updated, err := s.sessions.UpdateFrom(ctx, session, prev)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: session changed concurrently", ErrConflict)
	}

	other := session.StudentID
	if actor.UserID == session.StudentID {
		other = session.CounsellorID
	}
	s.broadcaster.SendToUser(other, model.EventSessionUpdate, session)
	return session, nil
}

// List returns the actor's sessions scheduled in [from, to)
func (s *SessionService) List(ctx context.Context, actor *model.UserClaims, from, to time.Time) ([]*model.Session, error) {
	return s.sessions.ListForUser(ctx, actor.UserID, from, to)
}

// Upcoming returns the actor's open sessions from now on
func (s *SessionService) Upcoming(ctx context.Context, actor *model.UserClaims) ([]*model.Session, error) {
	list, err := s.sessions.ListForUser(ctx, actor.UserID, s.now(), time.Time{})
	if err != nil {
		return nil, err
	}
	return lo.Filter(list, func(sess *model.Session, _ int) bool { return sess.Open() }), nil
}

// Today returns the actor's open sessions scheduled today
func (s *SessionService) Today(ctx context.Context, actor *model.UserClaims) ([]*model.Session, error) {
	from := startOfDay(s.now())
	list, err := s.sessions.ListForUser(ctx, actor.UserID, from, from.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	return lo.Filter(list, func(sess *model.Session, _ int) bool { return sess.Open() }), nil
}
