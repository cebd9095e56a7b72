package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"mindcare/internal/model"
	"mindcare/internal/service/servicetest"
)

func book(t *testing.T, e *testEnv, at time.Time) *model.Session {
	t.Helper()
	s, err := e.sessions.Book(context.Background(), claimsFor(student), &model.BookSessionRequest{
		CounsellorID: coun.ID,
		ScheduledAt:  at,
	})
	if err != nil {
		t.Fatalf("Book: %v", err)
	}
	return s
}

func TestBook(t *testing.T) {
	e := newTestEnv()
	s := book(t, e, testNow.Add(2*time.Hour))

	if s.Status != model.SessionRequested || s.DurationMin != defaultSessionMinutes || s.Mode != model.SessionInPerson {
		t.Errorf("session = %+v", s)
	}
	updates := e.hub.OfType(model.EventSessionUpdate)
	if len(updates) != 1 || updates[0].To != coun.ID {
		t.Errorf("updates = %+v", updates)
	}
}

func TestBook_Validation(t *testing.T) {
	future := testNow.Add(24 * time.Hour)
	tests := []struct {
		name  string
		actor *model.User
		req   model.BookSessionRequest
		want  error
	}{
		{"in the past", student, model.BookSessionRequest{CounsellorID: coun.ID, ScheduledAt: testNow.Add(-time.Hour)}, ErrInvalidInput},
		{"too long", student, model.BookSessionRequest{CounsellorID: coun.ID, ScheduledAt: future, DurationMin: 600}, ErrInvalidInput},
		{"bad mode", student, model.BookSessionRequest{CounsellorID: coun.ID, ScheduledAt: future, Mode: "carrier pigeon"}, ErrInvalidInput},
		{"not a counsellor", student, model.BookSessionRequest{CounsellorID: peer.ID, ScheduledAt: future}, ErrNotFound},
		{"other college", student, model.BookSessionRequest{CounsellorID: outsider.ID, ScheduledAt: future}, ErrForbidden},
		{"counsellor booking", coun, model.BookSessionRequest{CounsellorID: coun.ID, ScheduledAt: future}, ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEnv()
			if _, err := e.sessions.Book(context.Background(), claimsFor(tt.actor), &tt.req); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	s := book(t, e, testNow.Add(time.Hour))

	if _, err := e.sessions.Confirm(ctx, claimsFor(student), s.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("student confirm err = %v", err)
	}
	if _, err := e.sessions.Complete(ctx, claimsFor(coun), s.ID, ""); !errors.Is(err, ErrConflict) {
		t.Errorf("complete before confirm err = %v", err)
	}

	confirmed, err := e.sessions.Confirm(ctx, claimsFor(coun), s.ID)
	if err != nil || confirmed.Status != model.SessionConfirmed {
		t.Fatalf("Confirm = %+v, %v", confirmed, err)
	}

	done, err := e.sessions.Complete(ctx, claimsFor(coun), s.ID, "  talked about exam stress ")
	if err != nil || done.Status != model.SessionCompleted || done.Notes != "talked about exam stress" {
		t.Fatalf("Complete = %+v, %v", done, err)
	}

	if _, err := e.sessions.Cancel(ctx, claimsFor(student), s.ID); !errors.Is(err, ErrConflict) {
		t.Errorf("cancel completed err = %v", err)
	}
	if _, err := e.sessions.Cancel(ctx, claimsFor(peer), s.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("stranger cancel err = %v", err)
	}
	if _, err := e.sessions.Confirm(ctx, claimsFor(coun), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing err = %v", err)
	}
}

func TestCancel_EitherParticipant(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	a := book(t, e, testNow.Add(time.Hour))
	b := book(t, e, testNow.Add(2*time.Hour))

	if s, err := e.sessions.Cancel(ctx, claimsFor(student), a.ID); err != nil || s.Status != model.SessionCancelled {
		t.Errorf("student cancel = %+v, %v", s, err)
	}
	if s, err := e.sessions.Cancel(ctx, claimsFor(coun), b.ID); err != nil || s.Status != model.SessionCancelled {
		t.Errorf("counsellor cancel = %+v, %v", s, err)
	}

	last := e.hub.Events[len(e.hub.Events)-1]
	if last.To != student.ID {
		t.Errorf("cancel by counsellor notified %s", last.To)
	}
}

func TestUpcomingAndToday(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	today := book(t, e, testNow.Add(3*time.Hour))
	later := book(t, e, testNow.Add(72*time.Hour))
	cancelled := book(t, e, testNow.Add(4*time.Hour))
	if _, err := e.sessions.Cancel(ctx, claimsFor(student), cancelled.ID); err != nil {
		t.Fatal(err)
	}

	upcoming, err := e.sessions.Upcoming(ctx, claimsFor(student))
	if err != nil {
		t.Fatal(err)
	}
	if len(upcoming) != 2 || upcoming[0].ID != today.ID || upcoming[1].ID != later.ID {
		t.Errorf("upcoming = %+v", upcoming)
	}

	todays, err := e.sessions.Today(ctx, claimsFor(coun))
	if err != nil {
		t.Fatal(err)
	}
	if len(todays) != 1 || todays[0].ID != today.ID {
		t.Errorf("today = %+v", todays)
	}
}

// racingSessions cancels the stored session right after it has been read,
// as if the other participant acted at the same moment
type racingSessions struct {
	*servicetest.SessionRepo
}

func (r racingSessions) GetByID(ctx context.Context, id string) (*model.Session, error) {
	s, err := r.SessionRepo.GetByID(ctx, id)
	if s != nil {
		r.SessionRepo.Sessions[id].Status = model.SessionCancelled
	}
	return s, err
}

func TestTransition_ConcurrentChange(t *testing.T) {
	e := newTestEnv()
	s := book(t, e, testNow.Add(time.Hour))

	svc := NewSessionService(racingSessions{e.sessionRepo}, e.users)
	svc.now = fixedClock
	if _, err := svc.Confirm(context.Background(), claimsFor(coun), s.ID); !errors.Is(err, ErrConflict) {
		t.Fatalf("Confirm err = %v, want conflict", err)
	}
	if got := e.sessionRepo.Sessions[s.ID].Status; got != model.SessionCancelled {
		t.Errorf("stored status = %s, want the concurrent cancel to survive", got)
	}
}
