// Package servicetest provides in-memory repositories, caches and a
// recording broadcaster for exercising services without Mongo or Redis.
package servicetest

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"mindcare/internal/model"
	"mindcare/internal/repository"
)

// UserRepo is an in-memory repository.UserRepo
type UserRepo struct {
	mu    sync.Mutex
	Users map[string]*model.User
	seq   int
}

// NewUserRepo returns a repo seeded with copies of users
func NewUserRepo(users ...*model.User) *UserRepo {
	r := &UserRepo{Users: map[string]*model.User{}}
	for _, u := range users {
		c := *u
		r.Users[u.ID] = &c
	}
	return r
}

func (r *UserRepo) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.Email == user.Email {
			return repository.ErrDuplicateKey
		}
	}
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	c := *user
	r.Users[user.ID] = &c
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.Users[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context, filter model.UserFilter) ([]*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.User{}
	for _, u := range r.Users {
		if (filter.Role == "" || u.Role == filter.Role) && (filter.College == "" || u.College == filter.College) {
			c := *u
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepo) Update(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.UpdatedAt = time.Now()
	c := *user
	r.Users[user.ID] = &c
	return nil
}

func (r *UserRepo) CountByRole(_ context.Context) (map[model.Role]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[model.Role]int{}
	for _, u := range r.Users {
		counts[u.Role]++
	}
	return counts, nil
}

// AssessmentRepo is an in-memory repository.AssessmentRepo. Items are in insertion order.
type AssessmentRepo struct {
	mu    sync.Mutex
	Items []*model.Assessment
}

func (r *AssessmentRepo) Create(_ context.Context, a *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a.ID == "" {
		a.ID = fmt.Sprintf("assessment-%d", len(r.Items)+1)
	}
	r.Items = append(r.Items, a)
	return nil
}

func (r *AssessmentRepo) GetLatestByUser(ctx context.Context, userID string) (*model.Assessment, error) {
	list, _ := r.ListByUser(ctx, userID, 1)
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *AssessmentRepo) ListByUser(_ context.Context, userID string, limit int) ([]*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Assessment{}
	for i := len(r.Items) - 1; i >= 0; i-- {
		if r.Items[i].UserID == userID {
			out = append(out, r.Items[i])
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *AssessmentRepo) LatestPerUser(_ context.Context, college string) ([]*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[string]bool{}
	out := []*model.Assessment{}
	for i := len(r.Items) - 1; i >= 0; i-- {
		a := r.Items[i]
		if a.College != college || seen[a.UserID] {
			continue
		}
		seen[a.UserID] = true
		out = append(out, a)
	}
	return out, nil
}

func (r *AssessmentRepo) Count(_ context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Items), nil
}

func (r *AssessmentRepo) SetCollege(_ context.Context, userID, college string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range r.Items {
		if a.UserID == userID {
			a.College = college
		}
	}
	return nil
}

// SessionRepo is an in-memory repository.SessionRepo
type SessionRepo struct {
	mu       sync.Mutex
	Sessions map[string]*model.Session
}

func NewSessionRepo() *SessionRepo {
	return &SessionRepo{Sessions: map[string]*model.Session{}}
}

func (r *SessionRepo) Create(_ context.Context, s *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s.ID = fmt.Sprintf("session-%d", len(r.Sessions)+1)
	c := *s
	r.Sessions[s.ID] = &c
	return nil
}

func (r *SessionRepo) GetByID(_ context.Context, id string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.Sessions[id]; ok {
		c := *s
		return &c, nil
	}
	return nil, nil
}

func (r *SessionRepo) UpdateFrom(_ context.Context, s *model.Session, from model.SessionStatus) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.Sessions[s.ID]
	if !ok || stored.Status != from {
		return false, nil
	}
	c := *s
	r.Sessions[s.ID] = &c
	return true, nil
}

func (r *SessionRepo) ListForUser(_ context.Context, userID string, from, to time.Time) ([]*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Session{}
	for _, s := range r.Sessions {
		if !s.HasParticipant(userID) {
			continue
		}
		if !from.IsZero() && s.ScheduledAt.Before(from) {
			continue
		}
		if !to.IsZero() && !s.ScheduledAt.Before(to) {
			continue
		}
		c := *s
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

// ReportRepo is an in-memory repository.ReportRepo
type ReportRepo struct {
	mu      sync.Mutex
	Reports []*model.Report
}

func (r *ReportRepo) Create(_ context.Context, rep *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rep.ID = fmt.Sprintf("report-%d", len(r.Reports)+1)
	r.Reports = append(r.Reports, rep)
	return nil
}

func (r *ReportRepo) GetByID(_ context.Context, id string) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rep := range r.Reports {
		if rep.ID == id {
			c := *rep
			return &c, nil
		}
	}
	return nil, nil
}

func (r *ReportRepo) Update(_ context.Context, rep *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.Reports {
		if existing.ID == rep.ID {
			c := *rep
			r.Reports[i] = &c
		}
	}
	return nil
}

func (r *ReportRepo) ListByCollege(_ context.Context, college string, status model.ReportStatus) ([]*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.Report{}
	for _, rep := range r.Reports {
		if rep.College == college && (status == "" || rep.Status == status) {
			out = append(out, rep)
		}
	}
	return out, nil
}

func (r *ReportRepo) CountByStatus(_ context.Context, college string) (map[model.ReportStatus]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := map[model.ReportStatus]int{}
	for _, rep := range r.Reports {
		if rep.College == college {
			counts[rep.Status]++
		}
	}
	return counts, nil
}

// FeedbackRepo is an in-memory repository.FeedbackRepo
type FeedbackRepo struct {
	mu    sync.Mutex
	Items []*model.Feedback
}

func (r *FeedbackRepo) Create(_ context.Context, f *model.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = fmt.Sprintf("feedback-%d", len(r.Items)+1)
	r.Items = append(r.Items, f)
	return nil
}

func (r *FeedbackRepo) List(_ context.Context, limit int) ([]*model.Feedback, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > 0 && limit < len(r.Items) {
		return r.Items[:limit], nil
	}
	return r.Items, nil
}

func (r *FeedbackRepo) TallyByCategory(_ context.Context) ([]model.FeedbackTally, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	byCategory := map[model.FeedbackCategory]*model.FeedbackTally{}
	out := []model.FeedbackTally{}
	for _, f := range r.Items {
		t, ok := byCategory[f.Category]
		if !ok {
			t = &model.FeedbackTally{Category: f.Category}
			byCategory[f.Category] = t
		}
		t.Count++
		t.RatingSum += f.Rating
	}
	for _, t := range byCategory {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// ChatRepo is an in-memory repository.ChatRepo
type ChatRepo struct {
	mu   sync.Mutex
	Msgs []*model.ChatMessage
}

func (r *ChatRepo) Create(_ context.Context, m *model.ChatMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Msgs = append(r.Msgs, m)
	return nil
}

func (r *ChatRepo) ListByConversation(_ context.Context, id string, limit int) ([]*model.ChatMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []*model.ChatMessage{}
	for _, m := range r.Msgs {
		if m.ConversationID == id {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}
