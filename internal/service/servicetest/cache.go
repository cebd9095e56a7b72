package servicetest

import (
	"context"
	"sort"
	"sync"
	"time"

	"mindcare/internal/model"
)

// AssessmentCache is an in-memory cache.AssessmentCache
type AssessmentCache struct {
	mu   sync.Mutex
	Last map[string]*model.Assessment
}

func NewAssessmentCache() *AssessmentCache {
	return &AssessmentCache{Last: map[string]*model.Assessment{}}
}

func (c *AssessmentCache) SetLast(_ context.Context, a *model.Assessment) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Last[a.UserID] = a
	return nil
}

func (c *AssessmentCache) GetLast(_ context.Context, userID string) (*model.Assessment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Last[userID], nil
}

func (c *AssessmentCache) DeleteLast(_ context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.Last, userID)
	return nil
}

// RiskBoard is an in-memory cache.RiskBoard
type RiskBoard struct {
	mu     sync.Mutex
	Scores map[string]map[string]int // college -> student -> combined score
}

func NewRiskBoard() *RiskBoard {
	return &RiskBoard{Scores: map[string]map[string]int{}}
}

func (b *RiskBoard) UpdateScore(_ context.Context, college, studentID string, combined int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Scores[college] == nil {
		b.Scores[college] = map[string]int{}
	}
	b.Scores[college][studentID] = combined
	return nil
}

func (b *RiskBoard) GetTop(_ context.Context, college string, limit int) ([]model.RiskEntry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entries := []model.RiskEntry{}
	for id, score := range b.Scores[college] {
		entries = append(entries, model.RiskEntry{StudentID: id, CombinedScore: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].CombinedScore != entries[j].CombinedScore {
			return entries[i].CombinedScore > entries[j].CombinedScore
		}
		return entries[i].StudentID < entries[j].StudentID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

func (b *RiskBoard) Remove(_ context.Context, college, studentID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.Scores[college], studentID)
	return nil
}

// TokenCache is an in-memory cache.TokenCache
type TokenCache struct {
	mu      sync.Mutex
	Revoked map[string]time.Duration
}

func NewTokenCache() *TokenCache {
	return &TokenCache{Revoked: map[string]time.Duration{}}
}

func (c *TokenCache) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Revoked[jti] = ttl
	return nil
}

func (c *TokenCache) IsRevoked(_ context.Context, jti string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.Revoked[jti]
	return ok, nil
}

// DashboardCache is an in-memory cache.DashboardCache
type DashboardCache struct {
	mu            sync.Mutex
	Colleges      map[string]*model.CollegeDashboard
	Invalidations int
}

func NewDashboardCache() *DashboardCache {
	return &DashboardCache{Colleges: map[string]*model.CollegeDashboard{}}
}

func (c *DashboardCache) GetCollege(_ context.Context, college string) (*model.CollegeDashboard, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Colleges[college], nil
}

func (c *DashboardCache) SetCollege(_ context.Context, d *model.CollegeDashboard) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Colleges[d.College] = d
	return nil
}

func (c *DashboardCache) InvalidateCollege(_ context.Context, college string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Invalidations++
	delete(c.Colleges, college)
	return nil
}

// Event is one message recorded by Broadcaster
type Event struct {
	To      string // user id, or "college:<name>" for counsellor broadcasts
	Type    string
	Payload interface{}
}

// Broadcaster records events instead of delivering them
type Broadcaster struct {
	mu           sync.Mutex
	Events       []Event
	Disconnected []string
}

func (b *Broadcaster) SendToUser(userID, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Events = append(b.Events, Event{To: userID, Type: msgType, Payload: payload})
}

func (b *Broadcaster) BroadcastToCounsellors(college, msgType string, payload interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Events = append(b.Events, Event{To: "college:" + college, Type: msgType, Payload: payload})
}

func (b *Broadcaster) DisconnectUser(userID string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.Disconnected = append(b.Disconnected, userID)
}

// OfType returns the recorded events of one type
func (b *Broadcaster) OfType(msgType string) []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Event
	for _, e := range b.Events {
		if e.Type == msgType {
			out = append(out, e)
		}
	}
	return out
}
