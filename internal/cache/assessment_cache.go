package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"mindcare/internal/model"
)

// AssessmentCache keeps each user's last assessment for dashboards and chat
type AssessmentCache interface {
	SetLast(ctx context.Context, assessment *model.Assessment) error
	GetLast(ctx context.Context, userID string) (*model.Assessment, error)
	DeleteLast(ctx context.Context, userID string) error
}

type assessmentCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewAssessmentCache creates a new last-assessment cache
func NewAssessmentCache(client *redis.Client, ttl time.Duration) AssessmentCache {
	return &assessmentCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *assessmentCache) key(userID string) string {
	return "user:" + userID + ":last_assessment"
}

func (c *assessmentCache) SetLast(ctx context.Context, assessment *model.Assessment) error {
	data, err := json.Marshal(assessment)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(assessment.UserID), data, c.ttl).Err()
}

func (c *assessmentCache) GetLast(ctx context.Context, userID string) (*model.Assessment, error) {
	data, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var assessment model.Assessment
	if err := json.Unmarshal([]byte(data), &assessment); err != nil {
		return nil, err
	}
	return &assessment, nil
}

func (c *assessmentCache) DeleteLast(ctx context.Context, userID string) error {
	return c.client.Del(ctx, c.key(userID)).Err()
}
