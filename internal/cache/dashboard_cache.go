package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mindcare/internal/model"
)

// DashboardCache holds the aggregated college dashboard for a short time
type DashboardCache interface {
	GetCollege(ctx context.Context, college string) (*model.CollegeDashboard, error)
	SetCollege(ctx context.Context, dashboard *model.CollegeDashboard) error
	InvalidateCollege(ctx context.Context, college string) error
}

type dashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache creates a new dashboard cache
func NewDashboardCache(client *redis.Client, ttl time.Duration) DashboardCache {
	return &dashboardCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *dashboardCache) collegeKey(college string) string {
	return fmt.Sprintf("college:%s:dashboard", college)
}

func (c *dashboardCache) GetCollege(ctx context.Context, college string) (*model.CollegeDashboard, error) {
	data, err := c.client.Get(ctx, c.collegeKey(college)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var dashboard model.CollegeDashboard
	if err := json.Unmarshal([]byte(data), &dashboard); err != nil {
		return nil, err
	}
	return &dashboard, nil
}

func (c *dashboardCache) SetCollege(ctx context.Context, dashboard *model.CollegeDashboard) error {
	data, err := json.Marshal(dashboard)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.collegeKey(dashboard.College), data, c.ttl).Err()
}

func (c *dashboardCache) InvalidateCollege(ctx context.Context, college string) error {
	return c.client.Del(ctx, c.collegeKey(college)).Err()
}
