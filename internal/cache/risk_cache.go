package cache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"mindcare/internal/model"
)

// RiskBoard ranks a college's students by their latest combined score (ZSET)
type RiskBoard interface {
	UpdateScore(ctx context.Context, college, studentID string, combined int) error
	GetTop(ctx context.Context, college string, limit int) ([]model.RiskEntry, error)
	Remove(ctx context.Context, college, studentID string) error
}

type riskBoard struct {
	client *redis.Client
}

// NewRiskBoard creates a new risk board
func NewRiskBoard(client *redis.Client) RiskBoard {
	return &riskBoard{
		client: client,
	}
}

func (c *riskBoard) key(college string) string {
	return fmt.Sprintf("college:%s:risk", college)
}

func (c *riskBoard) UpdateScore(ctx context.Context, college, studentID string, combined int) error {
	return c.client.ZAdd(ctx, c.key(college), redis.Z{
		Score:  float64(combined),
		Member: studentID,
	}).Err()
}

func (c *riskBoard) GetTop(ctx context.Context, college string, limit int) ([]model.RiskEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, c.key(college), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]model.RiskEntry, len(results))
	for i, z := range results {
		entries[i] = model.RiskEntry{
			StudentID:     z.Member.(string),
			CombinedScore: int(z.Score),
			Rank:          i + 1,
		}
	}
	return entries, nil
}

func (c *riskBoard) Remove(ctx context.Context, college, studentID string) error {
	return c.client.ZRem(ctx, c.key(college), studentID).Err()
}
