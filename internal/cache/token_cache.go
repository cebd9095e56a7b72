package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenCache tracks revoked JWT ids until the token would have expired
type TokenCache interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type tokenCache struct {
	client *redis.Client
}

func NewTokenCache(client *redis.Client) TokenCache {
	return &tokenCache{
		client: client,
	}
}

func (c *tokenCache) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, "revoked:"+jti, 1, ttl).Err()
}

func (c *tokenCache) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := c.client.Exists(ctx, "revoked:"+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
