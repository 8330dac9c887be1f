package revocation

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store tracks revoked token IDs until their natural expiry. Role-gated
// routes never consult the database for claims, so revocation is the only
// way to invalidate a token before it expires.
type Store interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Default is consulted by the auth middleware. A nil Default disables
// revocation: tokens then stay valid for their full lifetime.
var Default Store

const keyPrefix = "revoked:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects a revocation store backed by redis. Entries carry
// a TTL equal to the token's remaining life, so the set cleans itself up.
func NewRedisStore(addr, password string) (Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &redisStore{client: client}, nil
}

func (s *redisStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already expired; nothing to remember.
		return nil
	}
	return s.client.Set(ctx, keyPrefix+tokenID, "1", ttl).Err()
}

func (s *redisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
