// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/herstyle/internal/platform/constants"
)

// RedisRevocationStore implements RevocationStore using Redis keys with TTL.
type RedisRevocationStore struct {
	client redis.Cmdable
}

// NewRevocationStore creates a new Redis-backed RevocationStore.
func NewRevocationStore(client redis.Cmdable) *RedisRevocationStore {
	return &RedisRevocationStore{client: client}
}

func revocationKey(tokenID string) string {
	return constants.RedisPrefixRevokedRefresh + tokenID
}

/*
Revoke adds a refresh token ID to the deny-list.

Description: The key expires together with the token, so the list never
outgrows the set of still-valid refresh tokens.

Parameters:
  - ctx: context.Context
  - tokenID: string (the token's jti)
  - ttl: time.Duration (remaining lifetime of the token)
*/
func (store *RedisRevocationStore) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	if err := store.client.Set(ctx, revocationKey(tokenID), 1, ttl).Err(); err != nil {
		return fmt.Errorf("redis_revocation_set_failed: %w", err)
	}
	return nil
}

/*
IsRevoked reports whether the token ID has been revoked.
*/
func (store *RedisRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	count, err := store.client.Exists(ctx, revocationKey(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_revocation_exists_failed: %w", err)
	}
	return count > 0, nil
}
