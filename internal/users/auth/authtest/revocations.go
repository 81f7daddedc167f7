// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package authtest

import (
	"context"
	"sync"
	"time"

	"github.com/taibuivan/herstyle/internal/users/auth"
)

var _ auth.RevocationStore = (*MemoryRevocations)(nil)

// MemoryRevocations is an in-memory [auth.RevocationStore] that remembers the
// TTL of every revoked token ID. Entries never expire.
type MemoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
}

// NewMemoryRevocations returns an empty deny-list.
func NewMemoryRevocations() *MemoryRevocations {
	return &MemoryRevocations{revoked: make(map[string]time.Duration)}
}

// Revoke records tokenID. A non-positive ttl is ignored, like an already expired token.
func (store *MemoryRevocations) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	if ttl > 0 {
		store.revoked[tokenID] = ttl
	}
	return nil
}

// IsRevoked reports whether tokenID was revoked.
func (store *MemoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	_, ok := store.revoked[tokenID]
	return ok, nil
}

// TTL returns the lifetime tokenID was revoked with, or zero.
func (store *MemoryRevocations) TTL(tokenID string) time.Duration {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.revoked[tokenID]
}
