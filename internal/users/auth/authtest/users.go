// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package authtest provides in-memory account storage for tests of packages
// built on [auth.UserRepository].
package authtest

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/herstyle/internal/platform/apperr"
	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/internal/users/auth"
	"github.com/taibuivan/herstyle/pkg/pagination"
)

var _ auth.UserRepository = (*MemoryUsers)(nil)

// MemoryUsers is an in-memory [auth.UserRepository].
//
// Fails, when set, is returned by every lookup.
type MemoryUsers struct {
	mu    sync.Mutex
	byID  map[string]*auth.User
	Fails error
}

// NewMemoryUsers returns an empty store.
func NewMemoryUsers() *MemoryUsers {
	return &MemoryUsers{byID: make(map[string]*auth.User)}
}

// Put stores a copy of user as-is, bypassing the uniqueness check.
func (repo *MemoryUsers) Put(user *auth.User) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	clone := *user
	repo.byID[user.ID] = &clone
}

func (repo *MemoryUsers) FindByID(_ context.Context, id string) (*auth.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.Fails != nil {
		return nil, repo.Fails
	}
	user, ok := repo.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	clone := *user
	return &clone, nil
}

func (repo *MemoryUsers) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if repo.Fails != nil {
		return nil, repo.Fails
	}
	for _, user := range repo.byID {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (repo *MemoryUsers) Create(_ context.Context, user *auth.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	for _, existing := range repo.byID {
		if existing.Email == user.Email {
			return apperr.Conflict("User already exists")
		}
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	clone := *user
	repo.byID[user.ID] = &clone
	return nil
}

func (repo *MemoryUsers) Update(_ context.Context, user *auth.User) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	existing, ok := repo.byID[user.ID]
	if !ok {
		return apperr.NotFound("User")
	}
	existing.Username = user.Username
	existing.Bio = user.Bio
	existing.Profession = user.Profession
	existing.ProfileImage = user.ProfileImage
	existing.UpdatedAt = time.Now()
	*user = *existing
	return nil
}

func (repo *MemoryUsers) UpdateRole(_ context.Context, id string, role sec.UserRole) (*auth.User, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	existing, ok := repo.byID[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	existing.Role = role
	clone := *existing
	return &clone, nil
}

func (repo *MemoryUsers) Delete(_ context.Context, id string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	if _, ok := repo.byID[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(repo.byID, id)
	return nil
}

func (repo *MemoryUsers) List(_ context.Context, page *pagination.Params) ([]*auth.User, int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	users := make([]*auth.User, 0, len(repo.byID))
	for _, user := range repo.byID {
		clone := *user
		users = append(users, &clone)
	}
	// UUIDv7 ids sort by creation time.
	sort.Slice(users, func(i, j int) bool { return users[i].ID > users[j].ID })

	total := len(users)
	if page == nil {
		return users, total, nil
	}
	start := min(page.Offset(), total)
	end := min(start+page.Limit, total)
	return users[start:end], total, nil
}

func (repo *MemoryUsers) CountByRole(_ context.Context) (map[sec.UserRole]int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	counts := make(map[sec.UserRole]int)
	for _, user := range repo.byID {
		counts[user.Role]++
	}
	return counts, nil
}
