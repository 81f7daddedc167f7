// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taibuivan/herstyle/internal/platform/sec"
	"github.com/taibuivan/herstyle/internal/users/auth"
	"github.com/taibuivan/herstyle/internal/users/auth/authtest"
)

// fakeClock is a manually advanced time source shared by the token service and [auth.Service].
type fakeClock struct {
	mu      sync.Mutex
	current time.Time
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.current
}

func (clock *fakeClock) Advance(step time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.current = clock.current.Add(step)
}

// fixture bundles a service with its collaborators.
type fixture struct {
	service     *auth.Service
	tokens      *sec.TokenService
	users       *authtest.MemoryUsers
	revocations *authtest.MemoryRevocations
	clock       *fakeClock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	clock := &fakeClock{current: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	tokens, err := sec.NewTokenService(sec.KeyConfig{
		AccessSecret:  "access-secret-for-auth-tests",
		RefreshSecret: "refresh-secret-for-auth-tests",
		Issuer:        "herstyle.test",
	}, sec.WithClock(clock.Now))
	require.NoError(t, err)

	users := authtest.NewMemoryUsers()
	revocations := authtest.NewMemoryRevocations()

	return &fixture{
		service:     auth.NewService(users, revocations, tokens).WithClock(clock.Now),
		tokens:      tokens,
		users:       users,
		revocations: revocations,
		clock:       clock,
	}
}

// seed stores an account with a real bcrypt hash of password.
func (f *fixture) seed(t *testing.T, id, email, password string, role sec.UserRole) *auth.User {
	t.Helper()

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	user := &auth.User{ID: id, Email: email, PasswordHash: hash, Role: role, Username: "seeded"}
	f.users.Put(user)
	return user
}
