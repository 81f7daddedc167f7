// Copyright (c) 2026 HerStyle. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/herstyle/internal/platform/sec"
)

const (
	testAccessSecret  = "access-secret-for-tests"
	testRefreshSecret = "refresh-secret-for-tests"
	testIssuer        = "herstyle.test"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	current time.Time
}

func (clock *fakeClock) Now() time.Time            { return clock.current }
func (clock *fakeClock) Advance(step time.Duration) { clock.current = clock.current.Add(step) }

func newTestService(t *testing.T, clock *fakeClock) *sec.TokenService {
	t.Helper()

	service, err := sec.NewTokenService(sec.KeyConfig{
		AccessSecret:  testAccessSecret,
		RefreshSecret: testRefreshSecret,
		Issuer:        testIssuer,
	}, sec.WithClock(clock.Now))
	require.NoError(t, err)

	return service
}

/*
TestTokenService_RoundTrip checks that issued tokens verify back to the same identity.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	service := newTestService(t, clock)

	tests := []struct {
		name   string
		userID string
		role   sec.UserRole
	}{
		{"shopper", "u1", sec.RoleUser},
		{"admin", "0193a4c2-0000-7000-8000-000000000001", sec.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := service.Issue(tt.userID, tt.role)
			require.NoError(t, err)

			assert.Equal(t, clock.Now().Add(24*time.Hour), pair.AccessExpiresAt)
			assert.Equal(t, clock.Now().Add(7*24*time.Hour), pair.RefreshExpiresAt)
			assert.NotEmpty(t, pair.RefreshID)

			access, err := service.VerifyAccess(pair.AccessToken)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, access.UserID)
			assert.Equal(t, tt.role, access.Role)
			assert.Equal(t, sec.TokenTypeAccess, access.Type)
			assert.Equal(t, testIssuer, access.Issuer)

			refresh, err := service.VerifyRefresh(pair.RefreshToken)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, refresh.UserID)
			assert.Equal(t, tt.role, refresh.Role)
			assert.Equal(t, pair.RefreshID, refresh.ID)
		})
	}
}

/*
TestTokenService_CrossTypeRejected ensures a token is only accepted where its type is expected.
*/
func TestTokenService_CrossTypeRejected(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newTestService(t, clock)

	pair, err := service.Issue("u1", sec.RoleUser)
	require.NoError(t, err)

	_, err = service.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
	assert.NotErrorIs(t, err, sec.ErrTokenExpired)

	_, err = service.VerifyRefresh(pair.AccessToken)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}

/*
TestTokenService_WrongKey checks that a token signed by another deployment is rejected.
*/
func TestTokenService_WrongKey(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newTestService(t, clock)

	other, err := sec.NewTokenService(sec.KeyConfig{
		AccessSecret:  "some-other-access-secret",
		RefreshSecret: "some-other-refresh-secret",
		Issuer:        testIssuer,
	}, sec.WithClock(clock.Now))
	require.NoError(t, err)

	pair, err := other.Issue("u1", sec.RoleAdmin)
	require.NoError(t, err)

	_, err = service.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}

/*
TestTokenService_Expiry checks that elapsed tokens are reported as expired, not invalid.
*/
func TestTokenService_Expiry(t *testing.T) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	service := newTestService(t, clock)

	pair, err := service.Issue("u1", sec.RoleUser)
	require.NoError(t, err)

	// Access token: past 24h.
	clock.Advance(24*time.Hour + time.Minute)

	_, err = service.VerifyAccess(pair.AccessToken)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
	assert.NotErrorIs(t, err, sec.ErrTokenInvalid)

	// Refresh token still valid.
	_, err = service.VerifyRefresh(pair.RefreshToken)
	assert.NoError(t, err)

	// Refresh token: past 7d.
	clock.Advance(7 * 24 * time.Hour)

	_, err = service.VerifyRefresh(pair.RefreshToken)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
}

/*
TestTokenService_ExpiredWithWrongKeyIsInvalid makes sure signature problems win over expiry.
*/
func TestTokenService_ExpiredWithWrongKeyIsInvalid(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newTestService(t, clock)

	pair, err := service.Issue("u1", sec.RoleUser)
	require.NoError(t, err)

	clock.Advance(30 * 24 * time.Hour)

	_, err = service.VerifyAccess(pair.RefreshToken)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}

/*
TestTokenService_Malformed covers garbage and unsupported algorithms.
*/
func TestTokenService_Malformed(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newTestService(t, clock)

	claims := jwt.MapClaims{
		"userId": "u1",
		"role":   "user",
		"exp":    clock.Now().Add(time.Hour).Unix(),
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
		"role":   "user",
	}).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
		"role":   "superuser",
		"exp":    clock.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"hs512", hs512},
		{"alg_none", none},
		{"no_expiry", noExpiry},
		{"unknown_role", badRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyAccess(tt.token)
			assert.ErrorIs(t, err, sec.ErrTokenInvalid)
		})
	}
}

/*
TestTokenService_LegacyIDClaim verifies that tokens keyed by "id" are normalized to UserID.
*/
func TestTokenService_LegacyIDClaim(t *testing.T) {
	clock := &fakeClock{current: time.Now()}
	service := newTestService(t, clock)

	legacy, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":   "legacy-user",
		"role": "admin",
		"exp":  clock.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	claims, err := service.VerifyAccess(legacy)
	require.NoError(t, err)
	assert.Equal(t, "legacy-user", claims.UserID)
	assert.Equal(t, sec.RoleAdmin, claims.Role)

	// userId wins when both are present.
	both, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":     "old",
		"userId": "new",
		"role":   "user",
		"exp":    clock.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	claims, err = service.VerifyAccess(both)
	require.NoError(t, err)
	assert.Equal(t, "new", claims.UserID)
}

/*
TestNewTokenService_Configuration checks the startup validation of signing keys.
*/
func TestNewTokenService_Configuration(t *testing.T) {
	tests := []struct {
		name    string
		cfg     sec.KeyConfig
		setting string
	}{
		{"no_keys", sec.KeyConfig{}, "JWT_SECRET_KEY"},
		{"no_refresh_key", sec.KeyConfig{AccessSecret: "a"}, "REFRESH_TOKEN_SECRET"},
		{"identical_keys", sec.KeyConfig{AccessSecret: "same", RefreshSecret: "same"}, "REFRESH_TOKEN_SECRET"},
		{"fallback_without_access", sec.KeyConfig{AllowDerivedRefresh: true, RefreshSecret: "r"}, "JWT_SECRET_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, err := sec.NewTokenService(tt.cfg)
			assert.Nil(t, service)

			var cfgErr *sec.ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.setting, cfgErr.Setting)
		})
	}
}

/*
TestNewTokenService_DerivedRefreshKey covers the opt-in legacy derivation.
*/
func TestNewTokenService_DerivedRefreshKey(t *testing.T) {
	service, err := sec.NewTokenService(sec.KeyConfig{
		AccessSecret:        testAccessSecret,
		AllowDerivedRefresh: true,
	})
	require.NoError(t, err)
	assert.True(t, service.UsesDerivedRefreshKey())
	assert.True(t, service.AcceptsLegacyRefresh())
	assert.Equal(t, sec.DefaultAccessTTL, service.AccessTTL())
	assert.Equal(t, sec.DefaultRefreshTTL, service.RefreshTTL())

	// A refresh token signed the historical way keeps working.
	legacyRefresh, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": "u1",
		"role":   "user",
		"exp":    time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testAccessSecret + "_refresh"))
	require.NoError(t, err)

	claims, err := service.VerifyRefresh(legacyRefresh)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)

	_, err = service.VerifyAccess(legacyRefresh)
	assert.ErrorIs(t, err, sec.ErrTokenInvalid)
}

/*
TestTokenService_IssueRejectsBadInput checks the issuer's own preconditions.
*/
func TestTokenService_IssueRejectsBadInput(t *testing.T) {
	service := newTestService(t, &fakeClock{current: time.Now()})

	_, err := service.Issue("", sec.RoleUser)
	assert.Error(t, err)

	_, err = service.Issue("u1", sec.UserRole("root"))
	assert.Error(t, err)
}
