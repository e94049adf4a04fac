package jwttoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atlas/internal/platform/config"
	dErrors "atlas/pkg/domain-errors"
)

func newTestService() *Service {
	return New(config.JWT{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    7 * 24 * time.Hour,
	})
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateAccessToken("user-123", "user@test.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "user@test.com", claims.Email)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateRefreshToken("user-123", "user@test.com")
	require.NoError(t, err)

	userID, email, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
	assert.Equal(t, "user@test.com", email)
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	svc := newTestService()

	access, err := svc.GenerateAccessToken("user-123", "user@test.com")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken("user-123", "user@test.com")
	require.NoError(t, err)

	_, _, err = svc.ValidateRefreshToken(access)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))

	_, err = svc.ValidateAccessToken(refresh)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateAccessToken_Expired(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := svc.GenerateAccessToken("user-123", "user@test.com")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.ValidateAccessToken(token)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	svc := newTestService()
	other := New(config.JWT{
		AccessSecret:  "different-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    time.Hour,
	})

	token, err := svc.GenerateAccessToken("user-123", "user@test.com")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestValidateAccessToken_Garbage(t *testing.T) {
	svc := newTestService()

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := svc.ValidateAccessToken(token)
		assert.Error(t, err, "token %q", token)
	}
}

func TestGenerate_RequiresUserID(t *testing.T) {
	svc := newTestService()

	_, err := svc.GenerateAccessToken("", "user@test.com")
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}
