// Package jwttoken issues and validates the HS256 token pair used by the auth
// endpoints. Access and refresh tokens are signed with separate secrets so a
// leaked refresh secret cannot mint access tokens.
package jwttoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"atlas/internal/platform/config"
	"atlas/internal/platform/middleware"
	dErrors "atlas/pkg/domain-errors"
)

// Claims are the claims carried by both token kinds. The user ID travels in
// the registered subject claim.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service handles token creation and validation.
type Service struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	now           func() time.Time
}

// New constructs the token service from JWT configuration.
func New(cfg config.JWT) *Service {
	return &Service{
		accessSecret:  []byte(cfg.AccessSecret),
		refreshSecret: []byte(cfg.RefreshSecret),
		accessTTL:     cfg.AccessTTL,
		refreshTTL:    cfg.RefreshTTL,
		now:           time.Now,
	}
}

// GenerateAccessToken issues a short-lived access token for the user.
func (s *Service) GenerateAccessToken(userID, email string) (string, error) {
	return s.generate(userID, email, s.accessSecret, s.accessTTL)
}

// GenerateRefreshToken issues a long-lived refresh token for the user.
func (s *Service) GenerateRefreshToken(userID, email string) (string, error) {
	return s.generate(userID, email, s.refreshSecret, s.refreshTTL)
}

func (s *Service) generate(userID, email string, secret []byte, ttl time.Duration) (string, error) {
	if userID == "" {
		return "", dErrors.New(dErrors.CodeBadRequest, "user id is required")
	}
	now := s.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign token")
	}
	return signed, nil
}

// ValidateAccessToken checks an access token and returns the claims the
// middleware needs. Satisfies middleware.TokenValidator.
func (s *Service) ValidateAccessToken(tokenString string) (*middleware.TokenClaims, error) {
	claims, err := s.validate(tokenString, s.accessSecret)
	if err != nil {
		return nil, err
	}
	return &middleware.TokenClaims{UserID: claims.Subject, Email: claims.Email}, nil
}

// ValidateRefreshToken checks a refresh token and returns the subject and
// email it was issued for.
func (s *Service) ValidateRefreshToken(tokenString string) (string, string, error) {
	claims, err := s.validate(tokenString, s.refreshSecret)
	if err != nil {
		return "", "", err
	}
	return claims.Subject, claims.Email, nil
}

func (s *Service) validate(tokenString string, secret []byte) (*Claims, error) {
	if tokenString == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "empty token")
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "token expired")
		}
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}
	if !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || claims.Subject == "" {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	return claims, nil
}
