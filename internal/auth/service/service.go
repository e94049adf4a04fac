// Package service implements signup, signin, refresh-token rotation, and
// signout for API users.
package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"atlas/internal/auth/models"
	dErrors "atlas/pkg/domain-errors"
	"atlas/pkg/platform/sentinel"
	"atlas/pkg/secrets"
)

// UserStore persists users.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateRefreshTokenDigest(ctx context.Context, userID uuid.UUID, digest *string) error
}

// TokenGenerator issues and validates the token pair.
type TokenGenerator interface {
	GenerateAccessToken(userID, email string) (string, error)
	GenerateRefreshToken(userID, email string) (string, error)
	ValidateRefreshToken(token string) (userID string, email string, err error)
}

// Service owns the auth flows. Each issued refresh token replaces the previous
// one: only the latest token's digest is stored, so rotation invalidates
// everything issued before it.
type Service struct {
	users  UserStore
	tokens TokenGenerator
	logger *slog.Logger
}

// Option configures the service.
type Option func(s *Service)

// WithLogger injects a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// New constructs the auth service.
func New(users UserStore, tokens TokenGenerator, opts ...Option) *Service {
	s := &Service{
		users:  users,
		tokens: tokens,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Signup registers a new user and signs them in.
func (s *Service) Signup(ctx context.Context, req *models.SignupRequest) (*models.TokenPair, error) {
	passwordHash, err := secrets.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: passwordHash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return nil, dErrors.New(dErrors.CodeConflict, "email already registered")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}

	s.logger.InfoContext(ctx, "user registered", "user_id", user.ID)
	return s.issueTokens(ctx, user)
}

// Signin authenticates a user by credentials. Unknown emails and wrong
// passwords produce the same error so the endpoint doesn't leak which emails
// exist.
func (s *Service) Signin(ctx context.Context, req *models.SigninRequest) (*models.TokenPair, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, invalidCredentials()
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	if err := secrets.Verify(req.Password, user.PasswordHash); err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			return nil, invalidCredentials()
		}
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates a valid refresh token into a fresh pair. The presented
// token must match the stored digest; a token that was already rotated out
// (or a signed-out user) is rejected.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	userID, _, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid refresh token")
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid refresh token")
	}

	user, err := s.users.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up user")
	}

	if user.RefreshTokenDigest == nil {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid refresh token")
	}
	if err := secrets.VerifyTokenDigest(refreshToken, *user.RefreshTokenDigest); err != nil {
		s.logger.WarnContext(ctx, "refresh token digest mismatch", "user_id", user.ID)
		return nil, dErrors.New(dErrors.CodeUnauthorized, "invalid refresh token")
	}

	return s.issueTokens(ctx, user)
}

// Signout clears the stored refresh token digest, invalidating the
// outstanding refresh token. Access tokens stay valid until they expire.
func (s *Service) Signout(ctx context.Context, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return dErrors.New(dErrors.CodeUnauthorized, "invalid user")
	}
	if err := s.users.UpdateRefreshTokenDigest(ctx, uid, nil); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return dErrors.New(dErrors.CodeUnauthorized, "invalid user")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign out")
	}
	return nil
}

// issueTokens mints a pair and stores the refresh token digest.
func (s *Service) issueTokens(ctx context.Context, user *models.User) (*models.TokenPair, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue access token")
	}
	refreshToken, err := s.tokens.GenerateRefreshToken(user.ID.String(), user.Email)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue refresh token")
	}

	digest := secrets.TokenDigest(refreshToken)
	if err := s.users.UpdateRefreshTokenDigest(ctx, user.ID, &digest); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store refresh token")
	}

	return &models.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func invalidCredentials() error {
	return dErrors.New(dErrors.CodeUnauthorized, "invalid email or password")
}
