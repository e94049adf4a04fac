// Package models holds the auth domain entities and request/response shapes.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	dErrors "atlas/pkg/domain-errors"
)

// User is an authenticated API user. RefreshTokenDigest holds the SHA-256 of
// the most recently issued refresh token, or nil when the user is signed out.
type User struct {
	ID                 uuid.UUID
	Email              string
	PasswordHash       string
	RefreshTokenDigest *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TokenPair is the access/refresh token pair returned by every auth flow that
// signs a user in.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// SignupRequest carries new-user credentials.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignupRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *SignupRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if len(r.Password) < 8 {
		return dErrors.New(dErrors.CodeValidation, "password must be at least 8 characters")
	}
	return nil
}

// SigninRequest carries login credentials.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SigninRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *SigninRequest) Validate() error {
	if err := validateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	return nil
}

// RefreshRequest carries the refresh token to be rotated.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (r *RefreshRequest) Validate() error {
	if r.RefreshToken == "" {
		return dErrors.New(dErrors.CodeValidation, "refreshToken is required")
	}
	return nil
}

func validateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at+1:], ".") {
		return dErrors.New(dErrors.CodeValidation, "email is invalid")
	}
	return nil
}
