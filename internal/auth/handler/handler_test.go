package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"atlas/internal/auth/models"
	"atlas/internal/auth/service"
	"atlas/internal/auth/store/user"
	"atlas/internal/jwttoken"
	"atlas/internal/platform/config"
	"atlas/internal/platform/middleware"
)

type HandlerSuite struct {
	suite.Suite
	router http.Handler
	tokens *jwttoken.Service
}

func (s *HandlerSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.tokens = jwttoken.New(config.JWT{
		AccessSecret:  "access-secret",
		RefreshSecret: "refresh-secret",
		AccessTTL:     15 * time.Minute,
		RefreshTTL:    time.Hour,
	})
	svc := service.New(user.NewMemory(), s.tokens, service.WithLogger(logger))
	h := New(svc, logger)

	r := chi.NewRouter()
	h.Register(r)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(s.tokens, logger))
		h.RegisterProtected(r)
	})
	s.router = r
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) post(path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(http.MethodPost, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerSuite) signup(email string) models.TokenPair {
	rec := s.post("/auth/signup", map[string]string{
		"email":    email,
		"password": "correct-horse-battery",
	}, nil)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var pair models.TokenPair
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &pair))
	return pair
}

func (s *HandlerSuite) TestSignup_ReturnsTokenPair() {
	pair := s.signup("user@test.com")
	s.NotEmpty(pair.AccessToken)
	s.NotEmpty(pair.RefreshToken)
}

func (s *HandlerSuite) TestSignup_NormalizesEmail() {
	s.signup("  User@Test.com ")

	rec := s.post("/auth/signin", map[string]string{
		"email":    "user@test.com",
		"password": "correct-horse-battery",
	}, nil)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
}

func (s *HandlerSuite) TestSignup_ValidationErrors() {
	cases := []struct {
		name string
		body map[string]string
	}{
		{"missing email", map[string]string{"password": "correct-horse-battery"}},
		{"malformed email", map[string]string{"email": "not-an-email", "password": "correct-horse-battery"}},
		{"short password", map[string]string{"email": "user@test.com", "password": "short"}},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			rec := s.post("/auth/signup", tc.body, nil)
			s.Equal(http.StatusBadRequest, rec.Code)
		})
	}
}

func (s *HandlerSuite) TestSignup_DuplicateEmailConflicts() {
	s.signup("user@test.com")

	rec := s.post("/auth/signup", map[string]string{
		"email":    "user@test.com",
		"password": "another-password",
	}, nil)
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerSuite) TestSignin_WrongPassword() {
	s.signup("user@test.com")

	rec := s.post("/auth/signin", map[string]string{
		"email":    "user@test.com",
		"password": "wrong-password",
	}, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerSuite) TestRefresh_RotatesPair() {
	pair := s.signup("user@test.com")

	rec := s.post("/auth/refresh", map[string]string{"refreshToken": pair.RefreshToken}, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var rotated models.TokenPair
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &rotated))
	s.NotEqual(pair.RefreshToken, rotated.RefreshToken)

	// Replaying the consumed token fails.
	rec = s.post("/auth/refresh", map[string]string{"refreshToken": pair.RefreshToken}, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerSuite) TestRefresh_MissingToken() {
	rec := s.post("/auth/refresh", map[string]string{}, nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerSuite) TestSignout_RequiresBearerToken() {
	rec := s.post("/auth/signout", nil, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *HandlerSuite) TestSignout_InvalidatesRefreshToken() {
	pair := s.signup("user@test.com")

	rec := s.post("/auth/signout", nil, map[string]string{
		"Authorization": "Bearer " + pair.AccessToken,
	})
	s.Require().Equal(http.StatusNoContent, rec.Code, rec.Body.String())

	rec = s.post("/auth/refresh", map[string]string{"refreshToken": pair.RefreshToken}, nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}
