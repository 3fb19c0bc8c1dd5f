package services

import (
	"context"
	"errors"
	"fmt"

	"seastore/internal/api"
	"seastore/internal/cache"
	"seastore/internal/domain"
	"seastore/internal/session"
)

var (
	// ErrBadCreds covers every login failure: transport errors and rejected
	// credentials render the same generic message.
	ErrBadCreds = errors.New("invalid email or password")
	// ErrPasswordMismatch is raised before any network call.
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrAccountExists    = errors.New("account already exists")
)

type AuthService struct {
	API      *api.Client
	Sessions *session.Store
	Caches   *cache.Registry
}

func NewAuthService(c *api.Client, st *session.Store, reg *cache.Registry) *AuthService {
	return &AuthService{API: c, Sessions: st, Caches: reg}
}

// Login trades credentials for a token pair and persists
// access/refresh/email under the sid. The backend takes the email as
// username.
func (s *AuthService) Login(ctx context.Context, sid, email, password string) (*domain.Session, error) {
	pair, err := s.API.ObtainToken(ctx, email, password)
	if err != nil {
		return nil, ErrBadCreds
	}
	sess := domain.Session{AccessToken: pair.Access, RefreshToken: pair.Refresh, Email: email}
	if err := s.Sessions.Save(sid, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Signup registers a new account. The password/confirmation check runs
// locally first; only matching passwords reach the backend.
func (s *AuthService) Signup(ctx context.Context, name, email, password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	err := s.API.Register(ctx, email, email, password, name)
	if err == nil {
		return nil
	}
	var apiErr *api.Error
	if errors.As(err, &apiErr) && (apiErr.HasField("username") || apiErr.HasField("email")) {
		return ErrAccountExists
	}
	return fmt.Errorf("registration failed: %w", err)
}

// Logout clears the persisted keys and drops the session's mirror. The
// backend token is not invalidated; it just stops being sent.
func (s *AuthService) Logout(sid string) error {
	s.Caches.Drop(sid)
	return s.Sessions.Clear(sid)
}

func (s *AuthService) Current(sid string) (*domain.Session, error) {
	return s.Sessions.Load(sid)
}
