package domain

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
)

// Session is the locally persisted authentication state for one sid cookie.
// Presence of AccessToken means "logged in"; the backend owns the real
// session, we only mirror the token pair and display email.
type Session struct {
	AccessToken  string `db:"access_token"`
	RefreshToken string `db:"refresh_token"`
	Email        string `db:"user_email"`
}

func (s *Session) LoggedIn() bool {
	return s != nil && s.AccessToken != ""
}

// Username is the display name shown in the navbar: the local-part of the
// stored email.
func (s *Session) Username() string {
	if s == nil || s.Email == "" {
		return ""
	}
	name, _, _ := strings.Cut(s.Email, "@")
	return name
}

// Role reads the role claim out of the access token, if the backend issued
// one. The parse is unverified: the gateway holds no signing key, and the
// claim only gates UI affordances; every privileged call is re-checked by
// the backend.
func (s *Session) Role() string {
	if !s.LoggedIn() {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(s.AccessToken, claims); err != nil {
		return ""
	}
	role, _ := claims["role"].(string)
	return role
}

// IsAdmin prefers an explicit role claim and falls back to the configured
// admin address for backends that issue bare tokens.
func (s *Session) IsAdmin(adminEmail string) bool {
	if !s.LoggedIn() {
		return false
	}
	if role := s.Role(); role != "" {
		return strings.EqualFold(role, "admin")
	}
	return adminEmail != "" && strings.EqualFold(s.Email, adminEmail)
}
