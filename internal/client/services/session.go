// Package services contains application services for the goalline client.
// This file defines the session: login, register, logout, restoring the
// persisted session on startup, and the current-identity stream.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/goalline/internal/client/models"
	"github.com/dmitrijs2005/goalline/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/goalline/internal/client/rest"
	"github.com/dmitrijs2005/goalline/internal/common"
	"github.com/dmitrijs2005/goalline/internal/logging"
	"github.com/dmitrijs2005/goalline/internal/replay"
	"github.com/golang-jwt/jwt/v5"
)

// Storage keys of the persisted session. They are always written and
// removed together.
const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

// ErrMalformedAuthResponse is returned when a 2xx auth response lacks the
// token or the user.
var ErrMalformedAuthResponse = errors.New("malformed auth response")

// AuthService defines session operations for the CLI.
//
// Contract:
//   - Login / Register: authenticate and persist the session. On failure
//     nothing changes.
//   - Logout: always succeeds from the caller's view.
//   - Subscribe: the callback gets the current identity (nil when anonymous)
//     right away and again on every transition.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.Identity, error)
	Register(ctx context.Context, email, password string) (*models.Identity, error)
	Logout(ctx context.Context)
	IsAuthenticated() bool
	Token() (string, bool)
	Current() *models.Identity
	Subscribe(fn func(*models.Identity)) (unsubscribe func())
}

// Session owns the bearer token and the identity it belongs to. It is safe
// for concurrent use.
type Session struct {
	repo   metadata.Repository
	rest   *rest.Client
	logger logging.Logger
	now    func() time.Time

	// transition serializes state changes with their publication, so the
	// stream always ends on the state the session is actually in.
	transition sync.Mutex

	mu       sync.RWMutex
	token    string
	identity *models.Identity

	stream *replay.Subject[*models.Identity]
}

var _ AuthService = (*Session)(nil)

// NewSession builds a Session and restores a previously persisted one from
// repo. Storage problems are logged and leave the session anonymous.
func NewSession(ctx context.Context, repo metadata.Repository, rc *rest.Client, logger logging.Logger) *Session {
	return newSession(ctx, repo, rc, logger, time.Now)
}

func newSession(ctx context.Context, repo metadata.Repository, rc *rest.Client, logger logging.Logger, now func() time.Time) *Session {
	logger = logging.OrNop(logger)
	s := &Session{
		repo:   repo,
		rest:   rc,
		logger: logger.With("component", "session"),
		now:    now,
	}
	s.restore(ctx)
	s.stream = replay.NewSubject(copyIdentity(s.identity))
	return s
}

func (s *Session) restore(ctx context.Context) {
	tok, err := s.repo.Get(ctx, KeyToken)
	if err != nil {
		s.logger.Warn(ctx, "read stored token", "error", err)
		return
	}
	raw, err := s.repo.Get(ctx, KeyUser)
	if err != nil {
		s.logger.Warn(ctx, "read stored identity", "error", err)
		return
	}

	if tok == nil && raw == nil {
		return
	}

	var id models.Identity
	switch {
	case len(tok) == 0 || raw == nil:
		s.logger.Warn(ctx, "discarding incomplete stored session")
		s.clearStorage(ctx)
		return
	case json.Unmarshal(raw, &id) != nil || id.ID == "" || !id.Role.Valid():
		s.logger.Warn(ctx, "discarding unreadable stored identity")
		s.clearStorage(ctx)
		return
	case s.expired(string(tok)):
		s.logger.Info(ctx, "stored token has expired", "user", id.Email)
		s.clearStorage(ctx)
		return
	}

	s.token = string(tok)
	s.identity = &id
	s.logger.Debug(ctx, "session restored", "user", id.Email)
}

// expired reports whether token is a JWT whose exp claim is in the past.
// The signature is not checked. Tokens that are not JWTs, or carry no exp,
// are never considered expired.
func (s *Session) expired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !exp.After(s.now())
}

func (s *Session) clearStorage(ctx context.Context) {
	if err := s.repo.DeleteMany(ctx, KeyToken, KeyUser); err != nil {
		s.logger.Error(ctx, "clear stored session", "error", err)
	}
}

// Login authenticates with email and password.
func (s *Session) Login(ctx context.Context, email, password string) (*models.Identity, error) {
	return s.authenticate(ctx, "/auth/login", email, password)
}

// Register creates an account and signs in as it.
func (s *Session) Register(ctx context.Context, email, password string) (*models.Identity, error) {
	return s.authenticate(ctx, "/auth/register", email, password)
}

func (s *Session) authenticate(ctx context.Context, path, email, password string) (*models.Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, common.ValidationError("email and password are required")
	}

	var resp models.AuthResponse
	err := s.rest.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   path,
		Body:   models.Credentials{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return nil, err
	}
	if resp.Token == "" || resp.User == nil || resp.User.ID == "" {
		return nil, ErrMalformedAuthResponse
	}

	raw, err := json.Marshal(resp.User)
	if err != nil {
		return nil, fmt.Errorf("encode identity: %w", err)
	}
	s.transition.Lock()
	defer s.transition.Unlock()

	if err := s.repo.SetMany(ctx, map[string][]byte{
		KeyToken: []byte(resp.Token),
		KeyUser:  raw,
	}); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.token = resp.Token
	s.identity = copyIdentity(resp.User)
	s.mu.Unlock()
	s.stream.Publish(copyIdentity(resp.User))

	s.logger.Info(ctx, "signed in", "user", resp.User.Email, "role", string(resp.User.Role))
	return copyIdentity(resp.User), nil
}

// Logout ends the session locally, then asks the backend to revoke the old
// token. Neither storage nor backend failures are reported to the caller.
func (s *Session) Logout(ctx context.Context) {
	s.transition.Lock()
	s.mu.Lock()
	token := s.token
	s.token = ""
	s.identity = nil
	s.mu.Unlock()

	s.clearStorage(ctx)
	s.stream.Publish(nil)
	s.transition.Unlock()

	if token == "" {
		return
	}
	err := s.rest.Do(ctx, rest.Request{Method: http.MethodPost, Path: "/auth/logout", Token: token}, nil)
	if err != nil {
		s.logger.Debug(ctx, "backend logout failed", "error", err)
	}
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.identity != nil
}

// Token returns the bearer token, if signed in.
func (s *Session) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

// Current returns a copy of the signed-in identity, or nil.
func (s *Session) Current() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyIdentity(s.identity)
}

func (s *Session) Subscribe(fn func(*models.Identity)) func() {
	return s.stream.Subscribe(fn)
}

func copyIdentity(id *models.Identity) *models.Identity {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
