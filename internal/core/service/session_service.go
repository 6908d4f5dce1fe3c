package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/orderdesk/console/internal/api/metrics"
	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/core/ports"
)

// Durable storage keys. token and user belong to the session and are wiped
// at logout; language and theme are preferences and survive it.
const (
	kvKeyToken    = "token"
	kvKeyUser     = "user"
	kvKeyLanguage = "language"
	kvKeyTheme    = "theme"
)

// SessionService owns the process-wide session singleton: the authenticated
// user and their token. It is the only writer of the durable store.
type SessionService struct {
	backend ports.Backend
	store   ports.KV
	log     zerolog.Logger

	mu    sync.RWMutex
	user  *domain.User
	token string
	subs  []func(*domain.User)
}

func NewSessionService(backend ports.Backend, store ports.KV, log zerolog.Logger) *SessionService {
	return &SessionService{backend: backend, store: store, log: log}
}

// Login authenticates against the backend. The session is persisted before
// it becomes visible in memory, so a non-nil user always implies a stored
// token. A failed login leaves the current state untouched. Concurrent
// logins are allowed to race; the last response wins.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	result, err := s.backend.Login(ctx, email, password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, err
	}
	if result.Token == "" || result.User == nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	raw, err := json.Marshal(result.User)
	if err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, kvKeyToken, result.Token); err != nil {
		return nil, err
	}
	if err := s.store.Set(ctx, kvKeyUser, string(raw)); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = result.User
	s.token = result.Token
	s.mu.Unlock()
	s.notify()

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("user_id", result.User.ID).Str("role", result.User.Role).Msg("session opened")
	return result.User, nil
}

// Logout is fail-safe: the server-side call is best effort, and local state
// plus durable storage are cleared regardless of its outcome. Preferences
// are kept.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.backend.Logout(ctx); err != nil {
		s.log.Warn().Err(err).Msg("server logout failed, clearing local session anyway")
	}

	if err := s.store.Delete(ctx, kvKeyToken, kvKeyUser); err != nil {
		s.log.Warn().Err(err).Msg("failed to clear stored session")
	}

	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	s.notify()

	s.log.Info().Msg("session closed")
	return nil
}

// Restore rehydrates the session from durable storage at startup. Missing
// keys leave the session unauthenticated. A user blob that fails to parse,
// or a stored token whose exp claim has elapsed, wipes both keys so no
// partial or corrupt state survives.
func (s *SessionService) Restore(ctx context.Context) error {
	token, err := s.store.Get(ctx, kvKeyToken)
	if errors.Is(err, ports.ErrKeyNotFound) {
		metrics.SessionRestoresTotal.WithLabelValues("empty").Inc()
		return nil
	}
	if err != nil {
		return err
	}

	raw, err := s.store.Get(ctx, kvKeyUser)
	if errors.Is(err, ports.ErrKeyNotFound) {
		metrics.SessionRestoresTotal.WithLabelValues("wiped").Inc()
		return s.wipe(ctx)
	}
	if err != nil {
		return err
	}

	var user domain.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil || user.ID == "" {
		s.log.Warn().Msg("stored user is corrupt, wiping session")
		metrics.SessionRestoresTotal.WithLabelValues("wiped").Inc()
		return s.wipe(ctx)
	}

	if tokenExpired(token) {
		s.log.Info().Str("user_id", user.ID).Msg("stored token expired, wiping session")
		metrics.SessionRestoresTotal.WithLabelValues("wiped").Inc()
		return s.wipe(ctx)
	}

	s.mu.Lock()
	s.user = &user
	s.token = token
	s.mu.Unlock()
	s.notify()

	metrics.SessionRestoresTotal.WithLabelValues("restored").Inc()
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("session restored")
	return nil
}

func (s *SessionService) wipe(ctx context.Context) error {
	return s.store.Delete(ctx, kvKeyToken, kvKeyUser)
}

// tokenExpired inspects the stored JWT's exp claim without verifying the
// signature; the gateway holds no signing key. Unparseable tokens are left
// to the backend to reject with a 401.
func tokenExpired(token string) bool {
	claims := jwt.RegisteredClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now())
}

// CurrentUser returns a copy of the authenticated user, or nil.
func (s *SessionService) CurrentUser() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *SessionService) IsAuthenticated() bool {
	return s.CurrentUser() != nil
}

// Token implements upstream.TokenSource.
func (s *SessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Subscribe registers fn to run on every session change. Callbacks run
// synchronously on the mutating goroutine and receive the new user (nil on
// logout).
func (s *SessionService) Subscribe(fn func(*domain.User)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

func (s *SessionService) notify() {
	s.mu.RLock()
	user := s.user
	subs := make([]func(*domain.User), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(user)
	}
}

// Preferences reads the persisted UI settings, falling back to defaults for
// anything unset or unrecognised.
func (s *SessionService) Preferences(ctx context.Context) (domain.Preferences, error) {
	prefs := domain.DefaultPreferences()

	if v, err := s.store.Get(ctx, kvKeyLanguage); err == nil {
		if lang := domain.Language(v); lang.Valid() {
			prefs.Language = lang
		}
	} else if !errors.Is(err, ports.ErrKeyNotFound) {
		return prefs, err
	}

	if v, err := s.store.Get(ctx, kvKeyTheme); err == nil {
		if theme := domain.Theme(v); theme.Valid() {
			prefs.Theme = theme
		}
	} else if !errors.Is(err, ports.ErrKeyNotFound) {
		return prefs, err
	}

	return prefs, nil
}

// SavePreferences persists the UI settings.
func (s *SessionService) SavePreferences(ctx context.Context, prefs domain.Preferences) error {
	if !prefs.Language.Valid() || !prefs.Theme.Valid() {
		return domain.ErrInvalidPreference
	}
	if err := s.store.Set(ctx, kvKeyLanguage, string(prefs.Language)); err != nil {
		return err
	}
	return s.store.Set(ctx, kvKeyTheme, string(prefs.Theme))
}
