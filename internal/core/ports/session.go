package ports

import (
	"context"

	"github.com/orderdesk/console/internal/core/domain"
)

// SessionService is the single source of truth for who is logged in.
// Invariant: IsAuthenticated == (CurrentUser() != nil), and a non-nil user
// implies a token was persisted at login time.
type SessionService interface {
	// Login authenticates against the backend and persists the session.
	// On failure the current state is left untouched. Concurrent logins
	// race; the last response wins.
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// Logout is fail-safe: the local session always clears, even when the
	// server-side logout call fails.
	Logout(ctx context.Context) error
	// Restore rehydrates the session from durable storage at startup.
	// Corrupt stored state is wiped and treated as unauthenticated.
	Restore(ctx context.Context) error

	CurrentUser() *domain.User
	IsAuthenticated() bool
	// Subscribe registers fn to be called on every session state change.
	Subscribe(fn func(*domain.User))

	Preferences(ctx context.Context) (domain.Preferences, error)
	SavePreferences(ctx context.Context, prefs domain.Preferences) error
}
