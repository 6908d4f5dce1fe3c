package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/core/ports"
	"github.com/orderdesk/console/internal/infrastructure/kv"
)

func adminUser() *domain.User {
	return &domain.User{ID: "u1", Name: "Mona", Email: "mona@example.com", Role: domain.RoleAdmin}
}

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(expiresAt)}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestSessionService_Login_PersistsSession(t *testing.T) {
	store := kv.NewMemory()
	backend := &stubBackend{loginResult: &ports.LoginResult{Token: "tok-1", User: adminUser()}}
	svc := NewSessionService(backend, store, zerolog.Nop())

	user, err := svc.Login(context.Background(), "mona@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if !svc.IsAuthenticated() {
		t.Fatalf("expected authenticated session")
	}
	if svc.Token() != "tok-1" {
		t.Fatalf("expected token in memory, got %q", svc.Token())
	}

	if _, err := store.Get(context.Background(), "token"); err != nil {
		t.Fatalf("token not persisted: %v", err)
	}
	if _, err := store.Get(context.Background(), "user"); err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
}

func TestSessionService_Login_FailureLeavesStateUntouched(t *testing.T) {
	store := kv.NewMemory()
	backend := &stubBackend{loginErr: domain.ErrInvalidCredentials}
	svc := NewSessionService(backend, store, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "mona@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if svc.IsAuthenticated() {
		t.Fatalf("failed login must not authenticate")
	}
	if _, err := store.Get(context.Background(), "token"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("failed login must not persist a token")
	}
}

func TestSessionService_Login_EmptyCredentials(t *testing.T) {
	svc := NewSessionService(&stubBackend{}, kv.NewMemory(), zerolog.Nop())
	if _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionService_Logout_FailSafe(t *testing.T) {
	store := kv.NewMemory()
	backend := &stubBackend{loginResult: &ports.LoginResult{Token: "tok-1", User: adminUser()}}
	svc := NewSessionService(backend, store, zerolog.Nop())

	if _, err := svc.Login(context.Background(), "mona@example.com", "s3cret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// Server-side logout fails; the local session must clear regardless.
	backend.logoutErr = errors.New("network down")
	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout returned error: %v", err)
	}

	if svc.IsAuthenticated() {
		t.Fatalf("expected unauthenticated session after logout")
	}
	if svc.Token() != "" {
		t.Fatalf("expected token cleared")
	}
	if _, err := store.Get(context.Background(), "token"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("stored token must be removed")
	}
	if _, err := store.Get(context.Background(), "user"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("stored user must be removed")
	}
}

func TestSessionService_Logout_KeepsPreferences(t *testing.T) {
	store := kv.NewMemory()
	backend := &stubBackend{loginResult: &ports.LoginResult{Token: "tok-1", User: adminUser()}}
	svc := NewSessionService(backend, store, zerolog.Nop())

	prefs := domain.Preferences{Language: domain.LanguageArabic, Theme: domain.ThemeDark}
	if err := svc.SavePreferences(context.Background(), prefs); err != nil {
		t.Fatalf("save preferences: %v", err)
	}
	_, _ = svc.Login(context.Background(), "mona@example.com", "s3cret")
	_ = svc.Logout(context.Background())

	got, err := svc.Preferences(context.Background())
	if err != nil {
		t.Fatalf("preferences: %v", err)
	}
	if got != prefs {
		t.Fatalf("preferences lost at logout: %+v", got)
	}
}

func TestSessionService_Restore_Roundtrip(t *testing.T) {
	store := kv.NewMemory()
	token := signedToken(t, time.Now().Add(time.Hour))
	backend := &stubBackend{loginResult: &ports.LoginResult{Token: token, User: adminUser()}}

	first := NewSessionService(backend, store, zerolog.Nop())
	if _, err := first.Login(context.Background(), "mona@example.com", "s3cret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	// A fresh process over the same store picks the session back up.
	second := NewSessionService(backend, store, zerolog.Nop())
	if err := second.Restore(context.Background()); err != nil {
		t.Fatalf("restore failed: %v", err)
	}
	user := second.CurrentUser()
	if user == nil || user.ID != "u1" {
		t.Fatalf("expected restored user, got %+v", user)
	}
	if second.Token() != token {
		t.Fatalf("expected restored token")
	}
}

func TestSessionService_Restore_CorruptUserWipesStorage(t *testing.T) {
	store := kv.NewMemory()
	_ = store.Set(context.Background(), "token", "tok-1")
	_ = store.Set(context.Background(), "user", "{not json")

	svc := NewSessionService(&stubBackend{}, store, zerolog.Nop())
	if err := svc.Restore(context.Background()); err != nil {
		t.Fatalf("restore returned error: %v", err)
	}

	if svc.CurrentUser() != nil {
		t.Fatalf("corrupt session must restore as unauthenticated")
	}
	if _, err := store.Get(context.Background(), "token"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("token key must be wiped")
	}
	if _, err := store.Get(context.Background(), "user"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("user key must be wiped")
	}
}

func TestSessionService_Restore_ExpiredTokenWipesStorage(t *testing.T) {
	store := kv.NewMemory()
	_ = store.Set(context.Background(), "token", signedToken(t, time.Now().Add(-time.Hour)))
	_ = store.Set(context.Background(), "user", `{"_id":"u1","name":"Mona","role":"admin"}`)

	svc := NewSessionService(&stubBackend{}, store, zerolog.Nop())
	if err := svc.Restore(context.Background()); err != nil {
		t.Fatalf("restore returned error: %v", err)
	}

	if svc.IsAuthenticated() {
		t.Fatalf("expired token must not restore a session")
	}
	if _, err := store.Get(context.Background(), "token"); !errors.Is(err, ports.ErrKeyNotFound) {
		t.Fatalf("expired token must be wiped")
	}
}

func TestSessionService_Restore_EmptyStore(t *testing.T) {
	svc := NewSessionService(&stubBackend{}, kv.NewMemory(), zerolog.Nop())
	if err := svc.Restore(context.Background()); err != nil {
		t.Fatalf("restore on empty store: %v", err)
	}
	if svc.IsAuthenticated() {
		t.Fatalf("empty store must restore as unauthenticated")
	}
}

func TestSessionService_SubscribersNotified(t *testing.T) {
	backend := &stubBackend{loginResult: &ports.LoginResult{Token: "tok-1", User: adminUser()}}
	svc := NewSessionService(backend, kv.NewMemory(), zerolog.Nop())

	var seen []*domain.User
	svc.Subscribe(func(u *domain.User) { seen = append(seen, u) })

	_, _ = svc.Login(context.Background(), "mona@example.com", "s3cret")
	_ = svc.Logout(context.Background())

	if len(seen) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(seen))
	}
	if seen[0] == nil || seen[0].ID != "u1" {
		t.Fatalf("first notification should carry the user, got %+v", seen[0])
	}
	if seen[1] != nil {
		t.Fatalf("logout notification should carry nil, got %+v", seen[1])
	}
}
