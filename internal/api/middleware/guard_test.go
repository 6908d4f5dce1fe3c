package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/guard"
)

type stubSession struct {
	user *domain.User
}

func (s *stubSession) CurrentUser() *domain.User { return s.user }

func runGuard(t *testing.T, sessions SessionReader, class guard.RouteClass) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := Guard(sessions, class)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	return rec, reached
}

func decodeRedirect(t *testing.T, rec *httptest.ResponseRecorder) redirectResponse {
	t.Helper()
	var body redirectResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func TestGuard_UnauthenticatedRedirectsToLogin(t *testing.T) {
	rec, reached := runGuard(t, &stubSession{}, guard.Protected)
	if reached {
		t.Fatalf("handler must not run for unauthenticated request")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if body := decodeRedirect(t, rec); body.Redirect != "/login" {
		t.Fatalf("redirect = %q, want /login", body.Redirect)
	}
}

func TestGuard_EmployeeBlockedFromAdminRoutes(t *testing.T) {
	sessions := &stubSession{user: &domain.User{ID: "u2", Role: domain.RoleEmployee}}
	rec, reached := runGuard(t, sessions, guard.AdminOnly)
	if reached {
		t.Fatalf("handler must not run for employee on admin-only route")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if body := decodeRedirect(t, rec); body.Redirect != "/dashboard" {
		t.Fatalf("redirect = %q, want /dashboard", body.Redirect)
	}
}

func TestGuard_EmployeeAllowedOnProtected(t *testing.T) {
	sessions := &stubSession{user: &domain.User{ID: "u2", Role: domain.RoleEmployee}}
	rec, reached := runGuard(t, sessions, guard.Protected)
	if !reached {
		t.Fatalf("employee must reach protected routes")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGuard_AdminAllowedAndUserInjected(t *testing.T) {
	admin := &domain.User{ID: "u1", Role: domain.RoleAdmin}
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var injected *domain.User
	handler := Guard(&stubSession{user: admin}, guard.AdminOnly)(func(c echo.Context) error {
		injected, _ = c.Get("user").(*domain.User)
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("guard returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if injected == nil || injected.ID != "u1" {
		t.Fatalf("expected admin injected into context, got %+v", injected)
	}
}
