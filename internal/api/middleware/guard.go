package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/guard"
)

// SessionReader is the slice of the session service the guard needs.
type SessionReader interface {
	CurrentUser() *domain.User
}

// redirectResponse tells the frontend where to send the user when a route
// is not reachable in the current session state.
type redirectResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// Guard gates a route group by its protection class. The decision is
// re-evaluated on every request from the live session state; nothing is
// cached. On Allow the resolved user is injected into context for handlers.
func Guard(sessions SessionReader, class guard.RouteClass) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := sessions.CurrentUser()
			switch guard.Decide(guard.StateFor(user), class) {
			case guard.RedirectLogin:
				return c.JSON(http.StatusUnauthorized, redirectResponse{
					Error:    "authentication required",
					Redirect: "/login",
				})
			case guard.RedirectHome:
				return c.JSON(http.StatusForbidden, redirectResponse{
					Error:    "admin access required",
					Redirect: "/dashboard",
				})
			}

			c.Set("user", user)
			return next(c)
		}
	}
}
