package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/console/internal/core/domain"
)

// ctxUser extracts the session user injected by the Guard middleware.
// Guarded groups always set it; a nil user here means a route was
// registered without its guard.
func ctxUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get("user").(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return user, nil
}
