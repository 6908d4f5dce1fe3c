package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/core/ports"
)

type SettingsHandler struct {
	sessions ports.SessionService
}

func NewSettingsHandler(sessions ports.SessionService) *SettingsHandler {
	return &SettingsHandler{sessions: sessions}
}

type settingsRequest struct {
	Language string `json:"language" validate:"required,oneof=en ar"`
	Theme    string `json:"theme"    validate:"required,oneof=light dark"`
}

type settingsResponse struct {
	Language  string `json:"language"`
	Direction string `json:"direction"`
	Theme     string `json:"theme"`
}

func toSettingsResponse(prefs domain.Preferences) settingsResponse {
	return settingsResponse{
		Language:  string(prefs.Language),
		Direction: prefs.Language.Direction(),
		Theme:     string(prefs.Theme),
	}
}

// Get returns the persisted UI preferences with the derived text direction.
//
// @Summary      Get UI settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  settingsResponse
// @Router       /settings [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	prefs, err := h.sessions.Preferences(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSettingsResponse(prefs))
}

// Update persists the UI preferences.
//
// @Summary      Update UI settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body      settingsRequest  true  "Preferences"
// @Success      200   {object}  settingsResponse
// @Failure      400   {object}  map[string]string
// @Router       /settings [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prefs := domain.Preferences{
		Language: domain.Language(req.Language),
		Theme:    domain.Theme(req.Theme),
	}
	if err := h.sessions.SavePreferences(c.Request().Context(), prefs); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSettingsResponse(prefs))
}
