package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/console/internal/core/ports"
)

type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Overview returns the landing-page aggregates: the backend analytics
// snapshot plus revenue without delivery fees, the five most recent orders,
// and the five top clients by order count.
//
// @Summary      Dashboard overview
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.DashboardOverview
// @Router       /dashboard [get]
func (h *DashboardHandler) Overview(c echo.Context) error {
	overview, err := h.dashboard.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}

// Analytics returns the raw backend analytics snapshot.
//
// @Summary      Analytics snapshot
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.Analytics
// @Router       /analytics [get]
func (h *DashboardHandler) Analytics(c echo.Context) error {
	analytics, err := h.dashboard.Analytics(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, analytics)
}
