package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/console/internal/core/domain"
	"github.com/orderdesk/console/internal/core/ports"
)

type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// List returns orders, optionally narrowed by status, client or creator.
// Filters are applied over the cached full order set.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        status    query  string  false  "Order status"
// @Param        clientId  query  string  false  "Only orders for this client"
// @Param        createdBy query  string  false  "Only orders created by this user"
// @Success      200  {array}  domain.Order
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	filter := ports.OrderFilter{
		Status:    domain.OrderStatus(c.QueryParam("status")),
		ClientID:  c.QueryParam("clientId"),
		CreatedBy: c.QueryParam("createdBy"),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
	}

	orders, err := h.orders.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get returns a single order.
//
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "Order id"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// Create submits a new order on behalf of the session user.
//
// @Summary      Create order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        body  body      createOrderRequest  true  "Order draft"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.orders.Create(c.Request().Context(), ports.CreateOrderInput{
		TrackID:      req.TrackID,
		ClientID:     req.ClientID,
		Items:        toItemInputs(req.Items),
		DeliveryFees: req.DeliveryFees,
		Notes:        req.Notes,
		CreatedBy:    user.ID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update resubmits an order in full.
//
// @Summary      Update order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "Order id"
// @Param        body  body      updateOrderRequest  true  "Order fields"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	var req updateOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.orders.Update(c.Request().Context(), c.Param("id"), ports.UpdateOrderInput{
		TrackID:      req.TrackID,
		ClientID:     req.ClientID,
		Items:        toItemInputs(req.Items),
		DeliveryFees: req.DeliveryFees,
		Status:       domain.OrderStatus(req.Status),
		Notes:        req.Notes,
		Rating:       req.Rating,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes an order.
//
// @Summary      Delete order
// @Tags         orders
// @Param        id  path  string  true  "Order id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.orders.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func toItemInputs(items []orderItemRequest) []ports.OrderItemInput {
	out := make([]ports.OrderItemInput, len(items))
	for i, it := range items {
		out[i] = ports.OrderItemInput{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    it.Price,
			Size:     it.Size,
		}
	}
	return out
}
