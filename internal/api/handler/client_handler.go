package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderdesk/console/internal/core/ports"
)

type ClientHandler struct {
	clients ports.ClientService
}

func NewClientHandler(clients ports.ClientService) *ClientHandler {
	return &ClientHandler{clients: clients}
}

type clientRequest struct {
	Name           string   `json:"name"           validate:"required"`
	DefaultAddress string   `json:"defaultAddress" validate:"required"`
	PhoneNumbers   []string `json:"phoneNumbers"   validate:"required,min=1"`
	Addresses      []string `json:"addresses"`
	Rating         float64  `json:"rating"         validate:"gte=0,lte=5"`
}

func (r clientRequest) toInput() ports.ClientInput {
	return ports.ClientInput{
		Name:           r.Name,
		DefaultAddress: r.DefaultAddress,
		PhoneNumbers:   r.PhoneNumbers,
		Addresses:      r.Addresses,
		Rating:         r.Rating,
	}
}

// List returns all clients annotated with aggregate statistics, ranked by
// importance. An optional search term filters by name, address or phone.
//
// @Summary      List clients with statistics
// @Tags         clients
// @Produce      json
// @Param        search  query  string  false  "Search term"
// @Success      200  {array}  ports.ClientStats
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	stats, err := h.clients.Stats(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Get returns a single client.
//
// @Summary      Get client
// @Tags         clients
// @Produce      json
// @Param        id  path  string  true  "Client id"
// @Success      200  {object}  domain.Client
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.clients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, client)
}

// Create registers a new client.
//
// @Summary      Create client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      clientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.clients.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update rewrites a client's details.
//
// @Summary      Update client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Client id"
// @Param        body  body      clientRequest  true  "Client details"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.clients.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete removes a client.
//
// @Summary      Delete client
// @Tags         clients
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.clients.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
