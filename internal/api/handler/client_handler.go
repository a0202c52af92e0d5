package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workcity/project-tracker/internal/api/metrics"
	"github.com/workcity/project-tracker/internal/core/ports"
)

// ClientHandler handles HTTP requests for client records. Authentication and
// role checks run in middleware before any of these methods.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /api/clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Success: true, Count: len(clients), Data: clients})
}

// Get handles GET /api/clients/:id.
//
// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	client, err := h.service.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: client})
}

// Create handles POST /api/clients.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client fields"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	req, err := bindRequest[clientRequest](c, "client")
	if err != nil {
		return err
	}

	client, err := h.service.CreateClient(c.Request().Context(), id, req.fields())
	if err != nil {
		return exposeCause(err)
	}

	metrics.ResourceWritesTotal.WithLabelValues("client", "create").Inc()
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Data: client})
}

// Update handles PUT /api/clients/:id. The body is validated with the same
// rules as Create.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Client id"
// @Param        body  body      clientRequest  true  "Client fields"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	req, err := bindRequest[clientRequest](c, "client")
	if err != nil {
		return err
	}

	client, err := h.service.UpdateClient(c.Request().Context(), c.Param("id"), req.fields())
	if err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("client", "update").Inc()
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: client})
}

// Delete handles DELETE /api/clients/:id. Projects referencing the client
// are left in place.
//
// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteClient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("client", "delete").Inc()
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: struct{}{}})
}
