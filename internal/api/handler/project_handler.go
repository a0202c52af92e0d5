package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workcity/project-tracker/internal/api/metrics"
	"github.com/workcity/project-tracker/internal/core/domain"
	"github.com/workcity/project-tracker/internal/core/ports"
)

// ProjectHandler handles HTTP requests for projects.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /api/projects. Each project carries the client's name.
//
// @Summary      List projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.ListProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Success: true, Count: len(projects), Data: projects})
}

// Get handles GET /api/projects/:id. The project carries the client's name
// and email.
//
// @Summary      Get a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.GetProject(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: project})
}

// ListByClient handles GET /api/projects/client/:clientId. An unknown client
// yields an empty list, not 404.
//
// @Summary      List projects of a client
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        clientId  path      string  true  "Client id"
// @Success      200       {object}  listResponse
// @Failure      401       {object}  ErrorResponse
// @Router       /projects/client/{clientId} [get]
func (h *ProjectHandler) ListByClient(c echo.Context) error {
	projects, err := h.service.ListProjectsByClient(c.Request().Context(), c.Param("clientId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listResponse{Success: true, Count: len(projects), Data: projects})
}

// Create handles POST /api/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project fields"
// @Success      201   {object}  dataResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	id, err := actor(c)
	if err != nil {
		return err
	}
	req, err := bindRequest[projectRequest](c, "project")
	if err != nil {
		return err
	}

	project, err := h.service.CreateProject(c.Request().Context(), id, req.fields())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidClientReference) {
			metrics.ReferenceRejectionsTotal.Inc()
			return err
		}
		return exposeCause(err)
	}

	metrics.ResourceWritesTotal.WithLabelValues("project", "create").Inc()
	return c.JSON(http.StatusCreated, dataResponse{Success: true, Data: project})
}

// Update handles PUT /api/projects/:id.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Project id"
// @Param        body  body      projectRequest  true  "Project fields"
// @Success      200   {object}  dataResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      401   {object}  ErrorResponse
// @Failure      403   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Router       /projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	req, err := bindRequest[projectRequest](c, "project")
	if err != nil {
		return err
	}

	project, err := h.service.UpdateProject(c.Request().Context(), c.Param("id"), req.fields())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidClientReference) {
			metrics.ReferenceRejectionsTotal.Inc()
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid client ID provided for update").SetInternal(err)
		}
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("project", "update").Inc()
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: project})
}

// Delete handles DELETE /api/projects/:id.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse
// @Router       /projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteProject(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ResourceWritesTotal.WithLabelValues("project", "delete").Inc()
	return c.JSON(http.StatusOK, dataResponse{Success: true, Data: struct{}{}})
}
