package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tahadev/portfolio/internal/core/ports"
)

// ProjectHandler handles HTTP requests for the project gallery.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /api/projects — public, no auth required.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Success      200  {object}  listProjectsResponse
// @Router       /api/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listProjectsResponse{Data: make([]projectResponse, 0, len(projects))}
	for _, p := range projects {
		resp.Data = append(resp.Data, toProjectResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/projects/:id — public.
//
// @Summary      Get a project by id
// @Tags         projects
// @Produce      json
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	project, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProjectResponse(project))
}

// Create handles POST /api/projects — admin only.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProjectRequest  true  "Project details"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	var req createProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	project, err := h.service.Create(c.Request().Context(), ports.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		LiveURL:     req.LiveURL,
		RepoURL:     req.RepoURL,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProjectResponse(project))
}

// Delete handles DELETE /api/projects/:id — admin only.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "project removed"})
}
