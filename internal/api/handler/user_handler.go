package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tahadev/portfolio/internal/core/ports"
)

// UserHandler handles the admin-only user management endpoints.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

type listUsersResponse struct {
	Data []identityResponse `json:"data"`
}

// List handles GET /api/users.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listUsersResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := listUsersResponse{Data: make([]identityResponse, 0, len(users))}
	for _, u := range users {
		resp.Data = append(resp.Data, toIdentity(u))
	}
	return c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/users/:id. Admin accounts cannot be deleted.
//
// @Summary      Delete a non-admin user
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user removed"})
}

// ToggleRole handles PUT /api/users/:id/role.
//
// @Summary      Toggle a user's role between admin and standard
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  identityResponse
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id}/role [put]
func (h *UserHandler) ToggleRole(c echo.Context) error {
	user, err := h.service.ToggleRole(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toIdentity(user))
}
