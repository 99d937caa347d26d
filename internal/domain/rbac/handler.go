package rbac

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/roles", h.ListRoles, auth.Require(auth.RequirePermission("read_roles")))
	api.POST("/roles", h.CreateRole, auth.Require(auth.RequirePermission("create_role")))
	api.GET("/roles/:id", h.GetRole, auth.Require(auth.RequirePermission("read_roles")))
	api.PUT("/roles/:id", h.UpdateRole, auth.Require(auth.RequirePermission("update_role")))
	api.DELETE("/roles/:id", h.DeleteRole, auth.Require(auth.RequirePermission("delete_role")))
	api.POST("/roles/:id/permissions", h.GrantPermission, auth.Require(auth.RequirePermission("update_role")))
	api.DELETE("/roles/:id/permissions/:name", h.RevokePermission, auth.Require(auth.RequirePermission("update_role")))
	api.GET("/permissions", h.ListPermissions, auth.Require(auth.RequirePermission("read_roles")))
}

func (h *Handler) ListRoles(c echo.Context) error {
	p := pagination.FromContext(c)
	roles, _, err := h.svc.ListRoles(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if roles == nil {
		roles = []*Role{}
	}
	return c.JSON(http.StatusOK, roles)
}

func (h *Handler) CreateRole(c echo.Context) error {
	var in RoleCreate
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	role, err := h.svc.CreateRole(c.Request().Context(), &in)
	if errors.Is(err, ErrDuplicateRole) {
		return echo.NewHTTPError(http.StatusConflict, "Role with this name already exists")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, role)
}

func (h *Handler) GetRole(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	role, err := h.svc.GetRole(c.Request().Context(), id)
	if errors.Is(err, ErrRoleNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Role not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, role)
}

func (h *Handler) UpdateRole(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var patch RolePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	role, err := h.svc.UpdateRole(c.Request().Context(), id, &patch)
	switch {
	case errors.Is(err, ErrRoleNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Role not found")
	case errors.Is(err, ErrDuplicateRole):
		return echo.NewHTTPError(http.StatusConflict, "Role with this name already exists")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, role)
}

func (h *Handler) DeleteRole(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err = h.svc.DeleteRole(c.Request().Context(), id)
	switch {
	case errors.Is(err, ErrRoleNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Role not found")
	case errors.Is(err, ErrRoleInUse):
		return echo.NewHTTPError(http.StatusConflict,
			"Role is still assigned to staff members; reassign them first")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

type grantRequest struct {
	Permission string `json:"permission"`
}

func (h *Handler) GrantPermission(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in grantRequest
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	err = h.svc.GrantPermission(c.Request().Context(), id, in.Permission)
	switch {
	case errors.Is(err, ErrRoleNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Role not found")
	case errors.Is(err, ErrPermissionNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Permission not found")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) RevokePermission(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	err = h.svc.RevokePermission(c.Request().Context(), id, c.Param("name"))
	if errors.Is(err, ErrPermissionNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Permission not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) ListPermissions(c echo.Context) error {
	perms, err := h.svc.ListPermissions(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if perms == nil {
		perms = []*Permission{}
	}
	return c.JSON(http.StatusOK, perms)
}
