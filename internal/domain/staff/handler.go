package staff

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/pkg/pagination"
)

type Handler struct {
	svc    *Service
	tokens *auth.TokenService
}

func NewHandler(svc *Service, tokens *auth.TokenService) *Handler {
	return &Handler{svc: svc, tokens: tokens}
}

// RegisterLoginRoute wires the public login endpoint. It lives outside the
// authenticated group: it is the one route that must be reachable without a
// token.
func (h *Handler) RegisterLoginRoute(e *echo.Echo) {
	e.POST("/token", h.Login)
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/staff", h.List, auth.Require(auth.RequirePermission("read_staff")))
	api.POST("/staff", h.Create, auth.Require(auth.RequirePermission("create_staff")))
	api.GET("/staff/:id", h.Get, auth.Require(auth.RequirePermission("read_staff")))
	api.PUT("/staff/:id", h.Update, auth.Require(auth.RequirePermission("update_staff")))
	api.DELETE("/staff/:id", h.Delete, auth.Require(auth.RequirePermission("delete_staff")))
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login handles the OAuth2 password flow: form-encoded username/password,
// bearer token out.
func (h *Handler) Login(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")

	member, err := h.svc.Authenticate(c.Request().Context(), email, password)
	if errors.Is(err, ErrInvalidCredentials) {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return echo.NewHTTPError(http.StatusUnauthorized, "Incorrect email or password")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	token, err := h.tokens.Issue(member.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (h *Handler) List(c echo.Context) error {
	p := pagination.FromContext(c)
	members, _, err := h.svc.List(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if members == nil {
		members = []*Staff{}
	}
	return c.JSON(http.StatusOK, members)
}

func (h *Handler) Create(c echo.Context) error {
	var in StaffCreate
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	member, err := h.svc.Create(c.Request().Context(), &in)
	if errors.Is(err, ErrDuplicateStaff) {
		return echo.NewHTTPError(http.StatusConflict, "Email already registered")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, member)
}

func (h *Handler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	member, err := h.svc.Get(c.Request().Context(), id)
	if errors.Is(err, ErrStaffNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Staff member not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) Update(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var patch StaffPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	member, err := h.svc.Update(c.Request().Context(), id, &patch)
	switch {
	case errors.Is(err, ErrStaffNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Staff member not found")
	case errors.Is(err, ErrDuplicateStaff):
		return echo.NewHTTPError(http.StatusConflict, "Email already registered")
	case err != nil:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, member)
}

func (h *Handler) Delete(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrStaffNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Staff member not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
