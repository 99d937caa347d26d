package pharmacy

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
	medicineWrite := auth.Require(auth.RequireAnyRole("Admin", "Pharmacist"))
	dispensing := auth.Require(auth.RequireAnyRole("Admin", "Doctor", "Pharmacist"))

	api.GET("/medicines", h.ListMedicines)
	api.POST("/medicines", h.CreateMedicine, medicineWrite)
	api.GET("/medicines/:id", h.GetMedicine)
	api.PUT("/medicines/:id", h.UpdateMedicine, medicineWrite)
	api.DELETE("/medicines/:id", h.DeleteMedicine, auth.Require(auth.RequireAnyRole("Admin")))
	api.POST("/medicines/:id/restock", h.Restock, medicineWrite)

	api.GET("/dispensations", h.ListDispensations, dispensing)
	api.POST("/dispensations", h.Dispense, dispensing)
}

func (h *Handler) ListMedicines(c echo.Context) error {
	p := pagination.FromContext(c)
	medicines, _, err := h.svc.ListMedicines(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if medicines == nil {
		medicines = []*Medicine{}
	}
	return c.JSON(http.StatusOK, medicines)
}

func (h *Handler) CreateMedicine(c echo.Context) error {
	var in MedicineCreate
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.CreateMedicine(c.Request().Context(), &in)
	switch {
	case errors.Is(err, ErrDuplicateMedicine):
		return echo.NewHTTPError(http.StatusConflict, "Medicine with this name already exists")
	case errors.Is(err, ErrInvalidQuantity):
		return echo.NewHTTPError(http.StatusBadRequest, "Stock quantity must not be negative")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *Handler) GetMedicine(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	m, err := h.svc.GetMedicine(c.Request().Context(), id)
	if errors.Is(err, ErrMedicineNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Medicine not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) UpdateMedicine(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var patch MedicinePatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.UpdateMedicine(c.Request().Context(), id, &patch)
	switch {
	case errors.Is(err, ErrMedicineNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Medicine not found")
	case errors.Is(err, ErrDuplicateMedicine):
		return echo.NewHTTPError(http.StatusConflict, "Medicine with this name already exists")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) DeleteMedicine(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := h.svc.DeleteMedicine(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrMedicineNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Medicine not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) Restock(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	var in RestockRequest
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	m, err := h.svc.Restock(c.Request().Context(), id, in.QuantityAdded)
	switch {
	case errors.Is(err, ErrMedicineNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Medicine not found")
	case errors.Is(err, ErrInvalidQuantity):
		return echo.NewHTTPError(http.StatusBadRequest, "Quantity added must be positive")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, m)
}

func (h *Handler) ListDispensations(c echo.Context) error {
	p := pagination.FromContext(c)
	records, _, err := h.svc.ListDispensations(c.Request().Context(), p.Limit, p.Offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if records == nil {
		records = []*Dispensation{}
	}
	return c.JSON(http.StatusOK, records)
}

func (h *Handler) Dispense(c echo.Context) error {
	principal := auth.PrincipalFromContext(c.Request().Context())
	if principal == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
	}

	var in DispensationCreate
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	d, err := h.svc.Dispense(c.Request().Context(), &in, principal.ID)
	switch {
	case errors.Is(err, ErrMedicineNotFound):
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create dispensation: medicine not found")
	case errors.Is(err, ErrInsufficientStock):
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to create dispensation: insufficient stock")
	case errors.Is(err, ErrInvalidQuantity):
		return echo.NewHTTPError(http.StatusBadRequest, "Quantity dispensed must be positive")
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, d)
}
