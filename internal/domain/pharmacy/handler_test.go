package pharmacy

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/platform/auth"
)

func dispenseRequest(t *testing.T, h *Handler, principal *auth.Principal, body string) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/dispensations", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if principal != nil {
		req = req.WithContext(auth.WithPrincipal(req.Context(), principal))
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, h.Dispense(c)
}

func pharmacist() *auth.Principal {
	return &auth.Principal{
		ID:       uuid.New(),
		Email:    "pharm@example.com",
		RoleName: "Pharmacist",
		HasRole:  true,
	}
}

func TestDispenseHandler(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	m := addMedicine(t, svc, 10)
	actor := pharmacist()

	body := `{"patient_id":"` + uuid.NewString() + `","medicine_id":"` + m.ID.String() + `","quantity_dispensed":3}`
	rec, err := dispenseRequest(t, h, actor, body)
	if err != nil {
		t.Fatalf("dispense: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var d Dispensation
	if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if d.StaffID == nil || *d.StaffID != actor.ID {
		t.Error("expected dispensation attributed to the authenticated principal")
	}
	if d.QuantityDispensed != 3 {
		t.Errorf("expected quantity 3, got %d", d.QuantityDispensed)
	}
}

func TestDispenseHandler_NoPrincipal(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)

	_, err := dispenseRequest(t, h, nil, `{}`)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestDispenseHandler_Failures(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	m := addMedicine(t, svc, 2)

	tests := []struct {
		name string
		body string
		want string
	}{
		{
			"unknown medicine",
			`{"patient_id":"` + uuid.NewString() + `","medicine_id":"` + uuid.NewString() + `","quantity_dispensed":1}`,
			"Failed to create dispensation: medicine not found",
		},
		{
			"insufficient stock",
			`{"patient_id":"` + uuid.NewString() + `","medicine_id":"` + m.ID.String() + `","quantity_dispensed":3}`,
			"Failed to create dispensation: insufficient stock",
		},
		{
			"zero quantity",
			`{"patient_id":"` + uuid.NewString() + `","medicine_id":"` + m.ID.String() + `","quantity_dispensed":0}`,
			"Quantity dispensed must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dispenseRequest(t, h, pharmacist(), tt.body)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected echo.HTTPError, got %T (%v)", err, err)
			}
			if httpErr.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", httpErr.Code)
			}
			if httpErr.Message != tt.want {
				t.Errorf("expected message %q, got %v", tt.want, httpErr.Message)
			}
		})
	}
}

func TestRestockHandler(t *testing.T) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	m := addMedicine(t, svc, 5)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/medicines/"+m.ID.String()+"/restock",
		strings.NewReader(`{"quantity_added":10}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(m.ID.String())

	if err := h.Restock(c); err != nil {
		t.Fatalf("restock: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var updated Medicine
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if updated.StockQuantity != 15 {
		t.Errorf("expected stock 15, got %d", updated.StockQuantity)
	}
}
