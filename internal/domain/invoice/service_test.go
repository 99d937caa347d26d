package invoice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type memRepo struct {
	invoices map[uuid.UUID]*Invoice
}

func newMemRepo() *memRepo {
	return &memRepo{invoices: make(map[uuid.UUID]*Invoice)}
}

func (r *memRepo) Create(ctx context.Context, inv *Invoice) error {
	inv.ID = uuid.New()
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, ErrInvoiceNotFound
	}
	cp := *inv
	return &cp, nil
}

func (r *memRepo) List(ctx context.Context, limit, offset int) ([]*Invoice, int, error) {
	var out []*Invoice
	for _, inv := range r.invoices {
		cp := *inv
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *memRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, ErrInvoiceNotFound
	}
	inv.Status = status
	cp := *inv
	return &cp, nil
}

func TestService_CreateDefaultsToUnpaid(t *testing.T) {
	svc := NewService(newMemRepo())

	inv, err := svc.Create(context.Background(), &InvoiceCreate{
		PatientID:   uuid.New(),
		Amount:      120.50,
		Description: "Consultation",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inv.Status != StatusUnpaid {
		t.Errorf("expected default status Unpaid, got %q", inv.Status)
	}
}

func TestService_InvalidStatus(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	if _, err := svc.Create(ctx, &InvoiceCreate{
		PatientID: uuid.New(),
		Status:    "Pending",
	}); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus on create, got %v", err)
	}

	inv, err := svc.Create(ctx, &InvoiceCreate{PatientID: uuid.New(), Amount: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, inv.ID, "Cancelled"); !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("expected ErrInvalidStatus on update, got %v", err)
	}
}

func TestService_UpdateStatus(t *testing.T) {
	svc := NewService(newMemRepo())
	ctx := context.Background()

	inv, err := svc.Create(ctx, &InvoiceCreate{PatientID: uuid.New(), Amount: 10})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, inv.ID, StatusPaid)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != StatusPaid {
		t.Errorf("expected status Paid, got %q", updated.Status)
	}

	if _, err := svc.UpdateStatus(ctx, uuid.New(), StatusPaid); !errors.Is(err, ErrInvoiceNotFound) {
		t.Errorf("expected ErrInvoiceNotFound, got %v", err)
	}
}
