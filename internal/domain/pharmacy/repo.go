package pharmacy

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrMedicineNotFound is returned when no medicine matches the
	// reference.
	ErrMedicineNotFound = errors.New("medicine not found")
	// ErrDuplicateMedicine is returned when the medicine name is already
	// taken.
	ErrDuplicateMedicine = errors.New("medicine with this name already exists")
	// ErrInsufficientStock is returned when a dispensation requests more
	// units than the medicine has in stock.
	ErrInsufficientStock = errors.New("insufficient stock")
	// ErrInvalidQuantity is returned for zero or negative quantities.
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

type MedicineRepository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error)
	List(ctx context.Context, limit, offset int) ([]*Medicine, int, error)
	Update(ctx context.Context, m *Medicine) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Restock atomically increments the stock quantity and returns the
	// updated row.
	Restock(ctx context.Context, id uuid.UUID, quantity int) (*Medicine, error)
}

type DispensationRepository interface {
	// Dispense validates and applies the stock deduction atomically with the
	// creation of the dispensation record: the medicine row is locked for
	// the duration, so two concurrent dispensations can never both pass the
	// stock check against a stale value. On success d is populated with the
	// assigned ID and timestamp.
	Dispense(ctx context.Context, d *Dispensation) error
	List(ctx context.Context, limit, offset int) ([]*Dispensation, int, error)
}
