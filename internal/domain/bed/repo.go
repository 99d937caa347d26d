package bed

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrBedNotFound = errors.New("bed not found")
	// ErrBedConflict is returned when a patient is assigned to a second bed.
	ErrBedConflict     = errors.New("patient is already assigned to a bed")
	ErrPatientNotFound = errors.New("patient not found")
)

type Repository interface {
	Create(ctx context.Context, b *Bed) error
	GetByID(ctx context.Context, id uuid.UUID) (*Bed, error)
	List(ctx context.Context, limit, offset int) ([]*Bed, int, error)
	Update(ctx context.Context, b *Bed) error
	Delete(ctx context.Context, id uuid.UUID) error
}
