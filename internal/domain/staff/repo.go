package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrStaffNotFound is returned when no staff member matches the
	// reference.
	ErrStaffNotFound = errors.New("staff member not found")
	// ErrDuplicateStaff is returned when the email or contact number is
	// already registered.
	ErrDuplicateStaff = errors.New("email or contact number already registered")
)

type Repository interface {
	Create(ctx context.Context, s *Staff) error
	GetByID(ctx context.Context, id uuid.UUID) (*Staff, error)
	GetByEmail(ctx context.Context, email string) (*Staff, error)
	// GetByEmailWithRole loads the staff member, their role name, and the
	// role's complete permission set as ONE query, so a concurrent role edit
	// can never be observed half-applied.
	GetByEmailWithRole(ctx context.Context, email string) (*StaffWithRole, error)
	List(ctx context.Context, limit, offset int) ([]*Staff, int, error)
	Update(ctx context.Context, s *Staff) error
	// Delete removes the staff member. Historical dispensation records keep
	// existing with their attribution cleared (ON DELETE SET NULL), never
	// cascade-deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
