package rbac

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrRoleNotFound is returned when no role matches the reference.
	ErrRoleNotFound = errors.New("role not found")
	// ErrDuplicateRole is returned when a role name is already taken.
	ErrDuplicateRole = errors.New("role with this name already exists")
	// ErrRoleInUse is returned when deleting a role that staff members still
	// reference. The caller must reassign them first.
	ErrRoleInUse = errors.New("role is still assigned to staff members")
	// ErrPermissionNotFound is returned when no permission matches the name.
	ErrPermissionNotFound = errors.New("permission not found")
)

type RoleRepository interface {
	Create(ctx context.Context, r *Role) error
	GetByID(ctx context.Context, id uuid.UUID) (*Role, error)
	GetByName(ctx context.Context, name string) (*Role, error)
	List(ctx context.Context, limit, offset int) ([]*Role, int, error)
	Update(ctx context.Context, r *Role) error
	Delete(ctx context.Context, id uuid.UUID) error
	// CountStaff reports how many staff members reference the role, used to
	// reject deletion of a role that is still in use.
	CountStaff(ctx context.Context, roleID uuid.UUID) (int, error)
	// EnsureByName creates the role if absent; existing rows are untouched.
	EnsureByName(ctx context.Context, name, description string) error
}

type PermissionRepository interface {
	List(ctx context.Context) ([]*Permission, error)
	GetByName(ctx context.Context, name string) (*Permission, error)
	// EnsureByName creates the permission if absent; existing rows are
	// untouched.
	EnsureByName(ctx context.Context, name, description string) error
}

type GrantRepository interface {
	// EnsureGrant links a role to a permission, never duplicating the pair.
	EnsureGrant(ctx context.Context, roleID, permissionID uuid.UUID) error
	Remove(ctx context.Context, roleID, permissionID uuid.UUID) error
	// PermissionNames returns the names of every permission granted to the
	// role.
	PermissionNames(ctx context.Context, roleID uuid.UUID) ([]string, error)
}
