package rbac

import (
	"time"

	"github.com/google/uuid"
)

// Role maps to the roles table. A role is a named bundle of permissions;
// many staff members may share one role.
type Role struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Permission maps to the permissions table: an atomic named capability such
// as "read_patients". The catalog is seeded once and treated as immutable.
type Permission struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description,omitempty"`
}

// RoleGrant maps to the role_grants join table. The (role_id, permission_id)
// pair is unique.
type RoleGrant struct {
	ID           uuid.UUID `db:"id" json:"id"`
	RoleID       uuid.UUID `db:"role_id" json:"role_id"`
	PermissionID uuid.UUID `db:"permission_id" json:"permission_id"`
}

// RoleWithPermissions is a role together with the names of every permission
// its grant set contains.
type RoleWithPermissions struct {
	Role
	Permissions []string `json:"permissions"`
}

// RoleCreate is the payload for creating a role.
type RoleCreate struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// RolePatch is a partial update: nil fields are left unchanged.
type RolePatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
