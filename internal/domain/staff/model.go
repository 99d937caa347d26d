package staff

import (
	"time"

	"github.com/google/uuid"
)

// Staff maps to the staff table: an authenticated actor with exactly one
// assigned role (nullable only transiently, e.g. between role reassignments).
type Staff struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	FirstName      string     `db:"first_name" json:"first_name"`
	LastName       string     `db:"last_name" json:"last_name"`
	Email          string     `db:"email" json:"email"`
	ContactNumber  string     `db:"contact_number" json:"contact_number"`
	HashedPassword string     `db:"hashed_password" json:"-"`
	RoleID         *uuid.UUID `db:"role_id" json:"role_id,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

// StaffWithRole is a staff member together with the role name and the full
// permission set of that role, loaded as one consistent read.
type StaffWithRole struct {
	Staff
	RoleName    *string  `json:"role_name,omitempty"`
	Permissions []string `json:"permissions"`
}

// StaffCreate is the payload for creating a staff member.
type StaffCreate struct {
	FirstName     string     `json:"first_name"`
	LastName      string     `json:"last_name"`
	Email         string     `json:"email"`
	ContactNumber string     `json:"contact_number"`
	Password      string     `json:"password"`
	RoleID        *uuid.UUID `json:"role_id,omitempty"`
}

// StaffPatch is a partial update: nil fields are left unchanged. A non-nil
// Password is re-hashed; RoleID reassigns the role.
type StaffPatch struct {
	FirstName     *string    `json:"first_name,omitempty"`
	LastName      *string    `json:"last_name,omitempty"`
	Email         *string    `json:"email,omitempty"`
	ContactNumber *string    `json:"contact_number,omitempty"`
	Password      *string    `json:"password,omitempty"`
	RoleID        *uuid.UUID `json:"role_id,omitempty"`
}
