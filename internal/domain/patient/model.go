package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patients table. Contact number and email are unique
// across the hospital.
type Patient struct {
	ID            uuid.UUID `db:"id" json:"id"`
	FirstName     string    `db:"first_name" json:"first_name"`
	LastName      string    `db:"last_name" json:"last_name"`
	DateOfBirth   time.Time `db:"date_of_birth" json:"date_of_birth"`
	ContactNumber string    `db:"contact_number" json:"contact_number"`
	Email         string    `db:"email" json:"email"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

type PatientCreate struct {
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	DateOfBirth   time.Time `json:"date_of_birth"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
}

// PatientPatch is a partial update: nil fields are left unchanged.
type PatientPatch struct {
	FirstName     *string    `json:"first_name,omitempty"`
	LastName      *string    `json:"last_name,omitempty"`
	DateOfBirth   *time.Time `json:"date_of_birth,omitempty"`
	ContactNumber *string    `json:"contact_number,omitempty"`
	Email         *string    `json:"email,omitempty"`
}
