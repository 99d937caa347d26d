package bed

import (
	"time"

	"github.com/google/uuid"
)

// Bed maps to the beds table. PatientID is nullable and unique: a patient
// occupies at most one bed, and an empty bed has no patient.
type Bed struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	BedNumber  string     `db:"bed_number" json:"bed_number"`
	RoomNumber string     `db:"room_number" json:"room_number"`
	IsOccupied bool       `db:"is_occupied" json:"is_occupied"`
	PatientID  *uuid.UUID `db:"patient_id" json:"patient_id,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

type BedCreate struct {
	BedNumber  string     `json:"bed_number"`
	RoomNumber string     `json:"room_number"`
	IsOccupied bool       `json:"is_occupied"`
	PatientID  *uuid.UUID `json:"patient_id,omitempty"`
}

// BedUpdate assigns or discharges a patient. PatientID is taken as given: a
// nil value clears the assignment, so this is a full replacement rather than
// a patch.
type BedUpdate struct {
	IsOccupied bool       `json:"is_occupied"`
	PatientID  *uuid.UUID `json:"patient_id,omitempty"`
}
