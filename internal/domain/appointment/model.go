package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment maps to the appointments table.
type Appointment struct {
	ID              uuid.UUID `db:"id" json:"id"`
	PatientID       uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorName      string    `db:"doctor_name" json:"doctor_name"`
	AppointmentDate time.Time `db:"appointment_date" json:"appointment_date"`
	Reason          string    `db:"reason" json:"reason"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

type AppointmentCreate struct {
	PatientID       uuid.UUID `json:"patient_id"`
	DoctorName      string    `json:"doctor_name"`
	AppointmentDate time.Time `json:"appointment_date"`
	Reason          string    `json:"reason"`
	Status          string    `json:"status"`
}

// AppointmentPatch is a partial update: nil fields are left unchanged.
type AppointmentPatch struct {
	DoctorName      *string    `json:"doctor_name,omitempty"`
	AppointmentDate *time.Time `json:"appointment_date,omitempty"`
	Reason          *string    `json:"reason,omitempty"`
	Status          *string    `json:"status,omitempty"`
}
