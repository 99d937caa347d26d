package pharmacy

import (
	"time"

	"github.com/google/uuid"
)

// Medicine maps to the medicines table. Stock is a non-negative integer;
// every mutation goes through the atomic restock/dispense paths, never a
// plain field update.
type Medicine struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Manufacturer  string    `db:"manufacturer" json:"manufacturer"`
	StockQuantity int       `db:"stock_quantity" json:"stock_quantity"`
	UnitPrice     float64   `db:"unit_price" json:"unit_price"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// MedicineCreate is the payload for adding a medicine to the catalog.
type MedicineCreate struct {
	Name          string  `json:"name"`
	Manufacturer  string  `json:"manufacturer"`
	StockQuantity int     `json:"stock_quantity"`
	UnitPrice     float64 `json:"unit_price"`
}

// MedicinePatch is a partial update: nil fields are left unchanged. Stock is
// deliberately absent; it moves only via Restock and Dispense.
type MedicinePatch struct {
	Name         *string  `json:"name,omitempty"`
	Manufacturer *string  `json:"manufacturer,omitempty"`
	UnitPrice    *float64 `json:"unit_price,omitempty"`
}

// RestockRequest adds stock to a medicine.
type RestockRequest struct {
	QuantityAdded int `json:"quantity_added"`
}

// Dispensation maps to the dispensations table: an immutable audit record of
// medicine issued to a patient. StaffID is cleared (not cascaded) when the
// dispensing staff member is deleted.
type Dispensation struct {
	ID                uuid.UUID  `db:"id" json:"id"`
	PatientID         uuid.UUID  `db:"patient_id" json:"patient_id"`
	MedicineID        uuid.UUID  `db:"medicine_id" json:"medicine_id"`
	StaffID           *uuid.UUID `db:"staff_id" json:"staff_id,omitempty"`
	QuantityDispensed int        `db:"quantity_dispensed" json:"quantity_dispensed"`
	DateDispensed     time.Time  `db:"date_dispensed" json:"date_dispensed"`
	Notes             *string    `db:"notes" json:"notes,omitempty"`
}

// DispensationCreate is the payload for dispensing medicine to a patient.
type DispensationCreate struct {
	PatientID         uuid.UUID `json:"patient_id"`
	MedicineID        uuid.UUID `json:"medicine_id"`
	QuantityDispensed int       `json:"quantity_dispensed"`
	Notes             *string   `json:"notes,omitempty"`
}
