package invoice

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses. Stored as plain text; the service rejects anything else.
const (
	StatusUnpaid  = "Unpaid"
	StatusPaid    = "Paid"
	StatusOverdue = "Overdue"
)

// Invoice maps to the invoices table.
type Invoice struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patient_id"`
	Amount      float64   `db:"amount" json:"amount"`
	Description string    `db:"description" json:"description"`
	DateIssued  time.Time `db:"date_issued" json:"date_issued"`
	Status      string    `db:"status" json:"status"`
}

type InvoiceCreate struct {
	PatientID   uuid.UUID `json:"patient_id"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

// StatusUpdate changes an invoice's payment status.
type StatusUpdate struct {
	Status string `json:"status"`
}
