package pharmacy

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	medicines     MedicineRepository
	dispensations DispensationRepository
}

func NewService(medicines MedicineRepository, dispensations DispensationRepository) *Service {
	return &Service{medicines: medicines, dispensations: dispensations}
}

func (s *Service) CreateMedicine(ctx context.Context, in *MedicineCreate) (*Medicine, error) {
	if in.StockQuantity < 0 {
		return nil, ErrInvalidQuantity
	}
	m := &Medicine{
		Name:          in.Name,
		Manufacturer:  in.Manufacturer,
		StockQuantity: in.StockQuantity,
		UnitPrice:     in.UnitPrice,
	}
	if err := s.medicines.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) GetMedicine(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return s.medicines.GetByID(ctx, id)
}

func (s *Service) ListMedicines(ctx context.Context, limit, offset int) ([]*Medicine, int, error) {
	return s.medicines.List(ctx, limit, offset)
}

// UpdateMedicine applies a partial update to catalog fields. Stock is not
// touched here; it moves only through Restock and Dispense.
func (s *Service) UpdateMedicine(ctx context.Context, id uuid.UUID, patch *MedicinePatch) (*Medicine, error) {
	m, err := s.medicines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		m.Name = *patch.Name
	}
	if patch.Manufacturer != nil {
		m.Manufacturer = *patch.Manufacturer
	}
	if patch.UnitPrice != nil {
		m.UnitPrice = *patch.UnitPrice
	}

	if err := s.medicines.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *Service) DeleteMedicine(ctx context.Context, id uuid.UUID) error {
	return s.medicines.Delete(ctx, id)
}

func (s *Service) Restock(ctx context.Context, id uuid.UUID, quantity int) (*Medicine, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return s.medicines.Restock(ctx, id, quantity)
}

// Dispense issues medicine to a patient, attributed to the acting staff
// member. Stock validation and deduction happen atomically in the repository.
func (s *Service) Dispense(ctx context.Context, in *DispensationCreate, staffID uuid.UUID) (*Dispensation, error) {
	if in.QuantityDispensed <= 0 {
		return nil, ErrInvalidQuantity
	}
	d := &Dispensation{
		PatientID:         in.PatientID,
		MedicineID:        in.MedicineID,
		StaffID:           &staffID,
		QuantityDispensed: in.QuantityDispensed,
		Notes:             in.Notes,
	}
	if err := s.dispensations.Dispense(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) ListDispensations(ctx context.Context, limit, offset int) ([]*Dispensation, int, error) {
	return s.dispensations.List(ctx, limit, offset)
}
