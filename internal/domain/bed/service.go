package bed

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, in *BedCreate) (*Bed, error) {
	b := &Bed{
		BedNumber:  in.BedNumber,
		RoomNumber: in.RoomNumber,
		IsOccupied: in.IsOccupied,
		PatientID:  in.PatientID,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Bed, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Bed, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update assigns or discharges a patient. A nil PatientID in the update
// clears the assignment.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in *BedUpdate) (*Bed, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	b.IsOccupied = in.IsOccupied
	b.PatientID = in.PatientID

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
