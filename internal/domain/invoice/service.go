package invoice

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

func validStatus(status string) bool {
	switch status {
	case StatusUnpaid, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

func (s *Service) Create(ctx context.Context, in *InvoiceCreate) (*Invoice, error) {
	status := in.Status
	if status == "" {
		status = StatusUnpaid
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}
	inv := &Invoice{
		PatientID:   in.PatientID,
		Amount:      in.Amount,
		Description: in.Description,
		Status:      status,
	}
	if err := s.repo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Invoice, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*Invoice, error) {
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
