package appointment

import (
	"context"

	"github.com/google/uuid"
)

// DefaultStatus is assigned to new appointments created without an explicit
// status.
const DefaultStatus = "Scheduled"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, in *AppointmentCreate) (*Appointment, error) {
	status := in.Status
	if status == "" {
		status = DefaultStatus
	}
	a := &Appointment{
		PatientID:       in.PatientID,
		DoctorName:      in.DoctorName,
		AppointmentDate: in.AppointmentDate,
		Reason:          in.Reason,
		Status:          status,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, patch *AppointmentPatch) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.DoctorName != nil {
		a.DoctorName = *patch.DoctorName
	}
	if patch.AppointmentDate != nil {
		a.AppointmentDate = *patch.AppointmentDate
	}
	if patch.Reason != nil {
		a.Reason = *patch.Reason
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
