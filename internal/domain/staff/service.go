package staff

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/auth"
)

// ErrInvalidCredentials is returned by Authenticate for a wrong email or
// password. The two cases are indistinguishable by design.
var ErrInvalidCredentials = errors.New("incorrect email or password")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, in *StaffCreate) (*Staff, error) {
	if in.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if in.Password == "" {
		return nil, fmt.Errorf("password is required")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	member := &Staff{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Email:          in.Email,
		ContactNumber:  in.ContactNumber,
		HashedPassword: hash,
		RoleID:         in.RoleID,
	}
	if err := s.repo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Staff, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Staff, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Update applies a partial update: nil patch fields are left unchanged, a
// non-nil password is re-hashed before storage.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch *StaffPatch) (*Staff, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		member.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		member.LastName = *patch.LastName
	}
	if patch.Email != nil {
		if *patch.Email == "" {
			return nil, fmt.Errorf("email is required")
		}
		member.Email = *patch.Email
	}
	if patch.ContactNumber != nil {
		member.ContactNumber = *patch.ContactNumber
	}
	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		member.HashedPassword = hash
	}
	if patch.RoleID != nil {
		member.RoleID = patch.RoleID
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// Authenticate checks a login attempt and returns the staff member on
// success.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*Staff, error) {
	member, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, ErrStaffNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(member.HashedPassword, password) {
		return nil, ErrInvalidCredentials
	}
	return member, nil
}

// Resolve implements auth.PrincipalResolver: one consistent read of the
// staff member, their role, and the role's full permission set.
func (s *Service) Resolve(ctx context.Context, email string) (*auth.Principal, error) {
	sw, err := s.repo.GetByEmailWithRole(ctx, email)
	if errors.Is(err, ErrStaffNotFound) {
		return nil, auth.ErrPrincipalNotFound
	}
	if err != nil {
		return nil, err
	}

	principal := &auth.Principal{
		ID:          sw.ID,
		Email:       sw.Email,
		Permissions: sw.Permissions,
	}
	if sw.RoleName != nil {
		principal.RoleName = *sw.RoleName
		principal.HasRole = true
	}
	return principal, nil
}

// EnsureAdmin implements rbac.AdminBootstrapper: it creates the bootstrap
// administrator account unless one already exists under the given email.
func (s *Service) EnsureAdmin(ctx context.Context, email, hashedPassword string, roleID uuid.UUID) (bool, error) {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, ErrStaffNotFound) {
		return false, err
	}

	admin := &Staff{
		FirstName:      "Admin",
		LastName:       "User",
		Email:          email,
		ContactNumber:  "0000000000",
		HashedPassword: hashedPassword,
		RoleID:         &roleID,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
