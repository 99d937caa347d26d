package staff

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/hms/hms/internal/platform/auth"
)

type memRepo struct {
	staff map[uuid.UUID]*Staff
	roles map[uuid.UUID]memRole
}

type memRole struct {
	name        string
	permissions []string
}

func newMemRepo() *memRepo {
	return &memRepo{
		staff: make(map[uuid.UUID]*Staff),
		roles: make(map[uuid.UUID]memRole),
	}
}

func (r *memRepo) addRole(name string, permissions ...string) uuid.UUID {
	id := uuid.New()
	r.roles[id] = memRole{name: name, permissions: permissions}
	return id
}

func (r *memRepo) Create(ctx context.Context, s *Staff) error {
	for _, existing := range r.staff {
		if existing.Email == s.Email {
			return ErrDuplicateStaff
		}
	}
	s.ID = uuid.New()
	cp := *s
	r.staff[s.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(ctx context.Context, id uuid.UUID) (*Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, ErrStaffNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memRepo) GetByEmail(ctx context.Context, email string) (*Staff, error) {
	for _, s := range r.staff {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, ErrStaffNotFound
}

func (r *memRepo) GetByEmailWithRole(ctx context.Context, email string) (*StaffWithRole, error) {
	s, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	sw := &StaffWithRole{Staff: *s, Permissions: []string{}}
	if s.RoleID != nil {
		if role, ok := r.roles[*s.RoleID]; ok {
			name := role.name
			sw.RoleName = &name
			sw.Permissions = append(sw.Permissions, role.permissions...)
		}
	}
	return sw, nil
}

func (r *memRepo) List(ctx context.Context, limit, offset int) ([]*Staff, int, error) {
	var out []*Staff
	for _, s := range r.staff {
		cp := *s
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *memRepo) Update(ctx context.Context, s *Staff) error {
	if _, ok := r.staff[s.ID]; !ok {
		return ErrStaffNotFound
	}
	cp := *s
	r.staff[s.ID] = &cp
	return nil
}

func (r *memRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.staff[id]; !ok {
		return ErrStaffNotFound
	}
	delete(r.staff, id)
	return nil
}

func TestService_CreateHashesPassword(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	member, err := svc.Create(context.Background(), &StaffCreate{
		FirstName:     "Jane",
		LastName:      "Doe",
		Email:         "jane@example.com",
		ContactNumber: "5550001111",
		Password:      "hunter2",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if member.HashedPassword == "hunter2" {
		t.Error("password stored in plaintext")
	}
	if !auth.CheckPassword(member.HashedPassword, "hunter2") {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestService_CreateDuplicateEmail(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	in := &StaffCreate{Email: "dup@example.com", Password: "pw"}
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	if _, err := svc.Create(context.Background(), in); !errors.Is(err, ErrDuplicateStaff) {
		t.Errorf("expected ErrDuplicateStaff, got %v", err)
	}
}

func TestService_Authenticate(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), &StaffCreate{
		Email:    "login@example.com",
		Password: "correct-horse",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "login@example.com", "correct-horse"); err != nil {
		t.Errorf("expected login to succeed, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "login@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "nobody@example.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestService_Resolve(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	roleID := repo.addRole("Nurse", "read_patients", "update_patient")

	if _, err := svc.Create(context.Background(), &StaffCreate{
		Email:    "nurse@example.com",
		Password: "pw",
		RoleID:   &roleID,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	p, err := svc.Resolve(context.Background(), "nurse@example.com")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !p.HasRole || p.RoleName != "Nurse" {
		t.Errorf("expected Nurse role, got %+v", p)
	}
	if !p.HasPermission("read_patients") {
		t.Error("expected read_patients permission")
	}
	if p.HasPermission("delete_patient") {
		t.Error("unexpected delete_patient permission")
	}
}

func TestService_ResolveNoRole(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	if _, err := svc.Create(context.Background(), &StaffCreate{
		Email:    "rookie@example.com",
		Password: "pw",
	}); err != nil {
		t.Fatalf("create: %v", err)
	}

	p, err := svc.Resolve(context.Background(), "rookie@example.com")
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if p.HasRole {
		t.Error("expected HasRole=false for staff without a role")
	}
	if len(p.Permissions) != 0 {
		t.Errorf("expected no permissions, got %v", p.Permissions)
	}
}

func TestService_ResolveUnknown(t *testing.T) {
	svc := NewService(newMemRepo())

	if _, err := svc.Resolve(context.Background(), "ghost@example.com"); !errors.Is(err, auth.ErrPrincipalNotFound) {
		t.Errorf("expected auth.ErrPrincipalNotFound, got %v", err)
	}
}

func TestService_UpdateRehashesPassword(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)

	member, err := svc.Create(context.Background(), &StaffCreate{
		Email:    "update@example.com",
		Password: "old-pw",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newPW := "new-pw"
	updated, err := svc.Update(context.Background(), member.ID, &StaffPatch{Password: &newPW})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !auth.CheckPassword(updated.HashedPassword, "new-pw") {
		t.Error("expected new password to verify")
	}
	if auth.CheckPassword(updated.HashedPassword, "old-pw") {
		t.Error("old password still verifies")
	}
}

func TestService_EnsureAdminIdempotent(t *testing.T) {
	repo := newMemRepo()
	svc := NewService(repo)
	roleID := repo.addRole("Admin")

	hash, err := auth.HashPassword("admin")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	created, err := svc.EnsureAdmin(context.Background(), "admin@example.com", hash, roleID)
	if err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if !created {
		t.Error("expected first run to create the admin")
	}

	created, err = svc.EnsureAdmin(context.Background(), "admin@example.com", hash, roleID)
	if err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	if created {
		t.Error("expected second run to be a no-op")
	}

	admin, err := repo.GetByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("get admin: %v", err)
	}
	if admin.RoleID == nil || *admin.RoleID != roleID {
		t.Error("expected admin to hold the Admin role")
	}
}
