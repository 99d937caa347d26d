package rbac

import (
	"context"
	"errors"
	"testing"
)

func TestService_DeleteRoleInUse(t *testing.T) {
	roles := newMemRoleRepo()
	perms := newMemPermRepo()
	svc := NewService(roles, perms, newMemGrantRepo(perms))
	ctx := context.Background()

	role, err := svc.CreateRole(ctx, &RoleCreate{Name: "Surgeon"})
	if err != nil {
		t.Fatalf("create role: %v", err)
	}

	roles.staffCount[role.ID] = 2
	if err := svc.DeleteRole(ctx, role.ID); !errors.Is(err, ErrRoleInUse) {
		t.Errorf("expected ErrRoleInUse while staff reference the role, got %v", err)
	}

	roles.staffCount[role.ID] = 0
	if err := svc.DeleteRole(ctx, role.ID); err != nil {
		t.Errorf("expected delete to succeed with no references, got %v", err)
	}
}

func TestService_CreateDuplicateRole(t *testing.T) {
	perms := newMemPermRepo()
	svc := NewService(newMemRoleRepo(), perms, newMemGrantRepo(perms))
	ctx := context.Background()

	if _, err := svc.CreateRole(ctx, &RoleCreate{Name: "Auditor"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateRole(ctx, &RoleCreate{Name: "Auditor"}); !errors.Is(err, ErrDuplicateRole) {
		t.Errorf("expected ErrDuplicateRole, got %v", err)
	}
}

func TestService_GrantAndRevokePermission(t *testing.T) {
	roles := newMemRoleRepo()
	perms := newMemPermRepo()
	grants := newMemGrantRepo(perms)
	svc := NewService(roles, perms, grants)
	ctx := context.Background()

	if err := perms.EnsureByName(ctx, "read_patients", ""); err != nil {
		t.Fatalf("ensure permission: %v", err)
	}
	role, err := svc.CreateRole(ctx, &RoleCreate{Name: "Receptionist"})
	if err != nil {
		t.Fatalf("create role: %v", err)
	}

	if err := svc.GrantPermission(ctx, role.ID, "read_patients"); err != nil {
		t.Fatalf("grant: %v", err)
	}
	// Granting again must not duplicate.
	if err := svc.GrantPermission(ctx, role.ID, "read_patients"); err != nil {
		t.Fatalf("regrant: %v", err)
	}

	rwp, err := svc.GetRole(ctx, role.ID)
	if err != nil {
		t.Fatalf("get role: %v", err)
	}
	if len(rwp.Permissions) != 1 || rwp.Permissions[0] != "read_patients" {
		t.Errorf("expected exactly [read_patients], got %v", rwp.Permissions)
	}

	if err := svc.RevokePermission(ctx, role.ID, "read_patients"); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	rwp, _ = svc.GetRole(ctx, role.ID)
	if len(rwp.Permissions) != 0 {
		t.Errorf("expected no permissions after revoke, got %v", rwp.Permissions)
	}

	if err := svc.GrantPermission(ctx, role.ID, "no_such_permission"); !errors.Is(err, ErrPermissionNotFound) {
		t.Errorf("expected ErrPermissionNotFound, got %v", err)
	}
}
