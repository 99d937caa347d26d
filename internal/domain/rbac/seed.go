package rbac

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PermissionCatalog is the fixed set of capabilities the application checks.
// Names are load-bearing: guards reference them literally.
var PermissionCatalog = []string{
	"create_staff", "read_staff", "update_staff", "delete_staff",
	"create_role", "read_roles", "update_role", "delete_role",
	"create_patient", "read_patients", "update_patient", "delete_patient",
	"create_appointment", "read_appointments", "update_appointment", "delete_appointment",
	"create_bed", "read_beds", "update_bed", "delete_bed",
	"create_invoice", "read_invoices", "update_invoice",
	"create_medicine", "read_medicines", "update_medicine", "delete_medicine", "restock_medicine",
	"create_dispensation", "read_dispensations",
}

// RoleCatalog maps each built-in role to the permissions it grants. Admin
// holds the full catalog.
var RoleCatalog = map[string][]string{
	"Admin": PermissionCatalog,
	"Doctor": {
		"read_patients",
		"read_appointments", "update_appointment",
		"read_beds",
		"read_medicines",
		"read_dispensations",
	},
	"Nurse": {
		"read_patients", "update_patient",
		"read_appointments",
		"read_beds", "update_bed",
		"read_dispensations",
	},
	"Pharmacist": {
		"read_medicines", "update_medicine", "restock_medicine",
		"create_dispensation", "read_dispensations",
	},
}

// AdminBootstrapper creates the bootstrap administrator account if it does
// not exist. Implemented by the staff domain; the password hash is computed
// by the caller so this package stays free of credential handling.
type AdminBootstrapper interface {
	EnsureAdmin(ctx context.Context, email, hashedPassword string, roleID uuid.UUID) (created bool, err error)
}

// Seeder idempotently materializes the permission catalog, the role catalog,
// their grant links, and the bootstrap administrator. Safe to run any number
// of times: existing rows are never modified or duplicated.
type Seeder struct {
	roles  RoleRepository
	perms  PermissionRepository
	grants GrantRepository
	admins AdminBootstrapper
}

func NewSeeder(roles RoleRepository, perms PermissionRepository, grants GrantRepository, admins AdminBootstrapper) *Seeder {
	return &Seeder{roles: roles, perms: perms, grants: grants, admins: admins}
}

// Run seeds permissions, roles, and grants.
func (s *Seeder) Run(ctx context.Context) error {
	for _, name := range PermissionCatalog {
		desc := "Permission to " + strings.ReplaceAll(name, "_", " ")
		if err := s.perms.EnsureByName(ctx, name, desc); err != nil {
			return fmt.Errorf("ensure permission %s: %w", name, err)
		}
	}

	for roleName := range RoleCatalog {
		if err := s.roles.EnsureByName(ctx, roleName, "The "+roleName+" role"); err != nil {
			return fmt.Errorf("ensure role %s: %w", roleName, err)
		}
	}

	for roleName, permNames := range RoleCatalog {
		role, err := s.roles.GetByName(ctx, roleName)
		if err != nil {
			return fmt.Errorf("load role %s: %w", roleName, err)
		}
		for _, permName := range permNames {
			perm, err := s.perms.GetByName(ctx, permName)
			if err != nil {
				return fmt.Errorf("load permission %s: %w", permName, err)
			}
			if err := s.grants.EnsureGrant(ctx, role.ID, perm.ID); err != nil {
				return fmt.Errorf("link %s -> %s: %w", roleName, permName, err)
			}
		}
	}

	return nil
}

// EnsureAdmin creates the bootstrap administrator with the Admin role. Run
// must have been called first so the Admin role exists. Returns true when a
// new account was created.
func (s *Seeder) EnsureAdmin(ctx context.Context, email, hashedPassword string) (bool, error) {
	if s.admins == nil {
		return false, fmt.Errorf("no admin bootstrapper configured")
	}
	adminRole, err := s.roles.GetByName(ctx, "Admin")
	if err != nil {
		return false, fmt.Errorf("load Admin role: %w", err)
	}
	return s.admins.EnsureAdmin(ctx, email, hashedPassword, adminRole.ID)
}
