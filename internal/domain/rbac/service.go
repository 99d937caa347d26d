package rbac

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	roles  RoleRepository
	perms  PermissionRepository
	grants GrantRepository
}

func NewService(roles RoleRepository, perms PermissionRepository, grants GrantRepository) *Service {
	return &Service{roles: roles, perms: perms, grants: grants}
}

// -- Roles --

func (s *Service) CreateRole(ctx context.Context, in *RoleCreate) (*Role, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("role name is required")
	}
	role := &Role{Name: in.Name, Description: in.Description}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

func (s *Service) GetRole(ctx context.Context, id uuid.UUID) (*RoleWithPermissions, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	names, err := s.grants.PermissionNames(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	return &RoleWithPermissions{Role: *role, Permissions: names}, nil
}

func (s *Service) ListRoles(ctx context.Context, limit, offset int) ([]*Role, int, error) {
	return s.roles.List(ctx, limit, offset)
}

// UpdateRole applies a partial update: nil patch fields are left unchanged.
func (s *Service) UpdateRole(ctx context.Context, id uuid.UUID, patch *RolePatch) (*Role, error) {
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if *patch.Name == "" {
			return nil, fmt.Errorf("role name is required")
		}
		role.Name = *patch.Name
	}
	if patch.Description != nil {
		role.Description = patch.Description
	}
	if err := s.roles.Update(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// DeleteRole removes a role. Deletion is rejected with ErrRoleInUse while any
// staff member still references the role; reassign them first.
func (s *Service) DeleteRole(ctx context.Context, id uuid.UUID) error {
	count, err := s.roles.CountStaff(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrRoleInUse
	}
	return s.roles.Delete(ctx, id)
}

// -- Permissions --

func (s *Service) ListPermissions(ctx context.Context) ([]*Permission, error) {
	return s.perms.List(ctx)
}

// GrantPermission links a permission to a role by name. Granting an already
// granted permission is a no-op.
func (s *Service) GrantPermission(ctx context.Context, roleID uuid.UUID, permissionName string) error {
	if _, err := s.roles.GetByID(ctx, roleID); err != nil {
		return err
	}
	perm, err := s.perms.GetByName(ctx, permissionName)
	if err != nil {
		return err
	}
	return s.grants.EnsureGrant(ctx, roleID, perm.ID)
}

// RevokePermission removes a grant from a role.
func (s *Service) RevokePermission(ctx context.Context, roleID uuid.UUID, permissionName string) error {
	perm, err := s.perms.GetByName(ctx, permissionName)
	if err != nil {
		return err
	}
	return s.grants.Remove(ctx, roleID, perm.ID)
}
