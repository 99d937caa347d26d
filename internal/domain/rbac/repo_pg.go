package rbac

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// -- Role Repository --

type roleRepoPG struct {
	pool *pgxpool.Pool
}

func NewRoleRepo(pool *pgxpool.Pool) RoleRepository {
	return &roleRepoPG{pool: pool}
}

const roleColumns = `id, name, description, created_at, updated_at`

func (r *roleRepoPG) Create(ctx context.Context, role *Role) error {
	role.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO roles (id, name, description) VALUES ($1, $2, $3)`,
		role.ID, role.Name, role.Description,
	)
	if isPgErr(err, pgUniqueViolation) {
		return ErrDuplicateRole
	}
	return err
}

func (r *roleRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Role, error) {
	return scanRole(r.pool.QueryRow(ctx, `SELECT `+roleColumns+` FROM roles WHERE id = $1`, id))
}

func (r *roleRepoPG) GetByName(ctx context.Context, name string) (*Role, error) {
	return scanRole(r.pool.QueryRow(ctx, `SELECT `+roleColumns+` FROM roles WHERE name = $1`, name))
}

func (r *roleRepoPG) List(ctx context.Context, limit, offset int) ([]*Role, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM roles`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+roleColumns+` FROM roles ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var roles []*Role
	for rows.Next() {
		role := &Role{}
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, 0, err
		}
		roles = append(roles, role)
	}
	return roles, total, rows.Err()
}

func (r *roleRepoPG) Update(ctx context.Context, role *Role) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE roles SET name = $2, description = $3, updated_at = NOW() WHERE id = $1`,
		role.ID, role.Name, role.Description,
	)
	if isPgErr(err, pgUniqueViolation) {
		return ErrDuplicateRole
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoleNotFound
	}
	return nil
}

func (r *roleRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM roles WHERE id = $1`, id)
	if isPgErr(err, pgForeignKeyViolation) {
		// Staff rows still reference this role.
		return ErrRoleInUse
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRoleNotFound
	}
	return nil
}

func (r *roleRepoPG) CountStaff(ctx context.Context, roleID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM staff WHERE role_id = $1`, roleID).Scan(&count)
	return count, err
}

func (r *roleRepoPG) EnsureByName(ctx context.Context, name, description string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO roles (id, name, description) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING`,
		uuid.New(), name, description,
	)
	return err
}

func scanRole(row pgx.Row) (*Role, error) {
	role := &Role{}
	err := row.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRoleNotFound
	}
	if err != nil {
		return nil, err
	}
	return role, nil
}

// -- Permission Repository --

type permissionRepoPG struct {
	pool *pgxpool.Pool
}

func NewPermissionRepo(pool *pgxpool.Pool) PermissionRepository {
	return &permissionRepoPG{pool: pool}
}

func (r *permissionRepoPG) List(ctx context.Context) ([]*Permission, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, description FROM permissions ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var perms []*Permission
	for rows.Next() {
		p := &Permission{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}

func (r *permissionRepoPG) GetByName(ctx context.Context, name string) (*Permission, error) {
	p := &Permission{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, description FROM permissions WHERE name = $1`, name,
	).Scan(&p.ID, &p.Name, &p.Description)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrPermissionNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *permissionRepoPG) EnsureByName(ctx context.Context, name, description string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO permissions (id, name, description) VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING`,
		uuid.New(), name, description,
	)
	return err
}

// -- Grant Repository --

type grantRepoPG struct {
	pool *pgxpool.Pool
}

func NewGrantRepo(pool *pgxpool.Pool) GrantRepository {
	return &grantRepoPG{pool: pool}
}

func (r *grantRepoPG) EnsureGrant(ctx context.Context, roleID, permissionID uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO role_grants (id, role_id, permission_id) VALUES ($1, $2, $3)
		ON CONFLICT (role_id, permission_id) DO NOTHING`,
		uuid.New(), roleID, permissionID,
	)
	return err
}

func (r *grantRepoPG) Remove(ctx context.Context, roleID, permissionID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM role_grants WHERE role_id = $1 AND permission_id = $2`,
		roleID, permissionID,
	)
	return err
}

func (r *grantRepoPG) PermissionNames(ctx context.Context, roleID uuid.UUID) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.name
		FROM role_grants g
		JOIN permissions p ON p.id = g.permission_id
		WHERE g.role_id = $1
		ORDER BY p.name`, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

func isPgErr(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
