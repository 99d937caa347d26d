package staff

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

const staffColumns = `id, first_name, last_name, email, contact_number, hashed_password, role_id, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, s *Staff) error {
	s.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO staff (id, first_name, last_name, email, contact_number, hashed_password, role_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.FirstName, s.LastName, s.Email, s.ContactNumber, s.HashedPassword, s.RoleID,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateStaff
	}
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Staff, error) {
	return scanStaff(r.pool.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE id = $1`, id))
}

func (r *repoPG) GetByEmail(ctx context.Context, email string) (*Staff, error) {
	return scanStaff(r.pool.QueryRow(ctx, `SELECT `+staffColumns+` FROM staff WHERE email = $1`, email))
}

func (r *repoPG) GetByEmailWithRole(ctx context.Context, email string) (*StaffWithRole, error) {
	// One statement, one snapshot: staff, role, and the role's grant set
	// cannot be observed in a torn state under concurrent role edits.
	row := r.pool.QueryRow(ctx, `
		SELECT s.id, s.first_name, s.last_name, s.email, s.contact_number,
		       s.hashed_password, s.role_id, s.created_at, s.updated_at,
		       r.name,
		       COALESCE(array_agg(p.name ORDER BY p.name) FILTER (WHERE p.name IS NOT NULL), '{}')
		FROM staff s
		LEFT JOIN roles r ON r.id = s.role_id
		LEFT JOIN role_grants g ON g.role_id = r.id
		LEFT JOIN permissions p ON p.id = g.permission_id
		WHERE s.email = $1
		GROUP BY s.id, r.name`, email)

	sw := &StaffWithRole{}
	err := row.Scan(
		&sw.ID, &sw.FirstName, &sw.LastName, &sw.Email, &sw.ContactNumber,
		&sw.HashedPassword, &sw.RoleID, &sw.CreatedAt, &sw.UpdatedAt,
		&sw.RoleName, &sw.Permissions,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return sw, nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Staff, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM staff`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+staffColumns+` FROM staff ORDER BY last_name, first_name LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var members []*Staff
	for rows.Next() {
		s := &Staff{}
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.ContactNumber,
			&s.HashedPassword, &s.RoleID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, err
		}
		members = append(members, s)
	}
	return members, total, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, s *Staff) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE staff SET
			first_name = $2, last_name = $3, email = $4, contact_number = $5,
			hashed_password = $6, role_id = $7, updated_at = NOW()
		WHERE id = $1`,
		s.ID, s.FirstName, s.LastName, s.Email, s.ContactNumber, s.HashedPassword, s.RoleID,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateStaff
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStaffNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM staff WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStaffNotFound
	}
	return nil
}

func scanStaff(row pgx.Row) (*Staff, error) {
	s := &Staff{}
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.ContactNumber,
		&s.HashedPassword, &s.RoleID, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrStaffNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
