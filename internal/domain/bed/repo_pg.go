package bed

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

const bedColumns = `id, bed_number, room_number, is_occupied, patient_id, created_at, updated_at`

func (r *repoPG) Create(ctx context.Context, b *Bed) error {
	b.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO beds (id, bed_number, room_number, is_occupied, patient_id)
		VALUES ($1, $2, $3, $4, $5)`,
		b.ID, b.BedNumber, b.RoomNumber, b.IsOccupied, b.PatientID,
	)
	return mapBedError(err)
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Bed, error) {
	b := &Bed{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+bedColumns+` FROM beds WHERE id = $1`, id,
	).Scan(&b.ID, &b.BedNumber, &b.RoomNumber, &b.IsOccupied,
		&b.PatientID, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrBedNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Bed, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM beds`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+bedColumns+` FROM beds ORDER BY room_number, bed_number LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var beds []*Bed
	for rows.Next() {
		b := &Bed{}
		if err := rows.Scan(&b.ID, &b.BedNumber, &b.RoomNumber, &b.IsOccupied,
			&b.PatientID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, 0, err
		}
		beds = append(beds, b)
	}
	return beds, total, rows.Err()
}

func (r *repoPG) Update(ctx context.Context, b *Bed) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE beds SET is_occupied = $2, patient_id = $3, updated_at = NOW()
		WHERE id = $1`,
		b.ID, b.IsOccupied, b.PatientID,
	)
	if err != nil {
		return mapBedError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrBedNotFound
	}
	return nil
}

func (r *repoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM beds WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrBedNotFound
	}
	return nil
}

func mapBedError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505":
		return ErrBedConflict
	case "23503":
		return ErrPatientNotFound
	}
	return err
}
