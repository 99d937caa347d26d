package pharmacy

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// -- Medicine Repository --

type medicineRepoPG struct {
	pool *pgxpool.Pool
}

func NewMedicineRepo(pool *pgxpool.Pool) MedicineRepository {
	return &medicineRepoPG{pool: pool}
}

const medicineColumns = `id, name, manufacturer, stock_quantity, unit_price, created_at, updated_at`

func (r *medicineRepoPG) Create(ctx context.Context, m *Medicine) error {
	m.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO medicines (id, name, manufacturer, stock_quantity, unit_price)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.Name, m.Manufacturer, m.StockQuantity, m.UnitPrice,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateMedicine
	}
	return err
}

func (r *medicineRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return scanMedicine(r.pool.QueryRow(ctx,
		`SELECT `+medicineColumns+` FROM medicines WHERE id = $1`, id))
}

func (r *medicineRepoPG) List(ctx context.Context, limit, offset int) ([]*Medicine, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM medicines`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+medicineColumns+` FROM medicines ORDER BY name LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var medicines []*Medicine
	for rows.Next() {
		m := &Medicine{}
		if err := rows.Scan(&m.ID, &m.Name, &m.Manufacturer, &m.StockQuantity,
			&m.UnitPrice, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, 0, err
		}
		medicines = append(medicines, m)
	}
	return medicines, total, rows.Err()
}

func (r *medicineRepoPG) Update(ctx context.Context, m *Medicine) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE medicines SET name = $2, manufacturer = $3, unit_price = $4, updated_at = NOW()
		WHERE id = $1`,
		m.ID, m.Name, m.Manufacturer, m.UnitPrice,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateMedicine
	}
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMedicineNotFound
	}
	return nil
}

func (r *medicineRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMedicineNotFound
	}
	return nil
}

func (r *medicineRepoPG) Restock(ctx context.Context, id uuid.UUID, quantity int) (*Medicine, error) {
	// Single-statement increment: no read-modify-write window.
	return scanMedicine(r.pool.QueryRow(ctx, `
		UPDATE medicines SET stock_quantity = stock_quantity + $2, updated_at = NOW()
		WHERE id = $1
		RETURNING `+medicineColumns, id, quantity))
}

func scanMedicine(row pgx.Row) (*Medicine, error) {
	m := &Medicine{}
	err := row.Scan(&m.ID, &m.Name, &m.Manufacturer, &m.StockQuantity,
		&m.UnitPrice, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrMedicineNotFound
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// -- Dispensation Repository --

type dispensationRepoPG struct {
	pool *pgxpool.Pool
}

func NewDispensationRepo(pool *pgxpool.Pool) DispensationRepository {
	return &dispensationRepoPG{pool: pool}
}

func (r *dispensationRepoPG) Dispense(ctx context.Context, d *Dispensation) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	// Row lock serializes concurrent dispensations of the same medicine; the
	// stock check below is therefore never made against a stale value.
	var stock int
	err = tx.QueryRow(ctx,
		`SELECT stock_quantity FROM medicines WHERE id = $1 FOR UPDATE`,
		d.MedicineID,
	).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrMedicineNotFound
	}
	if err != nil {
		return err
	}

	if stock < d.QuantityDispensed {
		return ErrInsufficientStock
	}

	if _, err := tx.Exec(ctx, `
		UPDATE medicines SET stock_quantity = stock_quantity - $2, updated_at = NOW()
		WHERE id = $1`,
		d.MedicineID, d.QuantityDispensed,
	); err != nil {
		return err
	}

	d.ID = uuid.New()
	if err := tx.QueryRow(ctx, `
		INSERT INTO dispensations (id, patient_id, medicine_id, staff_id, quantity_dispensed, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING date_dispensed`,
		d.ID, d.PatientID, d.MedicineID, d.StaffID, d.QuantityDispensed, d.Notes,
	).Scan(&d.DateDispensed); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *dispensationRepoPG) List(ctx context.Context, limit, offset int) ([]*Dispensation, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM dispensations`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, patient_id, medicine_id, staff_id, quantity_dispensed, date_dispensed, notes
		FROM dispensations ORDER BY date_dispensed DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []*Dispensation
	for rows.Next() {
		d := &Dispensation{}
		if err := rows.Scan(&d.ID, &d.PatientID, &d.MedicineID, &d.StaffID,
			&d.QuantityDispensed, &d.DateDispensed, &d.Notes); err != nil {
			return nil, 0, err
		}
		records = append(records, d)
	}
	return records, total, rows.Err()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
