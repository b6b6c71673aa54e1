package record

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type recordRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &recordRepoPG{pool: pool}
}

const recCols = `id, owner_id, recorded_on, recorded_at, kind,
	drainage_left, drainage_right, systolic, diastolic, pulse,
	glucose_level, oxygen_saturation, temperature, note, created_at`

const recOrder = ` ORDER BY recorded_on DESC, recorded_at DESC, id DESC`

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	err := row.Scan(&rec.ID, &rec.OwnerID, &rec.RecordedOn, &rec.RecordedAt, &rec.Kind,
		&rec.DrainageLeft, &rec.DrainageRight, &rec.Systolic, &rec.Diastolic, &rec.Pulse,
		&rec.GlucoseLevel, &rec.OxygenSaturation, &rec.Temperature, &rec.Note, &rec.CreatedAt)
	return &rec, err
}

func (r *recordRepoPG) Create(ctx context.Context, rec *Record) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO measurements (owner_id, recorded_on, recorded_at, kind,
			drainage_left, drainage_right, systolic, diastolic, pulse,
			glucose_level, oxygen_saturation, temperature, note)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
		RETURNING id, created_at`,
		rec.OwnerID, rec.RecordedOn, rec.RecordedAt, rec.Kind,
		rec.DrainageLeft, rec.DrainageRight, rec.Systolic, rec.Diastolic, rec.Pulse,
		rec.GlucoseLevel, rec.OxygenSaturation, rec.Temperature, rec.Note,
	).Scan(&rec.ID, &rec.CreatedAt)
}

// filterClause builds the WHERE tail for the given filter, starting argument
// numbering after the owner placeholder ($1).
func filterClause(f Filter) (string, []interface{}) {
	clause := ""
	var args []interface{}
	idx := 2
	if f.Since != nil {
		clause += fmt.Sprintf(` AND recorded_on >= $%d`, idx)
		args = append(args, *f.Since)
		idx++
	}
	if f.Kind != nil {
		clause += fmt.Sprintf(` AND kind = $%d`, idx)
		args = append(args, *f.Kind)
		idx++
	}
	return clause, args
}

func (r *recordRepoPG) List(ctx context.Context, owner uuid.UUID, f Filter, limit, offset int) ([]*Record, int, error) {
	clause, args := filterClause(f)
	args = append([]interface{}{owner}, args...)

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM measurements WHERE owner_id = $1`+clause, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + recCols + ` FROM measurements WHERE owner_id = $1` + clause + recOrder +
		fmt.Sprintf(` LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *recordRepoPG) ListAll(ctx context.Context, owner uuid.UUID, f Filter) ([]*Record, error) {
	clause, args := filterClause(f)
	args = append([]interface{}{owner}, args...)

	rows, err := r.pool.Query(ctx, `SELECT `+recCols+` FROM measurements WHERE owner_id = $1`+clause+recOrder, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *recordRepoPG) Delete(ctx context.Context, id int64, owner uuid.UUID) error {
	// Owner scoping in the WHERE clause makes a foreign id indistinguishable
	// from a missing one: zero rows affected, no error.
	_, err := r.pool.Exec(ctx, `DELETE FROM measurements WHERE id = $1 AND owner_id = $2`, id, owner)
	return err
}
