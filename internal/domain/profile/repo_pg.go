package profile

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type profileRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &profileRepoPG{pool: pool}
}

func (r *profileRepoPG) Upsert(ctx context.Context, p *Profile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (owner_id, full_name, age, sex, weight, physician_name, insurer, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			age = EXCLUDED.age,
			sex = EXCLUDED.sex,
			weight = EXCLUDED.weight,
			physician_name = EXCLUDED.physician_name,
			insurer = EXCLUDED.insurer,
			updated_at = NOW()`,
		p.OwnerID, p.FullName, p.Age, p.Sex, p.Weight, p.PhysicianName, p.Insurer)
	return err
}

func (r *profileRepoPG) Get(ctx context.Context, owner uuid.UUID) (*Profile, error) {
	var p Profile
	err := r.pool.QueryRow(ctx, `
		SELECT owner_id, full_name, age, sex, weight, physician_name, insurer, updated_at
		FROM profiles WHERE owner_id = $1`, owner).
		Scan(&p.OwnerID, &p.FullName, &p.Age, &p.Sex, &p.Weight, &p.PhysicianName, &p.Insurer, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
