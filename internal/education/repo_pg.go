package education

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

const singletonID = "education"

// PGRepo implements Repo using Postgres. Academic entries live in a JSONB
// column; the document is small and always read whole.
type PGRepo struct {
	DB *sql.DB
}

// Get returns the education row.
func (r *PGRepo) Get(ctx context.Context) (Education, error) {
	const query = `
SELECT id, core_objective, academic, updated_at
FROM education
WHERE id = $1`
	var e Education
	var academicRaw []byte
	err := r.DB.QueryRowContext(ctx, query, singletonID).Scan(
		&e.ID,
		&e.CoreObjective,
		&academicRaw,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Education{}, ErrNotFound
		}
		return Education{}, err
	}
	if err := json.Unmarshal(academicRaw, &e.Academic); err != nil {
		return Education{}, err
	}
	return e, nil
}

// Upsert inserts or replaces the education row.
func (r *PGRepo) Upsert(ctx context.Context, e Education) (Education, error) {
	const query = `
INSERT INTO education (id, core_objective, academic, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET
    core_objective = EXCLUDED.core_objective,
    academic = EXCLUDED.academic,
    updated_at = EXCLUDED.updated_at`

	e.ID = singletonID
	if e.Academic == nil {
		e.Academic = []AcademicEntry{}
	}
	academicRaw, err := json.Marshal(e.Academic)
	if err != nil {
		return Education{}, err
	}
	if _, err := r.DB.ExecContext(ctx, query, e.ID, e.CoreObjective, academicRaw, e.UpdatedAt); err != nil {
		return Education{}, err
	}
	return e, nil
}

var _ Repo = (*PGRepo)(nil)
