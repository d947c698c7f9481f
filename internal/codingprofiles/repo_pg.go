package codingprofiles

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// List returns all profiles.
func (r *PGRepo) List(ctx context.Context) ([]CodingProfile, error) {
	const query = `
SELECT id, platform, url, icon, color
FROM coding_profiles
ORDER BY platform`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []CodingProfile
	for rows.Next() {
		var p CodingProfile
		if err := rows.Scan(&p.ID, &p.Platform, &p.URL, &p.Icon, &p.Color); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Replace deletes everything and inserts the given set in one transaction.
func (r *PGRepo) Replace(ctx context.Context, profiles []CodingProfile) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM coding_profiles`); err != nil {
		return err
	}
	const insert = `
INSERT INTO coding_profiles (id, platform, url, icon, color)
VALUES ($1, $2, $3, $4, $5)`
	for _, p := range profiles {
		if _, err := tx.ExecContext(ctx, insert, p.ID, p.Platform, p.URL, p.Icon, p.Color); err != nil {
			return err
		}
	}
	return tx.Commit()
}

var _ Repo = (*PGRepo)(nil)
