package resumes

import (
	"context"
	"database/sql"
	"errors"
)

const resumeColumns = "id, file_name, file_data, is_active, size_bytes, page_count, uploaded_at"

// PGRepo implements Repo using Postgres. The clear-then-set sequences run
// inside transactions, and a partial unique index on is_active backs the
// invariant at the storage level.
type PGRepo struct {
	DB *sql.DB
}

// List returns all resumes ordered newest-first.
func (r *PGRepo) List(ctx context.Context) ([]Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
ORDER BY uploaded_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var res Resume
		if err := scanResume(rows, &res); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Create inserts a resume. When activate is set, existing active flags are
// cleared in the same transaction so no reader sees two active rows.
func (r *PGRepo) Create(ctx context.Context, res Resume, activate bool) error {
	const insert = `
INSERT INTO resumes (id, file_name, file_data, is_active, size_bytes, page_count, uploaded_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	if !activate {
		_, err := r.DB.ExecContext(ctx, insert,
			res.ID, res.FileName, res.FileData, false, res.SizeBytes, res.PageCount, res.UploadedAt)
		return err
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE resumes SET is_active = FALSE WHERE is_active`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, insert,
		res.ID, res.FileName, res.FileData, true, res.SizeBytes, res.PageCount, res.UploadedAt); err != nil {
		return err
	}
	return tx.Commit()
}

// Activate clears all active flags and sets the matching row. An unknown
// id rolls the transaction back, leaving the previous active flag intact.
func (r *PGRepo) Activate(ctx context.Context, id string) (Resume, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return Resume{}, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE resumes SET is_active = FALSE WHERE is_active`); err != nil {
		return Resume{}, err
	}

	const setActive = `
UPDATE resumes
SET is_active = TRUE
WHERE id = $1
RETURNING ` + resumeColumns

	var res Resume
	if err := scanResume(tx.QueryRowContext(ctx, setActive, id), &res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	if err := tx.Commit(); err != nil {
		return Resume{}, err
	}
	return res, nil
}

// Delete removes a resume; deleting an unknown id is not an error.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	return err
}

// GetActive returns the resume flagged active.
func (r *PGRepo) GetActive(ctx context.Context) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE is_active
LIMIT 1`
	return r.getOne(ctx, query)
}

// GetLatest returns the most recently uploaded resume.
func (r *PGRepo) GetLatest(ctx context.Context) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
ORDER BY uploaded_at DESC
LIMIT 1`
	return r.getOne(ctx, query)
}

func (r *PGRepo) getOne(ctx context.Context, query string) (Resume, error) {
	var res Resume
	if err := scanResume(r.DB.QueryRowContext(ctx, query), &res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner, res *Resume) error {
	return row.Scan(
		&res.ID,
		&res.FileName,
		&res.FileData,
		&res.IsActive,
		&res.SizeBytes,
		&res.PageCount,
		&res.UploadedAt,
	)
}

var _ Repo = (*PGRepo)(nil)
