package projects

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// List returns projects newest-first, optionally filtered by category.
func (r *PGRepo) List(ctx context.Context, category string) ([]Project, error) {
	query := `
SELECT id, title, description, category, tech_stack, github_url, live_url, created_at
FROM projects`
	var args []any
	if category != "" && category != "All" {
		query += `
WHERE category = $1`
		args = append(args, category)
	}
	query += `
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Project
	for rows.Next() {
		var p Project
		var techRaw []byte
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.Category,
			&techRaw,
			&p.GithubURL,
			&p.LiveURL,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(techRaw, &p.TechStack); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create inserts a new project.
func (r *PGRepo) Create(ctx context.Context, p Project) error {
	const query = `
INSERT INTO projects (id, title, description, category, tech_stack, github_url, live_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	techRaw, err := marshalTechStack(p.TechStack)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Description, p.Category, techRaw, p.GithubURL, p.LiveURL, p.CreatedAt)
	return err
}

// Update replaces a project by id, keeping its original creation time.
func (r *PGRepo) Update(ctx context.Context, p Project) (Project, error) {
	const query = `
UPDATE projects
SET title = $2, description = $3, category = $4, tech_stack = $5, github_url = $6, live_url = $7
WHERE id = $1
RETURNING created_at`

	techRaw, err := marshalTechStack(p.TechStack)
	if err != nil {
		return Project{}, err
	}
	err = r.DB.QueryRowContext(ctx, query,
		p.ID, p.Title, p.Description, p.Category, techRaw, p.GithubURL, p.LiveURL).Scan(&p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return p, nil
}

// Delete removes a project; deleting an unknown id is not an error.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM projects WHERE id = $1`, id)
	return err
}

func marshalTechStack(stack []string) ([]byte, error) {
	if stack == nil {
		stack = []string{}
	}
	return json.Marshal(stack)
}

var _ Repo = (*PGRepo)(nil)
