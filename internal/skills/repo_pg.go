package skills

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

// List returns all groups, oldest first.
func (r *PGRepo) List(ctx context.Context) ([]SkillGroup, error) {
	const query = `
SELECT id, title, skills, created_at
FROM skill_groups
ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SkillGroup
	for rows.Next() {
		var g SkillGroup
		var skillsRaw []byte
		if err := rows.Scan(&g.ID, &g.Title, &skillsRaw, &g.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(skillsRaw, &g.Skills); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Create inserts a new group.
func (r *PGRepo) Create(ctx context.Context, g SkillGroup) error {
	const query = `
INSERT INTO skill_groups (id, title, skills, created_at)
VALUES ($1, $2, $3, $4)`

	skillsRaw, err := marshalSkills(g.Skills)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query, g.ID, g.Title, skillsRaw, g.CreatedAt)
	return err
}

// Update replaces the group matched by id or case-insensitive title.
func (r *PGRepo) Update(ctx context.Context, key string, g SkillGroup) (SkillGroup, error) {
	const query = `
UPDATE skill_groups
SET title = $2, skills = $3
WHERE id = $1 OR LOWER(title) = LOWER($1)
RETURNING id, created_at`

	skillsRaw, err := marshalSkills(g.Skills)
	if err != nil {
		return SkillGroup{}, err
	}
	err = r.DB.QueryRowContext(ctx, query, key, g.Title, skillsRaw).Scan(&g.ID, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SkillGroup{}, ErrNotFound
		}
		return SkillGroup{}, err
	}
	return g, nil
}

// Delete removes the group matched by id or title; misses are a no-op.
func (r *PGRepo) Delete(ctx context.Context, key string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM skill_groups WHERE id = $1 OR LOWER(title) = LOWER($1)`, key)
	return err
}

func marshalSkills(skills []string) ([]byte, error) {
	if skills == nil {
		skills = []string{}
	}
	return json.Marshal(skills)
}

var _ Repo = (*PGRepo)(nil)
