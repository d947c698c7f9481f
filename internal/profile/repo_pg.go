package profile

import (
	"context"
	"database/sql"
	"errors"
)

// singletonID keys the one profile row.
const singletonID = "profile"

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Get returns the profile row.
func (r *PGRepo) Get(ctx context.Context) (Profile, error) {
	const query = `
SELECT id, name, role, email, location, bio, avatar_url, github_url, linkedin_url, updated_at
FROM profile
WHERE id = $1`
	var p Profile
	err := r.DB.QueryRowContext(ctx, query, singletonID).Scan(
		&p.ID,
		&p.Name,
		&p.Role,
		&p.Email,
		&p.Location,
		&p.Bio,
		&p.AvatarURL,
		&p.GithubURL,
		&p.LinkedinURL,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	return p, nil
}

// Upsert inserts or replaces the profile row.
func (r *PGRepo) Upsert(ctx context.Context, p Profile) (Profile, error) {
	const query = `
INSERT INTO profile (id, name, role, email, location, bio, avatar_url, github_url, linkedin_url, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    role = EXCLUDED.role,
    email = EXCLUDED.email,
    location = EXCLUDED.location,
    bio = EXCLUDED.bio,
    avatar_url = EXCLUDED.avatar_url,
    github_url = EXCLUDED.github_url,
    linkedin_url = EXCLUDED.linkedin_url,
    updated_at = EXCLUDED.updated_at`

	p.ID = singletonID
	_, err := r.DB.ExecContext(ctx, query,
		p.ID, p.Name, p.Role, p.Email, p.Location, p.Bio, p.AvatarURL, p.GithubURL, p.LinkedinURL, p.UpdatedAt)
	if err != nil {
		return Profile{}, err
	}
	return p, nil
}

var _ Repo = (*PGRepo)(nil)
