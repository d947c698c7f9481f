package profile

import (
	"context"
	"errors"
	"time"
)

// Service contains business logic for the profile document.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Get returns the stored profile.
func (s *Service) Get(ctx context.Context) (Profile, error) {
	return s.Repo.Get(ctx)
}

// Update upserts the profile document.
func (s *Service) Update(ctx context.Context, p Profile) (Profile, error) {
	p.UpdatedAt = time.Now().UTC()
	return s.Repo.Upsert(ctx, p)
}

// ProfileName returns the configured owner name, empty when unset. Used by
// the resume download path for filename derivation.
func (s *Service) ProfileName(ctx context.Context) (string, error) {
	p, err := s.Repo.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return p.Name, nil
}
