package education

import (
	"context"
	"errors"
	"time"
)

// Service contains business logic for the education document.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Get returns the stored document, or the empty default when unset.
func (s *Service) Get(ctx context.Context) (Education, error) {
	e, err := s.Repo.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Empty(), nil
		}
		return Education{}, err
	}
	return e, nil
}

// Update upserts the education document.
func (s *Service) Update(ctx context.Context, e Education) (Education, error) {
	e.UpdatedAt = time.Now().UTC()
	return s.Repo.Upsert(ctx, e)
}
