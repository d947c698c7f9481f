package projects

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for projects.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns projects newest-first, optionally filtered by category.
func (s *Service) List(ctx context.Context, category string) ([]Project, error) {
	return s.Repo.List(ctx, category)
}

// Save inserts the project when it has no id, otherwise updates the
// existing record.
func (s *Service) Save(ctx context.Context, p Project) (Project, error) {
	if strings.TrimSpace(p.Title) == "" {
		return Project{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if p.TechStack == nil {
		p.TechStack = []string{}
	}

	if strings.TrimSpace(p.ID) == "" {
		p.ID = uuid.NewString()
		p.CreatedAt = time.Now().UTC()
		if err := s.Repo.Create(ctx, p); err != nil {
			return Project{}, err
		}
		return p, nil
	}
	return s.Repo.Update(ctx, p)
}

// Delete removes a project; unknown ids succeed.
func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, id)
}
