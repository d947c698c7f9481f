package skills

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service contains business logic for skill groups.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns all groups.
func (s *Service) List(ctx context.Context) ([]SkillGroup, error) {
	return s.Repo.List(ctx)
}

// Create validates and stores a new group.
func (s *Service) Create(ctx context.Context, g SkillGroup) (SkillGroup, error) {
	if strings.TrimSpace(g.Title) == "" {
		return SkillGroup{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	g.ID = uuid.NewString()
	g.CreatedAt = time.Now().UTC()
	if g.Skills == nil {
		g.Skills = []string{}
	}
	if err := s.Repo.Create(ctx, g); err != nil {
		return SkillGroup{}, err
	}
	return g, nil
}

// Update replaces the group matched by id or title.
func (s *Service) Update(ctx context.Context, key string, g SkillGroup) (SkillGroup, error) {
	if strings.TrimSpace(key) == "" {
		return SkillGroup{}, fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(g.Title) == "" {
		return SkillGroup{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if g.Skills == nil {
		g.Skills = []string{}
	}
	return s.Repo.Update(ctx, key, g)
}

// Delete removes the group matched by id or title; misses succeed.
func (s *Service) Delete(ctx context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}
	return s.Repo.Delete(ctx, key)
}
