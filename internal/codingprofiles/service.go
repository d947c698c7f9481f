package codingprofiles

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Service contains business logic for coding profiles.
type Service struct {
	Repo Repo
}

// NewService constructs a Service.
func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// List returns all profiles.
func (s *Service) List(ctx context.Context) ([]CodingProfile, error) {
	return s.Repo.List(ctx)
}

// Sync replaces the whole collection with the submitted set. Incoming ids
// are discarded; each entry gets a fresh one.
func (s *Service) Sync(ctx context.Context, profiles []CodingProfile) ([]CodingProfile, error) {
	cleaned := make([]CodingProfile, 0, len(profiles))
	for _, p := range profiles {
		if strings.TrimSpace(p.Platform) == "" || strings.TrimSpace(p.URL) == "" {
			return nil, fmt.Errorf("%w: platform and url are required", ErrInvalidInput)
		}
		p.ID = uuid.NewString()
		if p.Icon == "" {
			p.Icon = "code"
		}
		if p.Color == "" {
			p.Color = "blue"
		}
		cleaned = append(cleaned, p)
	}
	if err := s.Repo.Replace(ctx, cleaned); err != nil {
		return nil, err
	}
	return cleaned, nil
}
