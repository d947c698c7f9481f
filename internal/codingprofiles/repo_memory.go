package codingprofiles

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data []CodingProfile
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// List returns all profiles in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]CodingProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]CodingProfile, len(r.data))
	copy(out, r.data)
	return out, nil
}

// Replace swaps the whole collection.
func (r *MemoryRepo) Replace(ctx context.Context, profiles []CodingProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = make([]CodingProfile, len(profiles))
	copy(r.data, profiles)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
