package profile

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	cur  Profile
	seen bool
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Get returns the stored profile.
func (r *MemoryRepo) Get(ctx context.Context) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.seen {
		return Profile{}, ErrNotFound
	}
	return r.cur, nil
}

// Upsert replaces the stored profile.
func (r *MemoryRepo) Upsert(ctx context.Context, p Profile) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cur = p
	r.seen = true
	return p, nil
}

var _ Repo = (*MemoryRepo)(nil)
