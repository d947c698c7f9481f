package education

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	cur  Education
	seen bool
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Get returns the stored document.
func (r *MemoryRepo) Get(ctx context.Context) (Education, error) {
	if err := ctx.Err(); err != nil {
		return Education{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.seen {
		return Education{}, ErrNotFound
	}
	return r.cur, nil
}

// Upsert replaces the stored document.
func (r *MemoryRepo) Upsert(ctx context.Context, e Education) (Education, error) {
	if err := ctx.Err(); err != nil {
		return Education{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cur = e
	r.seen = true
	return e, nil
}

var _ Repo = (*MemoryRepo)(nil)
