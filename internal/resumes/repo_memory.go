package resumes

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. All mutations happen
// under one lock, so clear-then-set is trivially atomic.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Resume)}
}

// List returns all resumes, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Resume, 0, len(r.data))
	for _, item := range r.data {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

// Create inserts a resume, clearing existing active flags when activate is set.
func (r *MemoryRepo) Create(ctx context.Context, res Resume, activate bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if activate {
		r.clearActiveLocked()
		res.IsActive = true
	}
	r.data[res.ID] = res
	return nil
}

// Activate clears all flags and sets the matching record. Unknown ids
// leave the previous state intact.
func (r *MemoryRepo) Activate(ctx context.Context, id string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	target, ok := r.data[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	r.clearActiveLocked()
	target.IsActive = true
	r.data[id] = target
	return target, nil
}

// Delete removes a resume; unknown ids are a no-op.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, id)
	return nil
}

// GetActive returns the resume flagged active.
func (r *MemoryRepo) GetActive(ctx context.Context) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.data {
		if item.IsActive {
			return item, nil
		}
	}
	return Resume{}, ErrNotFound
}

// GetLatest returns the most recently uploaded resume.
func (r *MemoryRepo) GetLatest(ctx context.Context) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var latest Resume
	found := false
	for _, item := range r.data {
		if !found || item.UploadedAt.After(latest.UploadedAt) {
			latest = item
			found = true
		}
	}
	if !found {
		return Resume{}, ErrNotFound
	}
	return latest, nil
}

func (r *MemoryRepo) clearActiveLocked() {
	for id, item := range r.data {
		if item.IsActive {
			item.IsActive = false
			r.data[id] = item
		}
	}
}

var _ Repo = (*MemoryRepo)(nil)
