package skills

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]SkillGroup
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]SkillGroup)}
}

// List returns all groups, oldest first.
func (r *MemoryRepo) List(ctx context.Context) ([]SkillGroup, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]SkillGroup, 0, len(r.data))
	for _, g := range r.data {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Create stores a new group.
func (r *MemoryRepo) Create(ctx context.Context, g SkillGroup) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[g.ID] = g
	return nil
}

// Update replaces the group matched by id or title.
func (r *MemoryRepo) Update(ctx context.Context, key string, g SkillGroup) (SkillGroup, error) {
	if err := ctx.Err(); err != nil {
		return SkillGroup{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.findLocked(key)
	if !ok {
		return SkillGroup{}, ErrNotFound
	}
	g.ID = existing.ID
	g.CreatedAt = existing.CreatedAt
	r.data[g.ID] = g
	return g, nil
}

// Delete removes the group matched by id or title; misses are a no-op.
func (r *MemoryRepo) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.findLocked(key); ok {
		delete(r.data, existing.ID)
	}
	return nil
}

func (r *MemoryRepo) findLocked(key string) (SkillGroup, bool) {
	if g, ok := r.data[key]; ok {
		return g, true
	}
	for _, g := range r.data {
		if strings.EqualFold(g.Title, key) {
			return g, true
		}
	}
	return SkillGroup{}, false
}

var _ Repo = (*MemoryRepo)(nil)
