package skills

import "context"

// Repo defines persistence operations for skill groups. The admin UI
// addresses groups by id, but legacy clients used the title, so lookups
// accept either: an exact id match first, then a case-insensitive title.
type Repo interface {
	List(ctx context.Context) ([]SkillGroup, error)
	Create(ctx context.Context, g SkillGroup) error
	// Update replaces the group matched by id or title, returning
	// ErrNotFound on a miss.
	Update(ctx context.Context, key string, g SkillGroup) (SkillGroup, error)
	// Delete removes the group matched by id or title; misses are a no-op.
	Delete(ctx context.Context, key string) error
}
