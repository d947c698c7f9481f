package projects

import "context"

// Repo defines persistence operations for projects.
type Repo interface {
	// List returns projects newest-first, optionally filtered by category.
	// An empty category (or "All") returns everything.
	List(ctx context.Context, category string) ([]Project, error)
	Create(ctx context.Context, p Project) error
	// Update replaces a project by id, returning ErrNotFound on a miss.
	Update(ctx context.Context, p Project) (Project, error)
	// Delete removes a project; unknown ids are a no-op.
	Delete(ctx context.Context, id string) error
}
