package resumes

import "context"

// Repo defines persistence operations for resumes. Implementations must
// keep the at-most-one-active invariant: Create with activate and Activate
// perform their clear-then-set as one atomic unit, so no List ever
// observes two active rows.
type Repo interface {
	// List returns all resumes ordered by upload time, newest first.
	List(ctx context.Context) ([]Resume, error)
	// Create inserts a new resume. When activate is set, every existing
	// active flag is cleared in the same unit.
	Create(ctx context.Context, r Resume, activate bool) error
	// Activate clears all active flags and sets the one matching id,
	// returning the updated record. An unknown id returns ErrNotFound and
	// leaves prior flags untouched.
	Activate(ctx context.Context, id string) (Resume, error)
	// Delete removes the resume with the given id. Unknown ids are a no-op.
	Delete(ctx context.Context, id string) error
	// GetActive returns the resume flagged active, or ErrNotFound.
	GetActive(ctx context.Context) (Resume, error)
	// GetLatest returns the most recently uploaded resume, or ErrNotFound
	// when the collection is empty.
	GetLatest(ctx context.Context) (Resume, error)
}
