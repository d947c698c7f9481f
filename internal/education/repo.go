package education

import "context"

// Repo persists the singleton education document.
type Repo interface {
	Get(ctx context.Context) (Education, error)
	Upsert(ctx context.Context, e Education) (Education, error)
}
