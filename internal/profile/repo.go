package profile

import "context"

// Repo persists the singleton profile document.
type Repo interface {
	Get(ctx context.Context) (Profile, error)
	Upsert(ctx context.Context, p Profile) (Profile, error)
}
