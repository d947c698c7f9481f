package codingprofiles

import "context"

// Repo persists the coding-profile collection. The client always submits
// the full set, so writes are replace-all.
type Repo interface {
	List(ctx context.Context) ([]CodingProfile, error)
	// Replace deletes every profile and inserts the given set as one
	// atomic unit.
	Replace(ctx context.Context, profiles []CodingProfile) error
}
