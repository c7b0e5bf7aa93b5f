package profile

import "context"

// Repository is the data access contract for the profile document.
type Repository interface {
	// Find returns the profile, or ErrProfileNotFound before first save.
	Find(ctx context.Context) (*Profile, error)

	// Upsert inserts the single row or replaces the existing one.
	Upsert(ctx context.Context, p *Profile) error
}
