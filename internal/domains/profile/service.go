package profile

import "context"

// Service is the business logic contract for the author profile.
type Service interface {
	Get(ctx context.Context) (*Profile, error)
	Upsert(ctx context.Context, req *UpsertProfileRequest) (*Profile, error)
}
