package profile

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines storage for per-owner profiles.
type Repository interface {
	// Upsert inserts the profile or replaces the existing one, keyed by owner.
	Upsert(ctx context.Context, p *Profile) error
	// Get returns the owner's profile, or (nil, nil) when none exists.
	// Absence is not an error.
	Get(ctx context.Context, owner uuid.UUID) (*Profile, error)
}
