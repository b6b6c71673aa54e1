package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service provides business logic for the Profile Store.
type Service struct {
	profiles Repository
}

// NewService creates a new Profile Store service.
func NewService(profiles Repository) *Service {
	return &Service{profiles: profiles}
}

// Upsert saves the owner's profile, inserting on first save and replacing
// afterwards.
func (s *Service) Upsert(ctx context.Context, p *Profile) error {
	if p.OwnerID == uuid.Nil {
		return fmt.Errorf("owner_id is required")
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > 150) {
		return fmt.Errorf("age must be between 0 and 150")
	}
	if p.Weight != nil && *p.Weight <= 0 {
		return fmt.Errorf("weight must be positive")
	}
	return s.profiles.Upsert(ctx, p)
}

// Get returns the owner's profile, or (nil, nil) when none exists.
func (s *Service) Get(ctx context.Context, owner uuid.UUID) (*Profile, error) {
	return s.profiles.Get(ctx, owner)
}
