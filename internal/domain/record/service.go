package record

import (
	"context"

	"github.com/google/uuid"
)

// Service provides business logic for the measurement Record Store.
type Service struct {
	records Repository
}

// NewService creates a new Record Store service.
func NewService(records Repository) *Service {
	return &Service{records: records}
}

// Append validates the input for its kind and persists a new record. A
// ValidationError means nothing was stored.
func (s *Service) Append(ctx context.Context, owner uuid.UUID, in Input) (*Record, error) {
	rec, err := in.Normalize(owner)
	if err != nil {
		return nil, err
	}
	if err := s.records.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns the owner's records, newest first, optionally filtered.
func (s *Service) List(ctx context.Context, owner uuid.UUID, f Filter, limit, offset int) ([]*Record, int, error) {
	return s.records.List(ctx, owner, f, limit, offset)
}

// Delete removes the owner's record. Missing or foreign ids are silently
// ignored so callers cannot probe other owners' data.
func (s *Service) Delete(ctx context.Context, owner uuid.UUID, id int64) error {
	return s.records.Delete(ctx, id, owner)
}
