package record

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Filter narrows a listing to records on or after Since and/or of one Kind.
type Filter struct {
	Since *time.Time
	Kind  *Kind
}

// Repository defines owner-scoped storage for measurement records. Records
// are immutable once created; the only mutation is deletion by the owner.
type Repository interface {
	Create(ctx context.Context, rec *Record) error
	List(ctx context.Context, owner uuid.UUID, f Filter, limit, offset int) ([]*Record, int, error)
	ListAll(ctx context.Context, owner uuid.UUID, f Filter) ([]*Record, error)
	// Delete removes the record only if it belongs to owner. A missing or
	// foreign id is a no-op, not an error.
	Delete(ctx context.Context, id int64, owner uuid.UUID) error
}
