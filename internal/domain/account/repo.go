package account

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines storage for user accounts.
type Repository interface {
	// Create inserts a new account. Returns ErrDuplicateAccount when the
	// username is already taken.
	Create(ctx context.Context, a *Account) error
	// GetByUsername returns the account or ErrNotFound.
	GetByUsername(ctx context.Context, username string) (*Account, error)
	// GetByID returns the account or ErrNotFound.
	GetByID(ctx context.Context, id uuid.UUID) (*Account, error)
}
