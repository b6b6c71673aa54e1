package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Account maps to the accounts table. The password hash never leaves the
// server.
type Account struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

var (
	// ErrDuplicateAccount is returned when the username is already taken.
	ErrDuplicateAccount = errors.New("account already exists")
	// ErrNotFound is returned when no account matches the lookup.
	ErrNotFound = errors.New("account not found")
	// ErrInvalidCredentials is returned on a failed login. It deliberately
	// does not distinguish an unknown user from a wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")
)
