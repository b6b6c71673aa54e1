package account

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vitalog/vitalog/internal/platform/auth"
)

// Service provides registration and authentication for user accounts.
type Service struct {
	accounts   Repository
	bcryptCost int
}

// NewService creates a new account service. bcryptCost of 0 uses the
// library default.
func NewService(accounts Repository, bcryptCost int) *Service {
	return &Service{accounts: accounts, bcryptCost: bcryptCost}
}

// Register creates a new account with a salted password hash. Returns
// ErrDuplicateAccount when the username is taken.
func (s *Service) Register(ctx context.Context, username, password string) (*Account, error) {
	username = strings.TrimSpace(username)
	if len(username) < 3 || len(username) > 64 {
		return nil, fmt.Errorf("username must be between 3 and 64 characters")
	}
	if strings.ContainsAny(username, " \t\n") {
		return nil, fmt.Errorf("username must not contain whitespace")
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("password must be at least 8 characters")
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	a := &Account{Username: username, PasswordHash: hash}
	if err := s.accounts.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Authenticate verifies the credentials and returns the account. A missing
// user and a wrong password produce the same ErrInvalidCredentials.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Account, error) {
	a, err := s.accounts.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(a.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return a, nil
}
