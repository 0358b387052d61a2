// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"bookrack/internal/domain/entity"
)

// ErrAccountNotFound is returned when no account matches the lookup.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountExists is returned by Create when the username is already taken.
// Create must check and insert atomically so two concurrent registrations of
// the same username cannot both succeed.
var ErrAccountExists = errors.New("account already exists")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete
// implementation.
type AccountRepository interface {
	// IsUsernameAvailable reports whether username can still be registered.
	// It fails closed: empty or whitespace-only usernames are never available.
	IsUsernameAvailable(ctx context.Context, username string) bool

	// Create persists a new account. Returns ErrAccountExists when the
	// username is taken or unusable.
	Create(ctx context.Context, account *entity.Account) error

	// VerifyCredentials reports whether an account exists whose username and
	// password both match exactly.
	VerifyCredentials(ctx context.Context, username, password string) bool

	// FindByUsername retrieves a single account by its exact username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)
}
