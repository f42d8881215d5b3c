// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"zilptext/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence. The application layer
// handles these without depending on database-specific errors.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrEmailTaken is returned when a create would violate email uniqueness.
	ErrEmailTaken = errors.New("email already registered")
	// ErrPhoneTaken is returned when a create would violate phone uniqueness.
	ErrPhoneTaken = errors.New("phone already registered")
)

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// Create persists a new account. Uniqueness violations on email or phone
	// surface as ErrEmailTaken / ErrPhoneTaken.
	Create(ctx context.Context, account *entity.Account) error

	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByLoginID retrieves the account whose phone or email equals the
	// given identifier. The caller does not need to know which one it is.
	FindByLoginID(ctx context.Context, loginID string) (*entity.Account, error)

	// FindByName retrieves the first account matching the given first and
	// last name pair. Used by the social sign-in path.
	FindByName(ctx context.Context, firstName, lastName string) (*entity.Account, error)

	// MarkVerified sets the verified flag on the account with the given ID.
	MarkVerified(ctx context.Context, id uuid.UUID) error
}
