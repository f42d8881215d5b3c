package repository

import (
	"context"
	"errors"

	"zilptext/internal/domain/entity"
)

// Plate-related persistence errors.
var (
	// ErrPlateNotFound is returned when no registration matches the lookup.
	ErrPlateNotFound = errors.New("plate registration not found")
	// ErrPlateOwned is returned when a create would violate the
	// one-owner-per-plate constraint.
	ErrPlateOwned = errors.New("plate already has an owner")
)

// PlateRepository defines the standard operations for plate registrations.
type PlateRepository interface {
	// Create persists a new plate registration. Creating a second owner
	// registration for the same plate number surfaces as ErrPlateOwned;
	// the storage layer enforces this with a partial unique index, so the
	// guarantee holds even under concurrent registrations.
	Create(ctx context.Context, registration *entity.PlateRegistration) error

	// FindOwner retrieves the owner registration for the normalized plate
	// number, or ErrPlateNotFound if the plate has no owner.
	FindOwner(ctx context.Context, plateNumber string) (*entity.PlateRegistration, error)
}
