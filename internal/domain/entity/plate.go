package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PlateRegistration binds a vehicle plate number to an account.
// System-wide, at most one registration per plate number may carry
// IsOwner=true; that row is the plate's owner registration. Non-owner rows
// are permitted by the model (shared access) but no current operation
// creates them.
type PlateRegistration struct {
	ID          uuid.UUID // The unique identifier for this registration.
	AccountID   uuid.UUID // The account this registration belongs to.
	PlateNumber string    // Normalized plate number (trimmed, uppercased).
	IsOwner     bool      // Whether this account owns the plate.
	CreatedAt   time.Time // Timestamp of when the registration was created.
}

// NormalizePlate canonicalizes a plate number for storage and lookup:
// surrounding whitespace is trimmed and letters are uppercased.
func NormalizePlate(plateNumber string) string {
	return strings.ToUpper(strings.TrimSpace(plateNumber))
}
