package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint names from the model index tags. Matching on the name lets a
// unique violation be mapped to the right field-level domain error.
const (
	constraintAccountsEmail = "idx_accounts_email"
	constraintAccountsPhone = "idx_accounts_phone"
	constraintPlateOwner    = "idx_plate_owner"
)

// isUniqueConstraintViolation reports whether err is a unique-key violation,
// optionally restricted to a specific named constraint.
func isUniqueConstraintViolation(err error, constraint string) bool {
	if err == nil {
		return false
	}

	duplicated := errors.Is(err, gorm.ErrDuplicatedKey)
	errMsg := strings.ToLower(err.Error())
	if !duplicated {
		// The driver may surface the raw PostgreSQL error (SQLSTATE 23505)
		// instead of GORM's translated sentinel.
		duplicated = strings.Contains(errMsg, "duplicate key") ||
			strings.Contains(errMsg, "23505")
	}
	if !duplicated {
		return false
	}

	if constraint == "" {
		return true
	}

	return strings.Contains(errMsg, constraint)
}

func isForeignKeyConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "foreign key") || strings.Contains(errMsg, "23503")
}
