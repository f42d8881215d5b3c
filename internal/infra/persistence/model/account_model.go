// Package model holds the GORM persistence models, kept separate from the
// pure domain entities.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via
// uuid_generate_v4(). It is an exported type so it can be used by the GORM
// Gen tool from other packages.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex:idx_accounts_email;not null"`
	Phone        string    `gorm:"type:varchar(32);uniqueIndex:idx_accounts_phone;not null"`
	FirstName    string    `gorm:"type:varchar(100);not null"`
	LastName     string    `gorm:"type:varchar(100);not null"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	Provider     string    `gorm:"type:varchar(50);not null;default:'local'"`
	Verified     bool      `gorm:"not null;default:false"`
	ProfilePic   string    `gorm:"type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	PlateRegistrations []PlateRegistrationModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
