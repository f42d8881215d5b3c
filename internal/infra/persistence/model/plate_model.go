package model

import (
	"time"

	"github.com/google/uuid"
)

// PlateRegistrationModel mirrors the 'plate_registrations' table.
// The partial unique index on plate_number WHERE is_owner guarantees at most
// one owner registration per plate, even under concurrent inserts.
type PlateRegistrationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	PlateNumber string    `gorm:"type:varchar(20);not null;index;uniqueIndex:idx_plate_owner,where:is_owner"`
	IsOwner     bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlateRegistrationModel) TableName() string {
	return "plate_registrations"
}
