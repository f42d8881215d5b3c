package postgres

import (
	"context"

	"zilptext/internal/domain/entity"
	"zilptext/internal/domain/repository"
	"zilptext/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// plateRepository implements the domain.PlateRepository interface using GORM.
type plateRepository struct {
	db *gorm.DB
}

// NewPlateRepository is the constructor for plateRepository.
func NewPlateRepository(db *gorm.DB) repository.PlateRepository {
	return &plateRepository{db: db}
}

// Create persists a new plate registration. The partial unique index on
// owner registrations turns a concurrent second owner insert into
// ErrPlateOwned instead of a silent double-owner row.
func (repo *plateRepository) Create(ctx context.Context, registration *entity.PlateRegistration) error {
	plateM := fromPlateRegistrationDomain(registration)

	if err := repo.db.WithContext(ctx).Create(plateM).Error; err != nil {
		if isUniqueConstraintViolation(err, constraintPlateOwner) {
			return repository.ErrPlateOwned
		}
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(err, "plate registration references missing account")
		}

		return errors.Wrap(err, "failed to create plate registration")
	}

	registration.ID = plateM.ID
	registration.CreatedAt = plateM.CreatedAt

	return nil
}

// FindOwner retrieves the owner registration for the normalized plate number.
func (repo *plateRepository) FindOwner(ctx context.Context, plateNumber string) (*entity.PlateRegistration, error) {
	var plateM model.PlateRegistrationModel
	err := repo.db.WithContext(ctx).
		Where("plate_number = ? AND is_owner = ?", plateNumber, true).
		First(&plateM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlateNotFound
		}

		return nil, errors.Wrap(err, "failed to find plate owner")
	}

	return toPlateRegistrationDomain(&plateM), nil
}

// --- Mapper Functions ---

// toPlateRegistrationDomain converts a GORM model to a domain entity.
func toPlateRegistrationDomain(data *model.PlateRegistrationModel) *entity.PlateRegistration {
	if data == nil {
		return nil
	}

	return &entity.PlateRegistration{
		ID:          data.ID,
		AccountID:   data.AccountID,
		PlateNumber: data.PlateNumber,
		IsOwner:     data.IsOwner,
		CreatedAt:   data.CreatedAt,
	}
}

// fromPlateRegistrationDomain converts a domain entity to a GORM model.
func fromPlateRegistrationDomain(data *entity.PlateRegistration) *model.PlateRegistrationModel {
	if data == nil {
		return nil
	}

	return &model.PlateRegistrationModel{
		ID:          data.ID,
		AccountID:   data.AccountID,
		PlateNumber: data.PlateNumber,
		IsOwner:     data.IsOwner,
	}
}
