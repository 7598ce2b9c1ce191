package repository

import (
	"group-registry-backend/internal/addressing"
	"group-registry-backend/internal/database/models"
	apperrors "group-registry-backend/internal/errors"

	"gorm.io/gorm"
)

// UsernameRepository handles database operations for the username registry
type UsernameRepository struct {
	db *gorm.DB
}

// NewUsernameRepository creates a new username repository
func NewUsernameRepository(db *gorm.DB) *UsernameRepository {
	return &UsernameRepository{db: db}
}

// Create claims a username. The record is keyed by the name's derived
// address, so a taken name collides on the primary key.
func (r *UsernameRepository) Create(record *models.Username) error {
	record.Address = addressing.UsernameAddress(record.Username)
	if err := r.db.Create(record).Error; err != nil {
		if isDuplicate(err) {
			return apperrors.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// GetByName retrieves a username record by its derived address
func (r *UsernameRepository) GetByName(username string) (*models.Username, error) {
	var record models.Username
	err := r.db.First(&record, "address = ?", addressing.UsernameAddress(username)).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateOwner transfers a username to a new owner
func (r *UsernameRepository) UpdateOwner(username, newOwner string) error {
	result := r.db.Model(&models.Username{}).
		Where("address = ?", addressing.UsernameAddress(username)).
		Update("owner", newOwner)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUsernameNotFound
	}
	return nil
}

// UpdateKey replaces the encryption key published under a username
func (r *UsernameRepository) UpdateKey(username string, key []byte) error {
	result := r.db.Model(&models.Username{}).
		Where("address = ?", addressing.UsernameAddress(username)).
		Update("encryption_key", key)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUsernameNotFound
	}
	return nil
}

// Delete releases a username
func (r *UsernameRepository) Delete(username string) error {
	result := r.db.Delete(&models.Username{}, "address = ?", addressing.UsernameAddress(username))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrUsernameNotFound
	}
	return nil
}
