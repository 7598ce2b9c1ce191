package repository

import (
	"group-registry-backend/internal/addressing"
	"group-registry-backend/internal/database/models"

	"gorm.io/gorm"
)

// CodeLookupRepository handles database operations for public code lookups
type CodeLookupRepository struct {
	db *gorm.DB
}

// NewCodeLookupRepository creates a new code lookup repository
func NewCodeLookupRepository(db *gorm.DB) *CodeLookupRepository {
	return &CodeLookupRepository{db: db}
}

// GetByCode retrieves a lookup record by its derived address
func (r *CodeLookupRepository) GetByCode(publicCode string) (*models.CodeLookup, error) {
	var lookup models.CodeLookup
	err := r.db.First(&lookup, "address = ?", addressing.CodeLookupAddress(publicCode)).Error
	if err != nil {
		return nil, err
	}
	return &lookup, nil
}
