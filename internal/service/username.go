package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"group-registry-backend/internal/database/models"
	apperrors "group-registry-backend/internal/errors"
	"group-registry-backend/internal/logger"
	"group-registry-backend/internal/repository"
	"group-registry-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UsernameService handles business logic for the username registry
type UsernameService struct {
	repo      repository.UsernameRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewUsernameService creates a new username service
func NewUsernameService(repo repository.UsernameRepositoryInterface, validator *validator.Validate) *UsernameService {
	return &UsernameService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// RegisterUsernameRequest represents the request to claim a username
type RegisterUsernameRequest struct {
	Username      string `json:"username" validate:"required"`
	EncryptionKey []byte `json:"encryption_key" swaggertype:"string" format:"base64"`
}

// TransferUsernameRequest represents the request to transfer a username
type TransferUsernameRequest struct {
	NewOwner string `json:"new_owner" validate:"required"`
}

// UpdateUsernameKeyRequest represents the request to replace the published key
type UpdateUsernameKeyRequest struct {
	EncryptionKey []byte `json:"encryption_key" validate:"required" swaggertype:"string" format:"base64"`
}

// UsernameResponse represents the response for username operations
type UsernameResponse struct {
	Address       string    `json:"address"`
	Username      string    `json:"username"`
	Owner         string    `json:"owner"`
	EncryptionKey []byte    `json:"encryption_key" swaggertype:"string" format:"base64"`
	CreatedAt     time.Time `json:"created_at"`
}

// Register claims a username for the caller. Names are stored lowercase, so
// claims are case-insensitive.
func (s *UsernameService) Register(caller string, req *RegisterUsernameRequest) (*UsernameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validation.Identity(caller); err != nil {
		return nil, err
	}
	name := strings.ToLower(req.Username)
	if err := validation.Username(name); err != nil {
		return nil, err
	}
	key, err := validation.KeyBlob("encryption_key", req.EncryptionKey, validation.UsernameKeyLen)
	if err != nil {
		return nil, err
	}

	record := &models.Username{
		Username:      name,
		Owner:         strings.ToLower(caller),
		EncryptionKey: key,
	}
	if err := s.repo.Create(record); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"username": name,
		"action":   "username_register",
	}).Info("username registered")

	return s.toResponse(record), nil
}

// Lookup resolves a username to its owner and published key
func (s *UsernameService) Lookup(name string) (*UsernameResponse, error) {
	name = strings.ToLower(name)
	if err := validation.Username(name); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUsernameNotFound
		}
		return nil, fmt.Errorf("failed to look up username: %w", err)
	}
	return s.toResponse(record), nil
}

// Transfer hands a username to a new owner. Caller must own the name.
func (s *UsernameService) Transfer(caller, name string, req *TransferUsernameRequest) (*UsernameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validation.Identity(req.NewOwner); err != nil {
		return nil, err
	}

	record, err := s.ownedRecord(caller, name)
	if err != nil {
		return nil, err
	}

	newOwner := strings.ToLower(req.NewOwner)
	if err := s.repo.UpdateOwner(record.Username, newOwner); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":     caller,
		"username":  record.Username,
		"new_owner": newOwner,
		"action":    "username_transfer",
	}).Info("username transferred")

	record.Owner = newOwner
	return s.toResponse(record), nil
}

// Release deletes a username record; the name becomes claimable again.
func (s *UsernameService) Release(caller, name string) error {
	record, err := s.ownedRecord(caller, name)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(record.Username); err != nil {
		return err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"username": record.Username,
		"action":   "username_release",
	}).Info("username released")

	return nil
}

// UpdateEncryptionKey replaces the key published under a username
func (s *UsernameService) UpdateEncryptionKey(caller, name string, req *UpdateUsernameKeyRequest) (*UsernameResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	key, err := validation.KeyBlob("encryption_key", req.EncryptionKey, validation.UsernameKeyLen)
	if err != nil {
		return nil, err
	}

	record, err := s.ownedRecord(caller, name)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpdateKey(record.Username, key); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"username": record.Username,
		"action":   "username_update_key",
	}).Info("username encryption key updated")

	record.EncryptionKey = key
	return s.toResponse(record), nil
}

// ownedRecord loads a username record and checks the caller owns it
func (s *UsernameService) ownedRecord(caller, name string) (*models.Username, error) {
	name = strings.ToLower(name)
	if err := validation.Username(name); err != nil {
		return nil, err
	}

	record, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUsernameNotFound
		}
		return nil, fmt.Errorf("failed to get username: %w", err)
	}
	if record.Owner != strings.ToLower(caller) {
		return nil, apperrors.ErrNotUsernameOwner
	}
	return record, nil
}

// toResponse converts a username model to response
func (s *UsernameService) toResponse(record *models.Username) *UsernameResponse {
	return &UsernameResponse{
		Address:       record.Address,
		Username:      record.Username,
		Owner:         record.Owner,
		EncryptionKey: record.EncryptionKey,
		CreatedAt:     record.CreatedAt,
	}
}
