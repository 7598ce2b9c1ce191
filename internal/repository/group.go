package repository

import (
	"errors"

	"group-registry-backend/internal/addressing"
	"group-registry-backend/internal/database/models"
	apperrors "group-registry-backend/internal/errors"

	"gorm.io/gorm"
)

// isDuplicate reports whether err is a unique constraint violation
// surfaced by gorm's TranslateError mode.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// GroupRepository handles database operations for groups
type GroupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

// CreateWithOwner creates a group together with the owner's membership in a
// single transaction. Addresses are derived from the group id and owner
// identity, so a second create for the same group id collides on the primary
// key and reports ErrGroupExists.
func (r *GroupRepository) CreateWithOwner(group *models.Group, owner *models.Membership) error {
	group.Address = addressing.GroupAddress(group.GroupID)
	owner.Address = addressing.MembershipAddress(group.GroupID, owner.Member)
	owner.GroupID = group.GroupID

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			if isDuplicate(err) {
				return apperrors.ErrGroupExists
			}
			return err
		}
		if err := tx.Create(owner).Error; err != nil {
			if isDuplicate(err) {
				return apperrors.ErrMembershipExists
			}
			return err
		}
		return nil
	})
}

// GetByGroupID retrieves a group by its derived address
func (r *GroupRepository) GetByGroupID(groupID string) (*models.Group, error) {
	var group models.Group
	err := r.db.First(&group, "address = ?", addressing.GroupAddress(groupID)).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// SetCode assigns a public code to a group. The lookup record keyed by the
// code's derived address and the group row are written in one transaction;
// a taken code collides on the lookup primary key. Re-assigning a new code
// leaves the previous lookup record in place.
func (r *GroupRepository) SetCode(groupID, publicCode string) error {
	lookup := models.CodeLookup{
		Address:    addressing.CodeLookupAddress(publicCode),
		PublicCode: publicCode,
		GroupID:    groupID,
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&lookup).Error; err != nil {
			if isDuplicate(err) {
				return apperrors.ErrPublicCodeTaken
			}
			return err
		}
		result := tx.Model(&models.Group{}).
			Where("address = ?", addressing.GroupAddress(groupID)).
			Update("public_code", publicCode)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrGroupNotFound
		}
		return nil
	})
}

// Update updates a group using a map of updates
func (r *GroupRepository) Update(groupID string, updates map[string]interface{}) error {
	return r.db.Model(&models.Group{}).
		Where("address = ?", addressing.GroupAddress(groupID)).
		Updates(updates).Error
}
