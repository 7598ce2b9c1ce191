package repository

import (
	"errors"

	"group-registry-backend/internal/addressing"
	"group-registry-backend/internal/database/models"
	apperrors "group-registry-backend/internal/errors"
	"group-registry-backend/internal/permissions"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Get retrieves a membership by its derived address
func (r *MembershipRepository) Get(groupID, member string) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "address = ?", addressing.MembershipAddress(groupID, member)).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// CreateAndIncrement inserts a membership and bumps the group's member count
// in one transaction. The group row is locked for the duration so the
// capacity check and the increment see a consistent count; when actor is set,
// the acting membership is locked too and admit decides on the locked rows.
func (r *MembershipRepository) CreateAndIncrement(membership *models.Membership, actor string, admit AdmissionCheck) error {
	membership.Address = addressing.MembershipAddress(membership.GroupID, membership.Member)

	return r.db.Transaction(func(tx *gorm.DB) error {
		var group models.Group
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&group, "address = ?", addressing.GroupAddress(membership.GroupID)).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGroupNotFound
			}
			return err
		}
		var actorRow *models.Membership
		if actor != "" {
			if actorRow, err = lockMembership(tx, membership.GroupID, actor); err != nil {
				return err
			}
		}
		if admit != nil {
			if err := admit(actorRow, &group); err != nil {
				return err
			}
		}
		if group.MaxMembers > 0 && group.MemberCount >= group.MaxMembers {
			return apperrors.ErrGroupFull
		}
		if err := tx.Create(membership).Error; err != nil {
			if isDuplicate(err) {
				return apperrors.ErrMembershipExists
			}
			return err
		}
		return tx.Model(&models.Group{}).
			Where("address = ?", group.Address).
			Update("member_count", gorm.Expr("member_count + 1")).Error
	})
}

// DeleteAndDecrement removes a membership and lowers the group's member
// count in one transaction. The target (and, when actor is set, the acting)
// membership is locked before check runs, so the decision cannot be made on
// a row a concurrent role change is about to replace. The count never drops
// below zero.
func (r *MembershipRepository) DeleteAndDecrement(groupID, actor, member string, check MembershipCheck) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var group models.Group
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&group, "address = ?", addressing.GroupAddress(groupID)).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGroupNotFound
			}
			return err
		}
		target, err := lockMembership(tx, groupID, member)
		if err != nil {
			return err
		}
		var actorRow *models.Membership
		if actor == member {
			actorRow = target
		} else if actor != "" {
			if actorRow, err = lockMembership(tx, groupID, actor); err != nil {
				return err
			}
		}
		if check != nil {
			if err := check(actorRow, target); err != nil {
				return err
			}
		}
		result := tx.Delete(&models.Membership{}, "address = ?", target.Address)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return apperrors.ErrMembershipNotFound
		}
		return tx.Model(&models.Group{}).
			Where("address = ? AND member_count > 0", group.Address).
			Update("member_count", gorm.Expr("member_count - 1")).Error
	})
}

// UpdateRole sets a member's role and the permission mask that goes with it.
// The acting and target rows are locked for the duration and check decides
// on what it sees under those locks.
func (r *MembershipRepository) UpdateRole(groupID, actor, member string, role permissions.Role, mask uint16, check MembershipCheck) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		target, err := lockMembership(tx, groupID, member)
		if err != nil {
			return err
		}
		var actorRow *models.Membership
		if actor == member {
			actorRow = target
		} else if actor != "" {
			if actorRow, err = lockMembership(tx, groupID, actor); err != nil {
				return err
			}
		}
		if check != nil {
			if err := check(actorRow, target); err != nil {
				return err
			}
		}
		return tx.Model(&models.Membership{}).
			Where("address = ?", target.Address).
			Updates(map[string]interface{}{"role": role, "permissions": mask}).Error
	})
}

// lockMembership reads a membership row under FOR UPDATE.
func lockMembership(tx *gorm.DB, groupID, member string) (*models.Membership, error) {
	var m models.Membership
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "address = ?", addressing.MembershipAddress(groupID, member)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, err
	}
	return &m, nil
}

// UpdateLastRead records the member's last read timestamp
func (r *MembershipRepository) UpdateLastRead(groupID, member string, timestamp int64) error {
	result := r.db.Model(&models.Membership{}).
		Where("address = ?", addressing.MembershipAddress(groupID, member)).
		Update("last_read_at", timestamp)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrMembershipNotFound
	}
	return nil
}

// ListByGroup retrieves the memberships of a group with pagination
func (r *MembershipRepository) ListByGroup(groupID string, limit, offset int) ([]models.Membership, int64, error) {
	var memberships []models.Membership
	var total int64

	if err := r.db.Model(&models.Membership{}).Where("group_id = ?", groupID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("group_id = ?", groupID).
		Order("joined_at ASC").
		Limit(limit).Offset(offset).Find(&memberships).Error
	if err != nil {
		return nil, 0, err
	}

	return memberships, total, nil
}
