package repository

import (
	"errors"

	"group-registry-backend/internal/addressing"
	"group-registry-backend/internal/database/models"
	apperrors "group-registry-backend/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InviteLinkRepository handles database operations for invite links
type InviteLinkRepository struct {
	db *gorm.DB
}

// NewInviteLinkRepository creates a new invite link repository
func NewInviteLinkRepository(db *gorm.DB) *InviteLinkRepository {
	return &InviteLinkRepository{db: db}
}

// Create creates a new invite link. The group row and the creator's
// membership are locked for the transaction and admit decides on those rows.
func (r *InviteLinkRepository) Create(link *models.InviteLink, admit AdmissionCheck) error {
	link.Address = addressing.InviteLinkAddress(link.GroupID, link.InviteCode)

	return r.db.Transaction(func(tx *gorm.DB) error {
		var group models.Group
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&group, "address = ?", addressing.GroupAddress(link.GroupID)).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGroupNotFound
			}
			return err
		}
		actorRow, err := lockMembership(tx, link.GroupID, link.CreatedBy)
		if err != nil {
			return err
		}
		if admit != nil {
			if err := admit(actorRow, &group); err != nil {
				return err
			}
		}
		if err := tx.Create(link).Error; err != nil {
			if isDuplicate(err) {
				return apperrors.ErrInviteLinkExists
			}
			return err
		}
		return nil
	})
}

// Get retrieves an invite link by its derived address
func (r *InviteLinkRepository) Get(groupID, inviteCode string) (*models.InviteLink, error) {
	var link models.InviteLink
	err := r.db.First(&link, "address = ?", addressing.InviteLinkAddress(groupID, inviteCode)).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// Deactivate marks an invite link inactive. The record stays around so the
// code cannot be re-issued for the same group. The link row (and, when actor
// is set, the acting membership) is locked before check runs.
func (r *InviteLinkRepository) Deactivate(groupID, inviteCode, actor string, check RevocationCheck) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var link models.InviteLink
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&link, "address = ?", addressing.InviteLinkAddress(groupID, inviteCode)).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInviteLinkNotFound
			}
			return err
		}
		var actorRow *models.Membership
		if actor != "" {
			if actorRow, err = lockMembership(tx, groupID, actor); err != nil {
				return err
			}
		}
		if check != nil {
			if err := check(actorRow, &link); err != nil {
				return err
			}
		}
		return tx.Model(&models.InviteLink{}).
			Where("address = ?", link.Address).
			Update("is_active", false).Error
	})
}

// RedeemAndJoin consumes one use of an invite link and creates the caller's
// membership in a single transaction. The link and group rows are locked so
// the use count, capacity check and member count move together or not at all.
func (r *InviteLinkRepository) RedeemAndJoin(groupID, inviteCode string, membership *models.Membership, now int64) error {
	membership.GroupID = groupID
	membership.Address = addressing.MembershipAddress(groupID, membership.Member)

	return r.db.Transaction(func(tx *gorm.DB) error {
		var link models.InviteLink
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&link, "address = ?", addressing.InviteLinkAddress(groupID, inviteCode)).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrInviteLinkNotFound
			}
			return err
		}
		if !link.IsActive {
			return apperrors.ErrInviteLinkInactive
		}
		if link.ExpiresAt > 0 && now >= link.ExpiresAt {
			return apperrors.ErrInviteLinkExpired
		}
		if link.MaxUses > 0 && link.UseCount >= link.MaxUses {
			return apperrors.ErrInviteLinkExhausted
		}

		var group models.Group
		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&group, "address = ?", addressing.GroupAddress(groupID)).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrGroupNotFound
			}
			return err
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
		err = tx.Model(&models.InviteLink{}).
			Where("address = ?", link.Address).
			Update("use_count", gorm.Expr("use_count + 1")).Error
		if err != nil {
			return err
		}
		return tx.Model(&models.Group{}).
			Where("address = ?", group.Address).
			Update("member_count", gorm.Expr("member_count + 1")).Error
	})
}
