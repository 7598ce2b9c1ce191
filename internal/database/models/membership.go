package models

import (
	"time"

	"group-registry-backend/internal/permissions"
)

// Membership binds one identity to one group with a role and the fixed
// permission mask for that role. The address is derived from the
// (group id, member identity) pair, so at most one live record can exist
// per pair.
type Membership struct {
	Address           string           `json:"address" gorm:"primaryKey;size:64"`
	GroupID           string           `json:"group_id" gorm:"not null;size:64;index"`
	Member            string           `json:"member" gorm:"not null;size:64;index"`
	Role              permissions.Role `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	Permissions       uint16           `json:"permissions" gorm:"not null"`
	EncryptedGroupKey []byte           `json:"encrypted_group_key,omitempty" gorm:"type:bytea"`
	JoinedAt          time.Time        `json:"joined_at"`
	LastReadAt        int64            `json:"last_read_at" gorm:"default:0"`
	IsActive          bool             `json:"is_active" gorm:"default:true"`
	IsMuted           bool             `json:"is_muted" gorm:"default:false"`
	IsBanned          bool             `json:"is_banned" gorm:"default:false"`
	InvitedBy         string           `json:"invited_by" gorm:"size:64"` // audit only
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
