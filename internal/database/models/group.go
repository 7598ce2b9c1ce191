package models

import (
	"time"
)

// Group represents a group record. Its primary key is the address derived
// from the creator-chosen 32-byte group id, so two creations with the same
// id collide at the database and the loser fails with a duplicate key.
type Group struct {
	Address            string    `json:"address" gorm:"primaryKey;size:64"`
	GroupID            string    `json:"group_id" gorm:"uniqueIndex;not null;size:64"`
	Owner              string    `json:"owner" gorm:"not null;size:64;index"`
	PublicCode         string    `json:"public_code" gorm:"size:20"`
	Name               string    `json:"name" gorm:"not null;size:100"`
	Description        string    `json:"description" gorm:"size:500"`
	AvatarRef          string    `json:"avatar_ref" gorm:"size:64"`
	IsPublic           bool      `json:"is_public" gorm:"default:false"`
	IsSearchable       bool      `json:"is_searchable" gorm:"default:false"`
	InviteOnly         bool      `json:"invite_only" gorm:"default:false"`
	RequireApproval    bool      `json:"require_approval" gorm:"default:false"`
	EnableReplies      bool      `json:"enable_replies" gorm:"default:true"`
	EnableReactions    bool      `json:"enable_reactions" gorm:"default:true"`
	EnableReadReceipts bool      `json:"enable_read_receipts" gorm:"default:true"`
	EnableTyping       bool      `json:"enable_typing_indicators" gorm:"default:true"`
	MaxMembers         uint16    `json:"max_members" gorm:"default:0"` // 0 = unlimited
	AllowMemberInvites bool      `json:"allow_member_invites" gorm:"default:false"`
	GroupEncryptionKey []byte    `json:"group_encryption_key,omitempty" gorm:"type:bytea"`
	MemberCount        uint16    `json:"member_count" gorm:"not null;default:0"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName returns the table name for Group
func (Group) TableName() string {
	return "groups"
}
