package models

import (
	"time"
)

// InviteLink is a shareable, bounded-use, time-bounded join token for a
// group. Addressed by (group id, invite code); codes are case sensitive.
// Once revoked a link stays inactive forever, there is no reactivation.
type InviteLink struct {
	Address    string    `json:"address" gorm:"primaryKey;size:64"`
	GroupID    string    `json:"group_id" gorm:"not null;size:64;index"`
	InviteCode string    `json:"invite_code" gorm:"not null;size:16"`
	CreatedBy  string    `json:"created_by" gorm:"not null;size:64"`
	ExpiresAt  int64     `json:"expires_at" gorm:"default:0"` // unix seconds, 0 = never
	MaxUses    uint16    `json:"max_uses" gorm:"default:0"`   // 0 = unlimited
	UseCount   uint16    `json:"use_count" gorm:"not null;default:0"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	CreatedAt  time.Time `json:"created_at"`
}

// TableName returns the table name for InviteLink
func (InviteLink) TableName() string {
	return "invite_links"
}
