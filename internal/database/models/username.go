package models

import (
	"time"
)

// Username is a registry entry binding a human-readable name to an
// identity key plus that identity's public encryption key. Addressed by
// the lowercased name. Releasing a username deletes the record, so the
// name becomes claimable again.
type Username struct {
	Address       string    `json:"address" gorm:"primaryKey;size:64"`
	Username      string    `json:"username" gorm:"not null;size:20"`
	Owner         string    `json:"owner" gorm:"not null;size:64;index"`
	EncryptionKey []byte    `json:"encryption_key,omitempty" gorm:"type:bytea"`
	CreatedAt     time.Time `json:"created_at"`
}

// TableName returns the table name for Username
func (Username) TableName() string {
	return "usernames"
}
