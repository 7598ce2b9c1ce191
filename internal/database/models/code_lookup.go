package models

// CodeLookup maps a normalized public code to a group id. Addressed by the
// lowercased code, which makes code uniqueness global: claiming a code that
// another group holds fails at the database.
//
// Re-setting a group's code deliberately leaves the old lookup row in
// place, so a stale code keeps resolving. This matches the reference
// behavior; reclaiming stale lookups is an explicit non-goal.
type CodeLookup struct {
	Address    string `json:"address" gorm:"primaryKey;size:64"`
	PublicCode string `json:"public_code" gorm:"not null;size:20"`
	GroupID    string `json:"group_id" gorm:"not null;size:64;index"`
}

// TableName returns the table name for CodeLookup
func (CodeLookup) TableName() string {
	return "code_lookups"
}
