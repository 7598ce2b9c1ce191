package repository

import (
	"group-registry-backend/internal/database/models"
	"group-registry-backend/internal/permissions"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AdmissionCheck decides whether a new membership or invite link may be
// created, given the acting membership (nil when the operation has no actor)
// and the group. Both rows are locked for the enclosing transaction.
type AdmissionCheck func(actor *models.Membership, group *models.Group) error

// MembershipCheck decides whether a membership mutation may proceed, given
// the acting and target membership rows locked for the enclosing transaction.
type MembershipCheck func(actor, target *models.Membership) error

// RevocationCheck decides whether an invite link may be deactivated, given
// the acting membership and the link row locked for the enclosing transaction.
type RevocationCheck func(actor *models.Membership, link *models.InviteLink) error

// GroupRepositoryInterface defines the interface for group repository operations
type GroupRepositoryInterface interface {
	CreateWithOwner(group *models.Group, owner *models.Membership) error
	GetByGroupID(groupID string) (*models.Group, error)
	SetCode(groupID, publicCode string) error
	Update(groupID string, updates map[string]interface{}) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Get(groupID, member string) (*models.Membership, error)
	CreateAndIncrement(membership *models.Membership, actor string, admit AdmissionCheck) error
	DeleteAndDecrement(groupID, actor, member string, check MembershipCheck) error
	UpdateRole(groupID, actor, member string, role permissions.Role, mask uint16, check MembershipCheck) error
	UpdateLastRead(groupID, member string, timestamp int64) error
	ListByGroup(groupID string, limit, offset int) ([]models.Membership, int64, error)
}

// InviteLinkRepositoryInterface defines the interface for invite link repository operations
type InviteLinkRepositoryInterface interface {
	Create(link *models.InviteLink, admit AdmissionCheck) error
	Get(groupID, inviteCode string) (*models.InviteLink, error)
	Deactivate(groupID, inviteCode, actor string, check RevocationCheck) error
	RedeemAndJoin(groupID, inviteCode string, membership *models.Membership, now int64) error
}

// CodeLookupRepositoryInterface defines the interface for code lookup repository operations
type CodeLookupRepositoryInterface interface {
	GetByCode(publicCode string) (*models.CodeLookup, error)
}

// UsernameRepositoryInterface defines the interface for username repository operations
type UsernameRepositoryInterface interface {
	Create(record *models.Username) error
	GetByName(username string) (*models.Username, error)
	UpdateOwner(username, newOwner string) error
	UpdateKey(username string, key []byte) error
	Delete(username string) error
}
