package testutils

import (
	"encoding/hex"
	"time"

	"group-registry-backend/internal/database/models"
	"group-registry-backend/internal/permissions"

	"github.com/google/uuid"
)

// RandomIdentity returns a fresh 32-byte identity key, hex encoded.
func RandomIdentity() string {
	a, b := uuid.New(), uuid.New()
	return hex.EncodeToString(append(a[:], b[:]...))
}

// RandomGroupID returns a fresh 32-byte group id, hex encoded.
func RandomGroupID() string {
	return RandomIdentity()
}

// GroupFactory provides methods to create test Group data
type GroupFactory struct{}

// NewGroupFactory creates a new GroupFactory
func NewGroupFactory() *GroupFactory {
	return &GroupFactory{}
}

// Create creates a test Group with default values
func (f *GroupFactory) Create() *models.Group {
	return &models.Group{
		GroupID:            RandomGroupID(),
		Owner:              RandomIdentity(),
		Name:               "Test Group",
		Description:        "A test group for testing purposes",
		IsPublic:           true,
		IsSearchable:       true,
		MaxMembers:         0,
		AllowMemberInvites: false,
		GroupEncryptionKey: make([]byte, 32),
		MemberCount:        1,
	}
}

// WithOwner sets the owner identity for the group
func (f *GroupFactory) WithOwner(owner string) *models.Group {
	group := f.Create()
	group.Owner = owner
	return group
}

// WithMaxMembers sets a member capacity for the group
func (f *GroupFactory) WithMaxMembers(max uint16) *models.Group {
	group := f.Create()
	group.MaxMembers = max
	return group
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test Membership with default values
func (f *MembershipFactory) Create() *models.Membership {
	return &models.Membership{
		GroupID:           RandomGroupID(),
		Member:            RandomIdentity(),
		Role:              permissions.RoleMember,
		Permissions:       permissions.RoleMask(permissions.RoleMember),
		EncryptedGroupKey: make([]byte, 64),
		JoinedAt:          time.Now(),
		IsActive:          true,
	}
}

// ForGroup sets the group id for the membership
func (f *MembershipFactory) ForGroup(groupID string) *models.Membership {
	m := f.Create()
	m.GroupID = groupID
	return m
}

// WithRole sets the role and matching permission mask
func (f *MembershipFactory) WithRole(groupID string, role permissions.Role) *models.Membership {
	m := f.ForGroup(groupID)
	m.Role = role
	m.Permissions = permissions.RoleMask(role)
	return m
}

// InviteLinkFactory provides methods to create test InviteLink data
type InviteLinkFactory struct{}

// NewInviteLinkFactory creates a new InviteLinkFactory
func NewInviteLinkFactory() *InviteLinkFactory {
	return &InviteLinkFactory{}
}

// Create creates a test InviteLink with default values
func (f *InviteLinkFactory) Create() *models.InviteLink {
	return &models.InviteLink{
		GroupID:    RandomGroupID(),
		InviteCode: "code" + uuid.New().String()[:8],
		CreatedBy:  RandomIdentity(),
		ExpiresAt:  0,
		MaxUses:    0,
		IsActive:   true,
	}
}

// ForGroup sets the group id for the invite link
func (f *InviteLinkFactory) ForGroup(groupID string) *models.InviteLink {
	link := f.Create()
	link.GroupID = groupID
	return link
}

// WithLimits sets expiry and use limits for the invite link
func (f *InviteLinkFactory) WithLimits(groupID string, expiresAt int64, maxUses uint16) *models.InviteLink {
	link := f.ForGroup(groupID)
	link.ExpiresAt = expiresAt
	link.MaxUses = maxUses
	return link
}

// UsernameFactory provides methods to create test Username data
type UsernameFactory struct{}

// NewUsernameFactory creates a new UsernameFactory
func NewUsernameFactory() *UsernameFactory {
	return &UsernameFactory{}
}

// Create creates a test Username with default values
func (f *UsernameFactory) Create() *models.Username {
	return &models.Username{
		Username:      "user_" + uuid.New().String()[:8],
		Owner:         RandomIdentity(),
		EncryptionKey: make([]byte, 32),
	}
}

// WithOwner sets the owner identity for the username
func (f *UsernameFactory) WithOwner(owner string) *models.Username {
	record := f.Create()
	record.Owner = owner
	return record
}

// FactorySet provides access to all factories
type FactorySet struct {
	Group      *GroupFactory
	Membership *MembershipFactory
	InviteLink *InviteLinkFactory
	Username   *UsernameFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Group:      NewGroupFactory(),
		Membership: NewMembershipFactory(),
		InviteLink: NewInviteLinkFactory(),
		Username:   NewUsernameFactory(),
	}
}
