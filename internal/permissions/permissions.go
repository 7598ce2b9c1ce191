// Package permissions defines the group role lattice: the total order of
// roles, the fixed permission bitmask each role carries, and the single
// CanPerform entrypoint every authorizing operation goes through. It is
// pure and knows nothing about storage.
package permissions

import (
	apperrors "group-registry-backend/internal/errors"
)

// Role is a member's role within a group.
type Role string

const (
	RoleMember    Role = "member"
	RoleModerator Role = "moderator"
	RoleAdmin     Role = "admin"
	RoleOwner     Role = "owner"
)

// IsValid checks if the Role is valid
func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleModerator, RoleAdmin, RoleOwner:
		return true
	}
	return false
}

// Rank returns the position of a role in the total order
// Member(0) < Moderator(1) < Admin(2) < Owner(3). Rank, not the bitmask,
// decides kick eligibility.
func Rank(r Role) int {
	switch r {
	case RoleModerator:
		return 1
	case RoleAdmin:
		return 2
	case RoleOwner:
		return 3
	default:
		return 0
	}
}

// Permission bits.
const (
	PermSendMessages   uint16 = 1 << 0
	PermInviteMembers  uint16 = 1 << 1
	PermKickMembers    uint16 = 1 << 2
	PermManageSettings uint16 = 1 << 3
	PermDeleteMessages uint16 = 1 << 4
	PermPinMessages    uint16 = 1 << 5
	PermManageRoles    uint16 = 1 << 6
)

// AllPermissions is the owner mask.
const AllPermissions uint16 = 0xFFFF

// RoleMask returns the fixed permission bitmask for a role. Role changes
// always reset to this mask; per-member overrides are not supported.
func RoleMask(r Role) uint16 {
	switch r {
	case RoleOwner:
		return AllPermissions
	case RoleAdmin:
		return PermSendMessages | PermInviteMembers | PermKickMembers | PermManageRoles
	case RoleModerator:
		return PermSendMessages | PermInviteMembers | PermKickMembers
	default:
		return PermSendMessages
	}
}

// Action is an authorized operation on a group.
type Action string

const (
	ActionInvite           Action = "invite"
	ActionCreateInviteLink Action = "create_invite_link"
	ActionRevokeInviteLink Action = "revoke_invite_link"
	ActionKick             Action = "kick"
	ActionUpdateRole       Action = "update_role"
)

// Subject is the membership view CanPerform consumes: who, at what role,
// holding which bits.
type Subject struct {
	Identity    string
	Role        Role
	Permissions uint16
}

// Check carries the group- and action-level inputs some rules need.
type Check struct {
	// AllowMemberInvites is the group's member-invite delegation flag.
	AllowMemberInvites bool
	// InviteCreatedBy is the identity that created the invite link under
	// revocation.
	InviteCreatedBy string
	// NewRole is the role being assigned by an update_role action.
	NewRole Role
}

// CanPerform decides whether actor may apply action to target under chk.
// A nil return means allowed; otherwise the returned PermissionDeniedError
// names the violated rule. target is ignored for actions without one.
func CanPerform(actor Subject, action Action, target *Subject, chk Check) error {
	switch action {
	case ActionInvite, ActionCreateInviteLink:
		if isStaff(actor.Role) {
			return nil
		}
		if chk.AllowMemberInvites && actor.Permissions&PermInviteMembers != 0 {
			return nil
		}
		return apperrors.ErrInsufficientRole

	case ActionRevokeInviteLink:
		if actor.Identity == chk.InviteCreatedBy || isStaff(actor.Role) {
			return nil
		}
		return apperrors.ErrInsufficientRole

	case ActionKick:
		if !isStaff(actor.Role) {
			return apperrors.ErrInsufficientRole
		}
		if target.Role == RoleOwner {
			return apperrors.ErrCannotKickOwner
		}
		if actor.Identity == target.Identity {
			return apperrors.ErrCannotKickSelf
		}
		if actor.Role != RoleOwner && Rank(actor.Role) <= Rank(target.Role) {
			return apperrors.ErrCannotOutrankKicker
		}
		return nil

	case ActionUpdateRole:
		if actor.Role != RoleOwner && actor.Role != RoleAdmin {
			return apperrors.ErrInsufficientRole
		}
		if target.Role == RoleOwner {
			return apperrors.ErrCannotChangeOwnerRole
		}
		if chk.NewRole == RoleOwner {
			return apperrors.ErrCannotPromoteToOwner
		}
		if chk.NewRole == RoleAdmin && actor.Role != RoleOwner {
			return apperrors.ErrOnlyOwnerPromotesAdmin
		}
		return nil
	}

	return apperrors.ErrInsufficientRole
}

// isStaff reports whether a role carries standing moderation authority.
func isStaff(r Role) bool {
	return r == RoleOwner || r == RoleAdmin || r == RoleModerator
}
