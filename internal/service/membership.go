package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"group-registry-backend/internal/database/models"
	apperrors "group-registry-backend/internal/errors"
	"group-registry-backend/internal/logger"
	"group-registry-backend/internal/permissions"
	"group-registry-backend/internal/repository"
	"group-registry-backend/internal/validation"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MembershipService handles business logic for group memberships
type MembershipService struct {
	repo      repository.MembershipRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewMembershipService creates a new membership service
func NewMembershipService(repo repository.MembershipRepositoryInterface, validator *validator.Validate) *MembershipService {
	return &MembershipService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// JoinGroupRequest represents the request to join a group
type JoinGroupRequest struct {
	EncryptedGroupKey []byte `json:"encrypted_group_key" swaggertype:"string" format:"base64"`
}

// InviteMemberRequest represents the request to invite a member directly
type InviteMemberRequest struct {
	Invitee           string `json:"invitee" validate:"required"`
	EncryptedGroupKey []byte `json:"encrypted_group_key" swaggertype:"string" format:"base64"`
}

// UpdateMemberRoleRequest represents the request to change a member's role
type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=member moderator admin owner"`
}

// UpdateLastReadRequest represents the request to record a read marker
type UpdateLastReadRequest struct {
	Timestamp int64 `json:"timestamp" validate:"required,gt=0"`
}

// MembershipResponse represents the response for membership operations
type MembershipResponse struct {
	Address           string           `json:"address"`
	GroupID           string           `json:"group_id"`
	Member            string           `json:"member"`
	Role              permissions.Role `json:"role"`
	Permissions       uint16           `json:"permissions"`
	JoinedAt          time.Time        `json:"joined_at"`
	LastReadAt        int64            `json:"last_read_at"`
	IsActive          bool             `json:"is_active"`
	IsMuted           bool             `json:"is_muted"`
	IsBanned          bool             `json:"is_banned"`
	InvitedBy         string           `json:"invited_by,omitempty"`
}

// MembershipListResponse represents a paginated group roster
type MembershipListResponse struct {
	Members  []MembershipResponse `json:"members"`
	Total    int64                `json:"total"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
}

// Join adds the caller to a group at Member role. The capacity check and
// counter increment happen inside the repository transaction.
func (s *MembershipService) Join(caller, groupID string, req *JoinGroupRequest) (*MembershipResponse, error) {
	if err := validation.Identity(caller); err != nil {
		return nil, err
	}
	if err := validation.GroupID(groupID); err != nil {
		return nil, err
	}
	keyBlob, err := validation.KeyBlob("encrypted_group_key", req.EncryptedGroupKey, validation.MemberKeyLen)
	if err != nil {
		return nil, err
	}

	groupID = strings.ToLower(groupID)
	m := s.newMembership(groupID, caller, strings.ToLower(caller))
	m.EncryptedGroupKey = keyBlob
	err = s.repo.CreateAndIncrement(m, "", func(_ *models.Membership, group *models.Group) error {
		if group.InviteOnly {
			return apperrors.NewPermissionDeniedError("group is invite only")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"group_id": groupID,
		"action":   "member_join",
	}).Info("member joined group")

	return s.toResponse(m), nil
}

// Invite adds another identity to a group on the caller's authority
func (s *MembershipService) Invite(caller, groupID string, req *InviteMemberRequest) (*MembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validation.Identity(caller); err != nil {
		return nil, err
	}
	if err := validation.Identity(req.Invitee); err != nil {
		return nil, err
	}
	if err := validation.GroupID(groupID); err != nil {
		return nil, err
	}
	keyBlob, err := validation.KeyBlob("encrypted_group_key", req.EncryptedGroupKey, validation.MemberKeyLen)
	if err != nil {
		return nil, err
	}

	groupID = strings.ToLower(groupID)
	m := s.newMembership(groupID, req.Invitee, strings.ToLower(caller))
	m.EncryptedGroupKey = keyBlob
	err = s.repo.CreateAndIncrement(m, strings.ToLower(caller), func(actor *models.Membership, group *models.Group) error {
		return permissions.CanPerform(subjectOf(actor), permissions.ActionInvite, nil, permissions.Check{
			AllowMemberInvites: group.AllowMemberInvites,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"invitee":  req.Invitee,
		"group_id": groupID,
		"action":   "member_invite",
	}).Info("member invited to group")

	return s.toResponse(m), nil
}

// Leave removes the caller from a group. The owner cannot leave.
func (s *MembershipService) Leave(caller, groupID string) error {
	if err := validation.GroupID(groupID); err != nil {
		return err
	}

	groupID = strings.ToLower(groupID)
	caller = strings.ToLower(caller)
	err := s.repo.DeleteAndDecrement(groupID, "", caller, func(_, target *models.Membership) error {
		if target.Role == permissions.RoleOwner {
			return apperrors.ErrOwnerCannotLeave
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"group_id": groupID,
		"action":   "member_leave",
	}).Info("member left group")

	return nil
}

// Kick removes another member on the caller's authority
func (s *MembershipService) Kick(caller, groupID, target string) error {
	if err := validation.GroupID(groupID); err != nil {
		return err
	}
	if err := validation.Identity(target); err != nil {
		return err
	}

	groupID = strings.ToLower(groupID)
	target = strings.ToLower(target)
	err := s.repo.DeleteAndDecrement(groupID, strings.ToLower(caller), target, func(actor, victim *models.Membership) error {
		v := subjectOf(victim)
		return permissions.CanPerform(subjectOf(actor), permissions.ActionKick, &v, permissions.Check{})
	})
	if err != nil {
		return err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"target":   target,
		"group_id": groupID,
		"action":   "member_kick",
	}).Info("member kicked from group")

	return nil
}

// UpdateRole changes a member's role; the permission mask always resets to
// the fixed mask for the new role.
func (s *MembershipService) UpdateRole(caller, groupID, target string, req *UpdateMemberRoleRequest) (*MembershipResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validation.GroupID(groupID); err != nil {
		return nil, err
	}
	if err := validation.Identity(target); err != nil {
		return nil, err
	}
	newRole := permissions.Role(req.Role)

	groupID = strings.ToLower(groupID)
	target = strings.ToLower(target)
	mask := permissions.RoleMask(newRole)
	err := s.repo.UpdateRole(groupID, strings.ToLower(caller), target, newRole, mask, func(actor, victim *models.Membership) error {
		v := subjectOf(victim)
		return permissions.CanPerform(subjectOf(actor), permissions.ActionUpdateRole, &v, permissions.Check{
			NewRole: newRole,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"target":   target,
		"group_id": groupID,
		"new_role": newRole,
		"action":   "member_update_role",
	}).Info("member role updated")

	updated, err := s.repo.Get(groupID, target)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated membership: %w", err)
	}
	return s.toResponse(updated), nil
}

// UpdateLastRead records the caller's read marker
func (s *MembershipService) UpdateLastRead(caller, groupID string, req *UpdateLastReadRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if err := validation.GroupID(groupID); err != nil {
		return err
	}

	return s.repo.UpdateLastRead(strings.ToLower(groupID), strings.ToLower(caller), req.Timestamp)
}

// Get retrieves one membership
func (s *MembershipService) Get(groupID, member string) (*MembershipResponse, error) {
	if err := validation.GroupID(groupID); err != nil {
		return nil, err
	}
	if err := validation.Identity(member); err != nil {
		return nil, err
	}

	m, err := s.repo.Get(strings.ToLower(groupID), strings.ToLower(member))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMembershipNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return s.toResponse(m), nil
}

// List retrieves a group's roster with pagination
func (s *MembershipService) List(groupID string, page, pageSize int) (*MembershipListResponse, error) {
	if err := validation.GroupID(groupID); err != nil {
		return nil, err
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	members, total, err := s.repo.ListByGroup(strings.ToLower(groupID), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	responses := make([]MembershipResponse, len(members))
	for i, m := range members {
		responses[i] = *s.toResponse(&m)
	}
	return &MembershipListResponse{
		Members:  responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// subjectOf converts a stored membership into the permissions view
func subjectOf(m *models.Membership) permissions.Subject {
	return permissions.Subject{
		Identity:    m.Member,
		Role:        m.Role,
		Permissions: m.Permissions,
	}
}

// newMembership builds a Member-role membership record
func (s *MembershipService) newMembership(groupID, member, invitedBy string) *models.Membership {
	return &models.Membership{
		GroupID:           groupID,
		Member:            strings.ToLower(member),
		Role:              permissions.RoleMember,
		Permissions:       permissions.RoleMask(permissions.RoleMember),
		EncryptedGroupKey: make([]byte, validation.MemberKeyLen),
		JoinedAt:          time.Now(),
		IsActive:          true,
		InvitedBy:         invitedBy,
	}
}

// toResponse converts a membership model to response
func (s *MembershipService) toResponse(m *models.Membership) *MembershipResponse {
	return &MembershipResponse{
		Address:     m.Address,
		GroupID:     m.GroupID,
		Member:      m.Member,
		Role:        m.Role,
		Permissions: m.Permissions,
		JoinedAt:    m.JoinedAt,
		LastReadAt:  m.LastReadAt,
		IsActive:    m.IsActive,
		IsMuted:     m.IsMuted,
		IsBanned:    m.IsBanned,
		InvitedBy:   m.InvitedBy,
	}
}
