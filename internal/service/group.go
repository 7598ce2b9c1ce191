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

// GroupService handles business logic for groups
type GroupService struct {
	repo      repository.GroupRepositoryInterface
	lookups   repository.CodeLookupRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewGroupService creates a new group service
func NewGroupService(repo repository.GroupRepositoryInterface, lookups repository.CodeLookupRepositoryInterface, validator *validator.Validate) *GroupService {
	return &GroupService{
		repo:      repo,
		lookups:   lookups,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateGroupRequest represents the request to create a group
type CreateGroupRequest struct {
	GroupID            string `json:"group_id" validate:"required"`
	Name               string `json:"name" validate:"required"`
	Description        string `json:"description"`
	AvatarRef          string `json:"avatar_ref"`
	IsPublic           bool   `json:"is_public"`
	IsSearchable       bool   `json:"is_searchable"`
	InviteOnly         bool   `json:"invite_only"`
	RequireApproval    bool   `json:"require_approval"`
	MaxMembers         uint16 `json:"max_members"`
	AllowMemberInvites bool   `json:"allow_member_invites"`
	GroupEncryptionKey []byte `json:"group_encryption_key" swaggertype:"string" format:"base64"`
	EncryptedGroupKey  []byte `json:"encrypted_group_key" swaggertype:"string" format:"base64"`
}

// SetGroupCodeRequest represents the request to assign a public code
type SetGroupCodeRequest struct {
	Code string `json:"code" validate:"required"`
}

// UpdateGroupSettingsRequest represents the request to change group settings.
// Nil fields are left untouched.
type UpdateGroupSettingsRequest struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	AvatarRef          *string `json:"avatar_ref"`
	IsPublic           *bool   `json:"is_public"`
	IsSearchable       *bool   `json:"is_searchable"`
	InviteOnly         *bool   `json:"invite_only"`
	RequireApproval    *bool   `json:"require_approval"`
	EnableReplies      *bool   `json:"enable_replies"`
	EnableReactions    *bool   `json:"enable_reactions"`
	EnableReadReceipts *bool   `json:"enable_read_receipts"`
	EnableTyping       *bool   `json:"enable_typing"`
	AllowMemberInvites *bool   `json:"allow_member_invites"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	Address            string    `json:"address"`
	GroupID            string    `json:"group_id"`
	Owner              string    `json:"owner"`
	PublicCode         string    `json:"public_code,omitempty"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	AvatarRef          string    `json:"avatar_ref,omitempty"`
	IsPublic           bool      `json:"is_public"`
	IsSearchable       bool      `json:"is_searchable"`
	InviteOnly         bool      `json:"invite_only"`
	RequireApproval    bool      `json:"require_approval"`
	MaxMembers         uint16    `json:"max_members"`
	AllowMemberInvites bool      `json:"allow_member_invites"`
	MemberCount        uint16    `json:"member_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Create creates a group together with the caller's owner membership
func (s *GroupService) Create(caller string, req *CreateGroupRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validation.Identity(caller); err != nil {
		return nil, err
	}
	if err := validation.GroupID(req.GroupID); err != nil {
		return nil, err
	}
	if err := validation.GroupName(req.Name); err != nil {
		return nil, err
	}
	if err := validation.GroupDescription(req.Description); err != nil {
		return nil, err
	}
	groupKey, err := validation.KeyBlob("group_encryption_key", req.GroupEncryptionKey, validation.GroupKeyLen)
	if err != nil {
		return nil, err
	}
	memberKey, err := validation.KeyBlob("encrypted_group_key", req.EncryptedGroupKey, validation.MemberKeyLen)
	if err != nil {
		return nil, err
	}

	group := &models.Group{
		GroupID:            strings.ToLower(req.GroupID),
		Owner:              strings.ToLower(caller),
		Name:               req.Name,
		Description:        req.Description,
		AvatarRef:          req.AvatarRef,
		IsPublic:           req.IsPublic,
		IsSearchable:       req.IsSearchable,
		InviteOnly:         req.InviteOnly,
		RequireApproval:    req.RequireApproval,
		MaxMembers:         req.MaxMembers,
		AllowMemberInvites: req.AllowMemberInvites,
		GroupEncryptionKey: groupKey,
		MemberCount:        1,
	}
	owner := &models.Membership{
		Member:            group.Owner,
		Role:              permissions.RoleOwner,
		Permissions:       permissions.AllPermissions,
		EncryptedGroupKey: memberKey,
		JoinedAt:          time.Now(),
		IsActive:          true,
		InvitedBy:         group.Owner,
	}

	if err := s.repo.CreateWithOwner(group, owner); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"group_id": group.GroupID,
		"action":   "group_create",
	}).Info("group created")

	return s.toResponse(group), nil
}

// Get retrieves a group by its group id
func (s *GroupService) Get(groupID string) (*GroupResponse, error) {
	if err := validation.GroupID(groupID); err != nil {
		return nil, err
	}

	group, err := s.repo.GetByGroupID(strings.ToLower(groupID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return s.toResponse(group), nil
}

// SetCode assigns a public lookup code to a group. Only the stored owner
// identity may do this; the check is direct equality, not role.
func (s *GroupService) SetCode(caller, groupID string, req *SetGroupCodeRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validation.GroupID(groupID); err != nil {
		return nil, err
	}
	code := strings.ToLower(req.Code)
	if err := validation.PublicCode(code); err != nil {
		return nil, err
	}

	groupID = strings.ToLower(groupID)
	group, err := s.repo.GetByGroupID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if group.Owner != strings.ToLower(caller) {
		return nil, apperrors.ErrNotGroupOwner
	}

	if err := s.repo.SetCode(groupID, code); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"group_id": groupID,
		"code":     code,
		"action":   "group_set_code",
	}).Info("group public code assigned")

	group.PublicCode = code
	return s.toResponse(group), nil
}

// UpdateSettings changes group settings. Owner only.
func (s *GroupService) UpdateSettings(caller, groupID string, req *UpdateGroupSettingsRequest) (*GroupResponse, error) {
	if err := validation.GroupID(groupID); err != nil {
		return nil, err
	}

	groupID = strings.ToLower(groupID)
	group, err := s.repo.GetByGroupID(groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}
	if group.Owner != strings.ToLower(caller) {
		return nil, apperrors.ErrNotGroupOwner
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		if err := validation.GroupName(*req.Name); err != nil {
			return nil, err
		}
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		if err := validation.GroupDescription(*req.Description); err != nil {
			return nil, err
		}
		updates["description"] = *req.Description
	}
	if req.AvatarRef != nil {
		updates["avatar_ref"] = *req.AvatarRef
	}
	if req.IsPublic != nil {
		updates["is_public"] = *req.IsPublic
	}
	if req.IsSearchable != nil {
		updates["is_searchable"] = *req.IsSearchable
	}
	if req.InviteOnly != nil {
		updates["invite_only"] = *req.InviteOnly
	}
	if req.RequireApproval != nil {
		updates["require_approval"] = *req.RequireApproval
	}
	if req.EnableReplies != nil {
		updates["enable_replies"] = *req.EnableReplies
	}
	if req.EnableReactions != nil {
		updates["enable_reactions"] = *req.EnableReactions
	}
	if req.EnableReadReceipts != nil {
		updates["enable_read_receipts"] = *req.EnableReadReceipts
	}
	if req.EnableTyping != nil {
		updates["enable_typing"] = *req.EnableTyping
	}
	if req.AllowMemberInvites != nil {
		updates["allow_member_invites"] = *req.AllowMemberInvites
	}
	if len(updates) == 0 {
		return s.toResponse(group), nil
	}

	if err := s.repo.Update(groupID, updates); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	updated, err := s.repo.GetByGroupID(groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated group: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"group_id": groupID,
		"action":   "group_update_settings",
	}).Info("group settings updated")

	return s.toResponse(updated), nil
}

// ResolveByCode resolves a public code to its group. Codes are case-folded
// before derivation, so lookups are case-insensitive.
func (s *GroupService) ResolveByCode(code string) (*GroupResponse, error) {
	code = strings.ToLower(code)
	if err := validation.PublicCode(code); err != nil {
		return nil, err
	}

	lookup, err := s.lookups.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCodeLookupNotFound
		}
		return nil, fmt.Errorf("failed to resolve code: %w", err)
	}

	group, err := s.repo.GetByGroupID(lookup.GroupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	return s.toResponse(group), nil
}

// toResponse converts a group model to response
func (s *GroupService) toResponse(group *models.Group) *GroupResponse {
	return &GroupResponse{
		Address:            group.Address,
		GroupID:            group.GroupID,
		Owner:              group.Owner,
		PublicCode:         group.PublicCode,
		Name:               group.Name,
		Description:        group.Description,
		AvatarRef:          group.AvatarRef,
		IsPublic:           group.IsPublic,
		IsSearchable:       group.IsSearchable,
		InviteOnly:         group.InviteOnly,
		RequireApproval:    group.RequireApproval,
		MaxMembers:         group.MaxMembers,
		AllowMemberInvites: group.AllowMemberInvites,
		MemberCount:        group.MemberCount,
		CreatedAt:          group.CreatedAt,
		UpdatedAt:          group.UpdatedAt,
	}
}
