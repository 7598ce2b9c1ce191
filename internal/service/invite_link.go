package service

import (
	"fmt"
	"strings"
	"time"

	"group-registry-backend/internal/database/models"
	"group-registry-backend/internal/logger"
	"group-registry-backend/internal/permissions"
	"group-registry-backend/internal/repository"
	"group-registry-backend/internal/validation"

	"github.com/go-playground/validator/v10"
)

// InviteLinkService handles business logic for invite links
type InviteLinkService struct {
	repo      repository.InviteLinkRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewInviteLinkService creates a new invite link service
func NewInviteLinkService(repo repository.InviteLinkRepositoryInterface, validator *validator.Validate) *InviteLinkService {
	return &InviteLinkService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateInviteLinkRequest represents the request to create an invite link
type CreateInviteLinkRequest struct {
	Code      string `json:"code" validate:"required"`
	ExpiresAt int64  `json:"expires_at"` // unix seconds, 0 = never
	MaxUses   uint16 `json:"max_uses"`   // 0 = unlimited
}

// RedeemInviteRequest represents the request to redeem an invite link
type RedeemInviteRequest struct {
	EncryptedGroupKey []byte `json:"encrypted_group_key" swaggertype:"string" format:"base64"`
}

// InviteLinkResponse represents the response for invite link operations
type InviteLinkResponse struct {
	Address    string    `json:"address"`
	GroupID    string    `json:"group_id"`
	InviteCode string    `json:"invite_code"`
	CreatedBy  string    `json:"created_by"`
	ExpiresAt  int64     `json:"expires_at"`
	MaxUses    uint16    `json:"max_uses"`
	UseCount   uint16    `json:"use_count"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// Create issues an invite link for a group on the caller's authority
func (s *InviteLinkService) Create(caller, groupID string, req *CreateInviteLinkRequest) (*InviteLinkResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if err := validation.GroupID(groupID); err != nil {
		return nil, err
	}
	if err := validation.InviteCode(req.Code); err != nil {
		return nil, err
	}

	groupID = strings.ToLower(groupID)
	link := &models.InviteLink{
		GroupID:    groupID,
		InviteCode: req.Code,
		CreatedBy:  strings.ToLower(caller),
		ExpiresAt:  req.ExpiresAt,
		MaxUses:    req.MaxUses,
		IsActive:   true,
	}
	err := s.repo.Create(link, func(actor *models.Membership, group *models.Group) error {
		return permissions.CanPerform(subjectOf(actor), permissions.ActionCreateInviteLink, nil, permissions.Check{
			AllowMemberInvites: group.AllowMemberInvites,
		})
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"group_id": groupID,
		"code":     req.Code,
		"action":   "invite_link_create",
	}).Info("invite link created")

	return s.toResponse(link), nil
}

// Revoke deactivates an invite link. Allowed for the link's creator or any
// staff role; revoking an already inactive link succeeds.
func (s *InviteLinkService) Revoke(caller, groupID, code string) error {
	if err := validation.GroupID(groupID); err != nil {
		return err
	}

	groupID = strings.ToLower(groupID)
	err := s.repo.Deactivate(groupID, code, strings.ToLower(caller), func(actor *models.Membership, link *models.InviteLink) error {
		return permissions.CanPerform(subjectOf(actor), permissions.ActionRevokeInviteLink, nil, permissions.Check{
			InviteCreatedBy: link.CreatedBy,
		})
	})
	if err != nil {
		return err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"group_id": groupID,
		"code":     code,
		"action":   "invite_link_revoke",
	}).Info("invite link revoked")

	return nil
}

// Redeem joins the caller to a group through an invite link. The use-count
// bump, membership creation and member-count increment are one atomic unit.
func (s *InviteLinkService) Redeem(caller, groupID, code string, req *RedeemInviteRequest) (*MembershipResponse, error) {
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
	caller = strings.ToLower(caller)
	m := &models.Membership{
		GroupID:           groupID,
		Member:            caller,
		Role:              permissions.RoleMember,
		Permissions:       permissions.RoleMask(permissions.RoleMember),
		EncryptedGroupKey: keyBlob,
		JoinedAt:          time.Now(),
		IsActive:          true,
		InvitedBy:         caller,
	}

	if err := s.repo.RedeemAndJoin(groupID, code, m, time.Now().Unix()); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"actor":    caller,
		"group_id": groupID,
		"code":     code,
		"action":   "invite_link_redeem",
	}).Info("invite link redeemed")

	return &MembershipResponse{
		Address:     m.Address,
		GroupID:     m.GroupID,
		Member:      m.Member,
		Role:        m.Role,
		Permissions: m.Permissions,
		JoinedAt:    m.JoinedAt,
		IsActive:    m.IsActive,
		InvitedBy:   m.InvitedBy,
	}, nil
}

// toResponse converts an invite link model to response
func (s *InviteLinkService) toResponse(link *models.InviteLink) *InviteLinkResponse {
	return &InviteLinkResponse{
		Address:    link.Address,
		GroupID:    link.GroupID,
		InviteCode: link.InviteCode,
		CreatedBy:  link.CreatedBy,
		ExpiresAt:  link.ExpiresAt,
		MaxUses:    link.MaxUses,
		UseCount:   link.UseCount,
		IsActive:   link.IsActive,
		CreatedAt:  link.CreatedAt,
	}
}
