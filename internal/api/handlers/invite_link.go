package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"group-registry-backend/internal/service"
)

// InviteLinkHandler handles HTTP requests for invite links
type InviteLinkHandler struct {
	service service.InviteLinkServiceInterface
}

// NewInviteLinkHandler creates a new invite link handler
func NewInviteLinkHandler(service service.InviteLinkServiceInterface) *InviteLinkHandler {
	return &InviteLinkHandler{service: service}
}

// CreateInviteLink creates an invite link for a group
// @Summary Create invite link
// @Description Create a redeemable invite link with optional expiry and usage cap
// @Tags invites
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Param invite body service.CreateInviteLinkRequest true "Invite link data"
// @Success 201 {object} service.InviteLinkResponse "Invite link created"
// @Failure 403 {object} ErrorResponse "Caller may not create invite links"
// @Failure 409 {object} ErrorResponse "Code already used in this group"
// @Security BearerAuth
// @Router /groups/{id}/invites [post]
func (h *InviteLinkHandler) CreateInviteLink(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.CreateInviteLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	link, err := h.service.Create(caller, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, link)
}

// RevokeInviteLink deactivates an invite link
// @Summary Revoke invite link
// @Description Deactivate an invite link; creators can revoke their own links
// @Tags invites
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Param code path string true "Invite code"
// @Success 204 "Invite link revoked"
// @Failure 403 {object} ErrorResponse "Caller may not revoke this link"
// @Failure 404 {object} ErrorResponse "Invite link not found"
// @Security BearerAuth
// @Router /groups/{id}/invites/{code} [delete]
func (h *InviteLinkHandler) RevokeInviteLink(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.service.Revoke(caller, c.Param("id"), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// RedeemInviteLink joins a group through an invite link
// @Summary Redeem invite link
// @Description Consume one use of an invite link and join the group as a member
// @Tags invites
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Param code path string true "Invite code"
// @Param redemption body service.RedeemInviteRequest true "Redemption data"
// @Success 201 {object} service.MembershipResponse "Joined via invite"
// @Failure 404 {object} ErrorResponse "Invite link not found"
// @Failure 409 {object} ErrorResponse "Link inactive, expired, exhausted, or group full"
// @Security BearerAuth
// @Router /groups/{id}/invites/{code}/redeem [post]
func (h *InviteLinkHandler) RedeemInviteLink(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.RedeemInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.service.Redeem(caller, c.Param("id"), c.Param("code"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, membership)
}
