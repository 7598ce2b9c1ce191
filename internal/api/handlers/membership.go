package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"group-registry-backend/internal/service"
)

// MembershipHandler handles HTTP requests for group memberships
type MembershipHandler struct {
	service service.MembershipServiceInterface
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(service service.MembershipServiceInterface) *MembershipHandler {
	return &MembershipHandler{service: service}
}

// JoinGroup adds the caller to a group
// @Summary Join a group
// @Description Join an open group as a regular member
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Param membership body service.JoinGroupRequest true "Join data"
// @Success 201 {object} service.MembershipResponse "Joined"
// @Failure 403 {object} ErrorResponse "Group is invite only"
// @Failure 409 {object} ErrorResponse "Already a member or group full"
// @Security BearerAuth
// @Router /groups/{id}/members [post]
func (h *MembershipHandler) JoinGroup(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.JoinGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.service.Join(caller, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// InviteMember adds another identity to a group
// @Summary Invite a member
// @Description Add an identity to the group directly; requires invite permission
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Param invite body service.InviteMemberRequest true "Invitee data"
// @Success 201 {object} service.MembershipResponse "Member added"
// @Failure 403 {object} ErrorResponse "Caller may not invite"
// @Failure 409 {object} ErrorResponse "Already a member or group full"
// @Security BearerAuth
// @Router /groups/{id}/members/invite [post]
func (h *MembershipHandler) InviteMember(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.InviteMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.service.Invite(caller, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, membership)
}

// LeaveGroup removes the caller from a group
// @Summary Leave a group
// @Description Remove the caller's own membership; the owner cannot leave
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Success 204 "Left the group"
// @Failure 404 {object} ErrorResponse "Not a member"
// @Failure 409 {object} ErrorResponse "Owner cannot leave"
// @Security BearerAuth
// @Router /groups/{id}/members/me [delete]
func (h *MembershipHandler) LeaveGroup(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.service.Leave(caller, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// KickMember removes another member from a group
// @Summary Kick a member
// @Description Remove a lower-ranked member from the group; requires kick permission
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Param identity path string true "Member identity (hex)"
// @Success 204 "Member removed"
// @Failure 403 {object} ErrorResponse "Insufficient rank"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Security BearerAuth
// @Router /groups/{id}/members/{identity} [delete]
func (h *MembershipHandler) KickMember(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.service.Kick(caller, c.Param("id"), c.Param("identity")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// UpdateMemberRole changes a member's role
// @Summary Update member role
// @Description Assign a new role to a member; admins require the owner
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Param identity path string true "Member identity (hex)"
// @Param role body service.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} service.MembershipResponse "Role updated"
// @Failure 403 {object} ErrorResponse "Insufficient rank"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Security BearerAuth
// @Router /groups/{id}/members/{identity}/role [put]
func (h *MembershipHandler) UpdateMemberRole(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	membership, err := h.service.UpdateRole(caller, c.Param("id"), c.Param("identity"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

// UpdateLastRead records the caller's read position
// @Summary Update last read timestamp
// @Description Record how far the caller has read in the group
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Param position body service.UpdateLastReadRequest true "Read position"
// @Success 204 "Position recorded"
// @Failure 404 {object} ErrorResponse "Not a member"
// @Security BearerAuth
// @Router /groups/{id}/members/me/last-read [put]
func (h *MembershipHandler) UpdateLastRead(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.UpdateLastReadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateLastRead(caller, c.Param("id"), &req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// GetMember retrieves a single membership
// @Summary Get membership
// @Description Get one member's record in a group
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Param identity path string true "Member identity (hex)"
// @Success 200 {object} service.MembershipResponse "Membership found"
// @Failure 404 {object} ErrorResponse "Membership not found"
// @Security BearerAuth
// @Router /groups/{id}/members/{identity} [get]
func (h *MembershipHandler) GetMember(c *gin.Context) {
	membership, err := h.service.Get(c.Param("id"), c.Param("identity"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, membership)
}

// ListMembers lists the members of a group
// @Summary List group members
// @Description Get the group roster ordered by join time, with pagination
// @Tags memberships
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.MembershipListResponse "Members retrieved"
// @Security BearerAuth
// @Router /groups/{id}/members [get]
func (h *MembershipHandler) ListMembers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	members, err := h.service.List(c.Param("id"), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}
