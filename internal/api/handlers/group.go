package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"group-registry-backend/internal/service"
)

// GroupHandler handles HTTP requests for groups
type GroupHandler struct {
	service service.GroupServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface) *GroupHandler {
	return &GroupHandler{service: service}
}

// CreateGroup creates a new group
// @Summary Create a new group
// @Description Register a group under its content-derived address; the caller becomes the owner
// @Tags groups
// @Accept json
// @Produce json
// @Param group body service.CreateGroupRequest true "Group data"
// @Success 201 {object} service.GroupResponse "Successfully created group"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Group already exists"
// @Security BearerAuth
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.Create(caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

// GetGroup retrieves a group by its id
// @Summary Get group by ID
// @Description Get a specific group by its 64-character hex group id
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Success 200 {object} service.GroupResponse "Successfully retrieved group"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	group, err := h.service.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// SetGroupCode assigns a public code to a group
// @Summary Set group public code
// @Description Claim a human-readable public code for the group (owner only)
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Param code body service.SetGroupCodeRequest true "Public code"
// @Success 200 {object} service.GroupResponse "Code assigned"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 409 {object} ErrorResponse "Code already taken"
// @Security BearerAuth
// @Router /groups/{id}/code [post]
func (h *GroupHandler) SetGroupCode(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.SetGroupCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.SetCode(caller, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// UpdateGroupSettings updates mutable group settings
// @Summary Update group settings
// @Description Update group metadata and policy flags (owner only); omitted fields are untouched
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (hex)"
// @Param settings body service.UpdateGroupSettingsRequest true "Settings to change"
// @Success 200 {object} service.GroupResponse "Settings updated"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Security BearerAuth
// @Router /groups/{id}/settings [put]
func (h *GroupHandler) UpdateGroupSettings(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.UpdateGroupSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.UpdateSettings(caller, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// ResolveGroupByCode resolves a public code to its group
// @Summary Resolve group by public code
// @Description Look up a group by its public code (case-insensitive, no auth required)
// @Tags lookup
// @Accept json
// @Produce json
// @Param code path string true "Public code"
// @Success 200 {object} service.GroupResponse "Group found"
// @Failure 404 {object} ErrorResponse "Code not found"
// @Router /lookup/groups/{code} [get]
func (h *GroupHandler) ResolveGroupByCode(c *gin.Context) {
	group, err := h.service.ResolveByCode(c.Param("code"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}
