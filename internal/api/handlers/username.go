package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"group-registry-backend/internal/service"
)

// UsernameHandler handles HTTP requests for username records
type UsernameHandler struct {
	service service.UsernameServiceInterface
}

// NewUsernameHandler creates a new username handler
func NewUsernameHandler(service service.UsernameServiceInterface) *UsernameHandler {
	return &UsernameHandler{service: service}
}

// RegisterUsername claims a username for the caller
// @Summary Register username
// @Description Claim a username; names are case-insensitive and globally unique
// @Tags usernames
// @Accept json
// @Produce json
// @Param username body service.RegisterUsernameRequest true "Username data"
// @Success 201 {object} service.UsernameResponse "Username registered"
// @Failure 400 {object} ErrorResponse "Invalid username"
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Security BearerAuth
// @Router /usernames [post]
func (h *UsernameHandler) RegisterUsername(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.RegisterUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username, err := h.service.Register(caller, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, username)
}

// LookupUsername resolves a username to its owner
// @Summary Look up username
// @Description Resolve a username to its owning identity (no auth required)
// @Tags lookup
// @Accept json
// @Produce json
// @Param name path string true "Username"
// @Success 200 {object} service.UsernameResponse "Username found"
// @Failure 404 {object} ErrorResponse "Username not found"
// @Router /lookup/usernames/{name} [get]
func (h *UsernameHandler) LookupUsername(c *gin.Context) {
	username, err := h.service.Lookup(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, username)
}

// TransferUsername moves a username to a new owner
// @Summary Transfer username
// @Description Transfer ownership of a username to another identity (owner only)
// @Tags usernames
// @Accept json
// @Produce json
// @Param name path string true "Username"
// @Param transfer body service.TransferUsernameRequest true "New owner"
// @Success 200 {object} service.UsernameResponse "Username transferred"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Username not found"
// @Security BearerAuth
// @Router /usernames/{name}/owner [put]
func (h *UsernameHandler) TransferUsername(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.TransferUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username, err := h.service.Transfer(caller, c.Param("name"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, username)
}

// UpdateUsernameKey replaces the encryption key stored with a username
// @Summary Update username key
// @Description Replace the opaque encryption key blob on a username record (owner only)
// @Tags usernames
// @Accept json
// @Produce json
// @Param name path string true "Username"
// @Param key body service.UpdateUsernameKeyRequest true "New key"
// @Success 200 {object} service.UsernameResponse "Key updated"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Username not found"
// @Security BearerAuth
// @Router /usernames/{name}/key [put]
func (h *UsernameHandler) UpdateUsernameKey(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.UpdateUsernameKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username, err := h.service.UpdateEncryptionKey(caller, c.Param("name"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, username)
}

// ReleaseUsername deletes a username record
// @Summary Release username
// @Description Release a username so it becomes claimable again (owner only)
// @Tags usernames
// @Accept json
// @Produce json
// @Param name path string true "Username"
// @Success 204 "Username released"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Username not found"
// @Security BearerAuth
// @Router /usernames/{name} [delete]
func (h *UsernameHandler) ReleaseUsername(c *gin.Context) {
	caller, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := h.service.Release(caller, c.Param("name")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
