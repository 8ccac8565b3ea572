package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adipranaya/demo-dashboard-api/internal/application"
	"github.com/adipranaya/demo-dashboard-api/pkg/response"
	"github.com/adipranaya/demo-dashboard-api/pkg/validation"
)

// DirectoryHandler serves the user directory endpoints.
type DirectoryHandler struct {
	Svc    *application.DirectoryService
	Logger *logrus.Logger
}

func NewDirectoryHandler(svc *application.DirectoryService, logger *logrus.Logger) *DirectoryHandler {
	return &DirectoryHandler{Svc: svc, Logger: logger}
}

type createProfileRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
}

// CreateProfile handles POST /profile.
func (h *DirectoryHandler) CreateProfile(c *gin.Context) {
	var req createProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u := h.Svc.CreateUser(req.Username, req.Email)
	c.JSON(http.StatusCreated, gin.H{
		"message":    "User profile created successfully",
		"user":       u,
		"totalUsers": h.Svc.Count(),
	})
}

// ListUsers handles GET /users.
func (h *DirectoryHandler) ListUsers(c *gin.Context) {
	users := h.Svc.ListUsers()
	c.JSON(http.StatusOK, gin.H{
		"message": "Users retrieved successfully",
		"users":   users,
		"count":   len(users),
	})
}

// DeleteUser handles DELETE /users/:id.
func (h *DirectoryHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Error(c, http.StatusBadRequest, "user id is required", nil)
		return
	}

	if !h.Svc.DeleteUser(id) {
		response.Error(c, http.StatusNotFound, "user not found", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":        "User deleted successfully",
		"remainingUsers": h.Svc.Count(),
	})
}

// MissingUserID handles DELETE /users without an id segment.
func (h *DirectoryHandler) MissingUserID(c *gin.Context) {
	response.Error(c, http.StatusBadRequest, "user id is required", nil)
}
