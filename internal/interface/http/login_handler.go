package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adipranaya/demo-dashboard-api/internal/application"
	"github.com/adipranaya/demo-dashboard-api/pkg/response"
	"github.com/adipranaya/demo-dashboard-api/pkg/validation"
)

// LoginHandler serves POST /login: a keyed digest of the username, no
// session or token issuance.
type LoginHandler struct {
	Auth   *application.AuthService
	Logger *logrus.Logger
}

func NewLoginHandler(auth *application.AuthService, logger *logrus.Logger) *LoginHandler {
	return &LoginHandler{Auth: auth, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
}

func (h *LoginHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	digest, err := h.Auth.Authenticate(c.Request.Context(), req.Username)
	if err != nil {
		// No internal detail leaks to the caller.
		if h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		response.Error(c, http.StatusInternalServerError, "login failed", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": digest})
}
