package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/adipranaya/demo-dashboard-api/internal/interface/http"
)

// LoginModule wires POST /login.
type LoginModule struct {
	Handler *handlers.LoginHandler
}

func NewLoginModule(h *handlers.LoginHandler) *LoginModule {
	return &LoginModule{Handler: h}
}

func (m *LoginModule) Register(rg *gin.RouterGroup) {
	rg.POST("/login", m.Handler.Login)
}
