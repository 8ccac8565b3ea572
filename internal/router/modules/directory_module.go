package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/adipranaya/demo-dashboard-api/internal/interface/http"
)

// DirectoryModule wires the user directory routes:
// POST /profile, GET /users, DELETE /users/:id.
type DirectoryModule struct {
	Handler *handlers.DirectoryHandler
}

func NewDirectoryModule(h *handlers.DirectoryHandler) *DirectoryModule {
	return &DirectoryModule{Handler: h}
}

func (m *DirectoryModule) Register(rg *gin.RouterGroup) {
	rg.POST("/profile", m.Handler.CreateProfile)
	rg.GET("/users", m.Handler.ListUsers)
	rg.DELETE("/users/:id", m.Handler.DeleteUser)
	// A bare delete without an id is a validation failure, not a routing miss.
	rg.DELETE("/users", m.Handler.MissingUserID)
}
