package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/adipranaya/demo-dashboard-api/internal/interface/http"
)

// SystemModule wires GET / and GET /stats.
type SystemModule struct {
	Handler *handlers.SystemHandler
}

func NewSystemModule(h *handlers.SystemHandler) *SystemModule {
	return &SystemModule{Handler: h}
}

func (m *SystemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Root)
	rg.GET("/stats", m.Handler.Stats)
}
