package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adipranaya/demo-dashboard-api/internal/application"
)

// SystemHandler serves the root greeting and the process stats endpoint.
type SystemHandler struct {
	Metrics *application.Metrics
	AppName string
}

func NewSystemHandler(metrics *application.Metrics, appName string) *SystemHandler {
	return &SystemHandler{Metrics: metrics, AppName: appName}
}

// Root handles GET /.
func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":       "Welcome to " + h.AppName,
		"timestamp":     time.Now().UTC(),
		"requestNumber": h.Metrics.Total(),
	})
}

// Stats handles GET /stats.
func (h *SystemHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Metrics.Snapshot())
}
