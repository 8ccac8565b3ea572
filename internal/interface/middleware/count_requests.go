package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/adipranaya/demo-dashboard-api/internal/application"
)

// CountRequests increments the request counter before the handler runs, so
// every handled request counts exactly once regardless of its outcome.
func CountRequests(m *application.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.Increment()
		c.Next()
	}
}
