package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the failure envelope returned by every handler.
type ErrorBody struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Message   string      `json:"message"`
	Error     interface{} `json:"error,omitempty"`
}

// Error writes a failure envelope and aborts the request.
func Error(c *gin.Context, status int, message string, details interface{}) {
	if status == 0 {
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, ErrorBody{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: c.GetString("request_id"),
		Message:   message,
		Error:     details,
	})
}
