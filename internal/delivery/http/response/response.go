package response

import (
	"github.com/gin-gonic/gin"
)

// Response standardizes the API JSON response. Success bodies carry
// success + message; error bodies carry error and, for validation
// failures, the per-field messages.
type Response struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message,omitempty"`
	Data      interface{}       `json:"data,omitempty"`
	Error     string            `json:"error,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	RequestID string            `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// Error sends an error response. fields is nil except for validation
// failures.
func Error(c *gin.Context, code int, errMsg string, fields map[string]string) {
	c.JSON(code, Response{
		Success:   false,
		Error:     errMsg,
		Fields:    fields,
		RequestID: requestID(c),
	})
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string) // Safe type assertion
	return idStr
}
