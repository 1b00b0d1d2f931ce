package responses

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard error JSON response.
type ErrorResponse struct {
	Status  string            `json:"status"`  // "error" or "fail"
	Message string            `json:"message"` // Error message
	Code    int               `json:"code"`    // HTTP status code
	Fields  map[string]string `json:"fields,omitempty"`
}

// SendError sends a standardized error response.
func SendError(c *gin.Context, statusCode int, message string) {
	statusText := "error"
	if statusCode >= http.StatusInternalServerError {
		statusText = "fail" // Differentiate client errors from server failures
	}
	c.AbortWithStatusJSON(statusCode, ErrorResponse{
		Status:  statusText,
		Message: message,
		Code:    statusCode,
	})
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, message string) {
	SendError(c, http.StatusNotFound, message)
}

// UnprocessableEntity sends a 422 response for query parameters that fail
// their declared bounds, with per-field details. Out-of-range values are
// rejected, never clamped.
func UnprocessableEntity(c *gin.Context, message string, fields map[string]string) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, ErrorResponse{
		Status:  "error",
		Message: message,
		Code:    http.StatusUnprocessableEntity,
		Fields:  fields,
	})
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	if message == "" {
		message = "An unexpected error occurred on the server"
	}
	SendError(c, http.StatusInternalServerError, message)
}
