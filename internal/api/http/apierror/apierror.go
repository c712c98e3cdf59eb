// Package apierror writes the JSON error bodies shared by every route.
package apierror

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ai-website-generator/backend/internal/projects/domain"
)

const (
	InternalTitle   = "Internal Server Error"
	InternalMessage = "An unexpected error occurred. Please try again later."
	ValidationTitle = "Validation Error"
)

// Body is the shape of every error response.
type Body struct {
	Error   string              `json:"error"`
	Message string              `json:"message,omitempty"`
	Details []domain.FieldError `json:"details,omitempty"`
}

// Abort writes a simple error body and stops the handler chain.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Body{Error: msg})
}

// Internal writes the generic 500 body. Callers log the cause themselves.
func Internal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Body{
		Error:   InternalTitle,
		Message: InternalMessage,
	})
}

// Validation writes a 422 listing each rejected field.
func Validation(c *gin.Context, fields []domain.FieldError) {
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, Body{
		Error:   ValidationTitle,
		Details: fields,
	})
}
