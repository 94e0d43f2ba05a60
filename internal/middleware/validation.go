package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnify/internal/app/models/dto"
)

// BindJSON binds and validates the request body into obj. On failure it writes
// a 400 with message and per-field details and returns false.
func BindJSON(c *gin.Context, obj any, message string) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(message, dto.HandleValidationError(err)...))
		return false
	}
	return true
}
