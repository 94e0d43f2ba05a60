package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnify/internal/app/models/dto"
	"github.com/yigit/learnify/internal/pkg/apperrors"
	"github.com/yigit/learnify/internal/pkg/logger"
)

// statusFor maps an error category to its HTTP status; 0 means unknown
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized),
		errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	}
	return 0
}

// defaultMessages are used when an error carries no client-facing message
var defaultMessages = map[int]string{
	http.StatusBadRequest:   "Validation failed",
	http.StatusUnauthorized: "Unauthorized",
	http.StatusForbidden:    "Forbidden",
	http.StatusNotFound:     "Not found",
	http.StatusConflict:     "Conflict",
}

// HandleAPIError writes the JSON error response for err. Errors outside the
// known categories become 500 "Server error" and are logged.
func HandleAPIError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == 0 {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Msg("Unhandled error")
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Server error"))
		return
	}

	if errors.Is(err, apperrors.ErrInvalidCredentials) {
		c.AbortWithStatusJSON(status, dto.NewErrorResponse("Invalid credentials"))
		return
	}

	message, ok := apperrors.Message(err)
	if !ok {
		message = defaultMessages[status]
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(message))
}
