package middleware

import (
	"errors"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/yigit/learnify/internal/app/models"
	"github.com/yigit/learnify/internal/app/models/dto"
	"github.com/yigit/learnify/internal/pkg/apperrors"
	"github.com/yigit/learnify/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth requires a valid "Authorization: Bearer <token>" header and stores
// the caller's identity in the gin context.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			message := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				message = "Token expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(message))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)

		c.Next()
	}
}

// RolesAllowed rejects callers whose role is not in roles. It must run after JWTAuth.
func RolesAllowed(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Unauthorized"))
			return
		}
		if !slices.Contains(roles, p.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Forbidden"))
			return
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated caller stored by JWTAuth
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	userID, ok := c.Get(ContextUserID)
	if !ok {
		return models.Principal{}, false
	}
	role, ok := c.Get(ContextRole)
	if !ok {
		return models.Principal{}, false
	}

	id, idOK := userID.(int64)
	r, roleOK := role.(models.Role)
	if !idOK || !roleOK {
		return models.Principal{}, false
	}
	return models.Principal{UserID: id, Role: r}, true
}
