package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "capacity-planner-backend/internal/errors"
	"capacity-planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	contextUserID = "user_id"
	contextClaims = "auth_claims"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	service *AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService) *AuthMiddleware {
	return &AuthMiddleware{service: service}
}

// RequireAuth validates bearer tokens and sets the user on both the gin
// context and the request context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			unauthorized(c, "Authorization header is required")
			return
		}

		// Extract token from Bearer header
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			unauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			logger.WithContext(c.Request.Context()).WithError(err).Debug("Rejected bearer token")
			unauthorized(c, "Invalid token")
			return
		}

		SetUser(c, claims)
		c.Next()
	}
}

// SetUser stores the authenticated user on the gin and request contexts
func SetUser(c *gin.Context, claims *AuthClaims) {
	c.Set(contextUserID, claims.UserID())
	c.Set(contextClaims, claims)
	ctx := context.WithValue(c.Request.Context(), logger.UserIDKey, claims.UserID())
	c.Request = c.Request.WithContext(ctx)
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(contextUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get(contextClaims)
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": message, "code": apperrors.CodeUnauthorized})
}
