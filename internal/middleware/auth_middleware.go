package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edufeedback/backend/internal/app/models/dto"
	"github.com/edufeedback/backend/internal/pkg/auth"
)

// Context keys set by JWTAuth for downstream handlers
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
	ContextRole   = "role"
	ContextName   = "name"
)

// AuthMiddleware handles authentication and role gating
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth validates the bearer token and attaches the principal to the
// context. A missing token is 401; a token that fails verification (bad
// signature or expired) is 403.
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Access token required"))
			return
		}

		tokenString, err := auth.ExtractBearerToken(authHeader)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Access token required"))
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Invalid or expired token"))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Set(ContextRole, claims.Role)
		c.Set(ContextName, claims.Name)

		c.Next()
	}
}

// RoleRequired rejects principals whose role is not in the allowed set.
// Must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required"))
			return
		}

		roleStr, ok := role.(string)
		if ok {
			for _, allowed := range roles {
				if roleStr == allowed {
					c.Next()
					return
				}
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Insufficient permissions"))
	}
}

// PrincipalID returns the authenticated user's ID from the context
func PrincipalID(c *gin.Context) int64 {
	id, _ := c.Get(ContextUserID)
	userID, _ := id.(int64)
	return userID
}

// PrincipalName returns the authenticated user's name from the context
func PrincipalName(c *gin.Context) string {
	name, _ := c.Get(ContextName)
	nameStr, _ := name.(string)
	return nameStr
}
