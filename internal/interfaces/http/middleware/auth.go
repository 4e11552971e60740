package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"beyazmasa/internal/infrastructure/auth"
	"beyazmasa/internal/shared/authorization"
	"beyazmasa/internal/shared/logger"
	"beyazmasa/internal/shared/utils"
)

// ContextKeyUserID is the gin context key the authenticated caller's id is
// stored under.
const ContextKeyUserID = "user_id"

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.extractToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(authorization.ContextKeyUserRole, string(claims.Role))
		c.Next()
	}
}

// extractToken prefers the session cookie and falls back to a bearer header
// for non-browser clients.
func (m *AuthMiddleware) extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(auth.CookieAccessToken); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
