package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedback/internal/api/dto"
	"github.com/martijn/feedback/internal/core/service"
)

const (
	AuthHeaderKey  = "Authorization"
	AuthContextKey = "auth"
)

// AuthMiddleware resolves the request's session claim and rejects anonymous
// requests. The token is read from the Authorization header or, failing that,
// from the session cookie.
func AuthMiddleware(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := sessionToken(c, cookieName)
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Authentication required",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		claims, err := authService.ValidateSession(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
				Error:   "Unauthorized",
				Message: "Invalid or expired session",
				Code:    http.StatusUnauthorized,
			})
			c.Abort()
			return
		}

		c.Set(AuthContextKey, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the session claim when one is present but
// lets anonymous requests through. Used by register/login so the handlers can
// short-circuit already-authenticated callers.
func OptionalAuthMiddleware(authService *service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := sessionToken(c, cookieName); ok {
			if claims, err := authService.ValidateSession(token); err == nil {
				c.Set(AuthContextKey, claims)
			}
		}
		c.Next()
	}
}

func sessionToken(c *gin.Context, cookieName string) (string, bool) {
	if authHeader := c.GetHeader(AuthHeaderKey); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1], true
		}
		return "", false
	}

	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie, true
	}
	return "", false
}

// GetAuthClaims retrieves the session claims from context
func GetAuthClaims(c *gin.Context) (*service.SessionClaims, bool) {
	claims, exists := c.Get(AuthContextKey)
	if !exists {
		return nil, false
	}

	sessionClaims, ok := claims.(*service.SessionClaims)
	return sessionClaims, ok
}
