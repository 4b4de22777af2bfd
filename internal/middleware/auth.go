package middleware

import (
	"net/http"
	"strings"

	"logisa-be/internal/user"

	"github.com/gin-gonic/gin"
)

// Auth parses a Bearer token and, when valid, attaches the user to the
// request context. Invalid or absent tokens leave the request anonymous;
// RequireUser/RequireAdmin decide whether that is fatal.
func Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := user.ParseJWT(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		u := &user.User{
			ID:        claims.UserID,
			Email:     claims.Email,
			Role:      user.Role(claims.Role),
			CompanyID: claims.CompanyID,
		}
		c.Request = c.Request.WithContext(user.WithUser(c.Request.Context(), u))
		c.Next()
	}
}

func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !user.IsAuthenticated(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !user.IsAdmin(c.Request.Context()) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
