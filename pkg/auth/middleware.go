package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys set by Middleware for downstream handlers.
const (
	CtxUserID = "userID"
	CtxEmail  = "userEmail"
)

// Middleware gates a route on possession of a valid token. It is a
// capability check only: it does not restrict which records the caller may
// touch.
func Middleware(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := BearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Missing token"})
			return
		}
		claims, err := m.ValidateJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}
		c.Set(CtxUserID, claims.Subject)
		c.Set(CtxEmail, claims.Email)
		c.Next()
	}
}
