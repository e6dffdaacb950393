package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelops-dashboard/internal/backend"
	"hotelops-dashboard/internal/session"
	"hotelops-dashboard/internal/utils"
)

const (
	UsernameKey  = "username"
	RoleKey      = "role"
	SessionIDKey = "session_id"
)

// JWTAuth validates the dashboard token, loads the backend token of the
// session and attaches it to the request context for the backend client.
func JWTAuth(tokens *utils.TokenManager, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}
		tokenStr := header
		if len(header) > 7 && strings.EqualFold(header[:7], "Bearer ") {
			tokenStr = header[7:]
		}

		claims, err := tokens.ParseToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		backendToken, err := sessions.Get(c.Request.Context(), claims.SessionID)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				log.Printf("session lookup failed for %s: %v", claims.Username, err)
			}
			abortUnauthorized(c, "Session expired, please log in again")
			return
		}

		c.Set(UsernameKey, claims.Username)
		c.Set(RoleKey, claims.Role)
		c.Set(SessionIDKey, claims.SessionID)
		c.Request = c.Request.WithContext(backend.WithToken(c.Request.Context(), backendToken))
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
