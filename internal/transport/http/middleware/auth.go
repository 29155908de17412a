package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"gopherfeed/internal/pkg/jwtutil"
	"gopherfeed/internal/transport/http/response"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"
)

// Auth gates identity-dependent routes. A missing token is 401, a token
// that fails verification (bad signature, malformed, expired) is 403.
// On success the resolved identity lands in the gin context for the
// handler behind it.
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Access token required")
			c.Abort()
			return
		}

		const prefix = "Bearer "
		if !strings.HasPrefix(authHeader, prefix) {
			response.Error(c, http.StatusUnauthorized, "Access token required")
			c.Abort()
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, prefix))
		claims, err := jwtutil.ParseToken(secret, token)
		if err != nil {
			if err == jwtutil.ErrTokenMissing {
				response.Error(c, http.StatusUnauthorized, "Access token required")
			} else {
				response.Error(c, http.StatusForbidden, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}
