package handler

import (
	"github.com/gin-gonic/gin"

	"gopherfeed/internal/transport/http/middleware"
)

func identityFromContext(c *gin.Context) (userID, username string, ok bool) {
	idAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return "", "", false
	}
	userID, ok = idAny.(string)
	if !ok || userID == "" {
		return "", "", false
	}

	nameAny, exists := c.Get(middleware.ContextUsernameKey)
	if exists {
		username, _ = nameAny.(string)
	}
	return userID, username, true
}
