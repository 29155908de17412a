package response

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: {"success":true,...} on
// the happy path, {"success":false,"error":<message>} otherwise. Clients
// depend on these exact field names.

func Success(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
